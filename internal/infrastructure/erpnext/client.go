// Package erpnext reads and writes supplier, address and bank records
// in the external ERP over its resource REST API, authenticated with an
// api-key/api-secret token header.
package erpnext

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, apiSecret string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{},
	}
}

func (c *Client) GetSupplier(ctx context.Context, supplierID string) (*Supplier, error) {
	var out struct {
		Data Supplier `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "Supplier", supplierID, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateSupplier PUTs the changed supplier fields onto the existing
// Supplier record.
func (c *Client) UpdateSupplier(ctx context.Context, supplierID string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "Supplier", supplierID, fields, nil)
}

func (c *Client) CreateAddress(ctx context.Context, addr *Address) error {
	return c.do(ctx, http.MethodPost, "Address", "", addr, nil)
}

// EnsureBank makes sure a Bank record with the given name exists. The
// check-then-create pair is idempotent: a concurrent create answering
// 409 counts as success.
func (c *Client) EnsureBank(ctx context.Context, bankName string) error {
	err := c.do(ctx, http.MethodGet, "Bank", bankName, nil, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	err = c.do(ctx, http.MethodPost, "Bank", "", map[string]any{"bank_name": bankName}, nil)
	if errors.Is(err, ErrConflict) {
		return nil
	}
	return err
}

func (c *Client) CreateBankAccount(ctx context.Context, acct *BankAccount) error {
	return c.do(ctx, http.MethodPost, "Bank Account", "", acct, nil)
}

func (c *Client) do(ctx context.Context, method, doctype, name string, payload, out any) error {
	endpoint := c.baseURL + "/api/resource/" + url.PathEscape(doctype)
	if name != "" {
		endpoint += "/" + url.PathEscape(name)
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", c.apiKey, c.apiSecret))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("erp %s %s failed with status code: %d", method, doctype, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
