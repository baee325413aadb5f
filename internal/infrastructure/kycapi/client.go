// Package kycapi wraps the external identity-verification service used
// to check PAN, GSTIN, bank account and MSME/Udyam identifiers. Every
// call is a bearer-authenticated JSON POST answering the provider's
// success/status-code/data envelope.
package kycapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrUnavailable = errors.New("verification service unavailable")

// Only the MSME lookup carries an explicit deadline; the other calls
// ride on the default client behaviour.
const msmeTimeout = 10 * time.Second

type Verifier interface {
	VerifyPAN(ctx context.Context, pan string) (*PANResult, error)
	VerifyGSTIN(ctx context.Context, gstin string) (*GSTINResult, error)
	VerifyBankAccount(ctx context.Context, accountNumber, ifsc string) (*BankResult, error)
	VerifyMSME(ctx context.Context, udyamNumber string) (*MSMEResult, error)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

func (c *Client) VerifyPAN(ctx context.Context, pan string) (*PANResult, error) {
	env, err := c.post(ctx, "/api/v1/verification/pan-comprehensive", map[string]string{"pan": pan})
	if err != nil {
		return nil, err
	}

	var data panData
	if err := env.decode(&data); err != nil {
		return nil, err
	}
	return data.toResult(env), nil
}

func (c *Client) VerifyGSTIN(ctx context.Context, gstin string) (*GSTINResult, error) {
	env, err := c.post(ctx, "/api/v1/verification/gstin", map[string]string{"gstin": gstin})
	if err != nil {
		return nil, err
	}

	var data gstinData
	if err := env.decode(&data); err != nil {
		return nil, err
	}
	return data.toResult(env), nil
}

func (c *Client) VerifyBankAccount(ctx context.Context, accountNumber, ifsc string) (*BankResult, error) {
	env, err := c.post(ctx, "/api/v1/verification/bank", map[string]string{
		"account_number": accountNumber,
		"ifsc":           ifsc,
	})
	if err != nil {
		return nil, err
	}

	var data bankData
	if err := env.decode(&data); err != nil {
		return nil, err
	}
	return data.toResult(env), nil
}

func (c *Client) VerifyMSME(ctx context.Context, udyamNumber string) (*MSMEResult, error) {
	ctx, cancel := context.WithTimeout(ctx, msmeTimeout)
	defer cancel()

	env, err := c.post(ctx, "/api/v1/verification/udyog-aadhaar", map[string]string{
		"udyam_number": udyamNumber,
	})
	if err != nil {
		return nil, err
	}

	var data msmeData
	if err := env.decode(&data); err != nil {
		return nil, err
	}
	return data.toResult(env), nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures all collapse into the same
		// advisory "try again" outcome for the caller.
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, ErrUnavailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("kycapi: malformed envelope: %w", err)
	}
	return &env, nil
}
