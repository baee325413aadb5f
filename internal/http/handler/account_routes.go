package handler

import (
	"context"
	"net/http"

	"supplierhub/internal/contract"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AccountService interface {
	Signup(ctx context.Context, req *contract.SignupRequest) (*contract.SignupResponse, apierror.ErrorResponse)
	SignupStatus(supplierID string) (*contract.SignupResponse, apierror.ErrorResponse)
}

type DefaultAccountRoute struct {
	Accounts AccountService
}

func NewAccountDefault(accounts AccountService) *DefaultAccountRoute {
	return &DefaultAccountRoute{Accounts: accounts}
}

func (a *DefaultAccountRoute) Signup(c echo.Context) error {
	var req contract.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := a.Accounts.Signup(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	// Existing accounts are not an error: answer with the login redirect.
	if resp.LoginURL != "" {
		return c.JSON(http.StatusOK, resp)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAccountRoute) SignupStatus(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := a.Accounts.SignupStatus(supplierID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
