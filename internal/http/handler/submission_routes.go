package handler

import (
	"context"
	"fmt"
	"net/http"

	"supplierhub/internal/contract"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SubmissionService interface {
	Submit(ctx context.Context, supplierID string) (*contract.SubmitResponse, apierror.ErrorResponse)
}

type AgreementService interface {
	Agreement(supplierID string) ([]byte, string, apierror.ErrorResponse)
}

type DefaultSubmissionRoute struct {
	Submission SubmissionService
	Agreements AgreementService
}

func NewSubmissionDefault(submission SubmissionService, agreements AgreementService) *DefaultSubmissionRoute {
	return &DefaultSubmissionRoute{
		Submission: submission,
		Agreements: agreements,
	}
}

func (s *DefaultSubmissionRoute) Submit(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := s.Submission.Submit(c.Request().Context(), supplierID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	if !resp.Success {
		return c.JSON(http.StatusBadGateway, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// DownloadAgreement streams the generated supplier agreement PDF.
func (s *DefaultSubmissionRoute) DownloadAgreement(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	data, name, apierr := s.Agreements.Agreement(supplierID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
