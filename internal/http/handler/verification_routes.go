package handler

import (
	"net/http"

	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/service"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type VerificationService interface {
	Request(supplierID string, field entity.VerifyField, req *contract.VerifyRequest) (*contract.VerificationStatus, apierror.ErrorResponse)
	Status(supplierID string, field entity.VerifyField) (*contract.VerificationStatus, apierror.ErrorResponse)
}

type DefaultVerificationRoute struct {
	Verification VerificationService
}

func NewVerificationDefault(verification VerificationService) *DefaultVerificationRoute {
	return &DefaultVerificationRoute{Verification: verification}
}

// Verify schedules a background check for the given field. The response
// is 202 with the pending status; the caller polls VerifyStatus.
func (v *DefaultVerificationRoute) Verify(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	field, ok := service.ParseField(c.Param("field"))
	if !ok {
		return c.JSON(apierror.UnknownVerifyFieldError.Code(), apierror.UnknownVerifyFieldError)
	}

	var req contract.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	status, apierr := v.Verification.Request(supplierID, field, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusAccepted, status)
}

func (v *DefaultVerificationRoute) VerifyStatus(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	field, ok := service.ParseField(c.Param("field"))
	if !ok {
		return c.JSON(apierror.UnknownVerifyFieldError.Code(), apierror.UnknownVerifyFieldError)
	}

	status, apierr := v.Verification.Status(supplierID, field)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, status)
}
