package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/service"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type OnboardingService interface {
	GetSession(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse)

	UpdateBasicInfo(supplierID string, req *contract.BasicInfoUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateContacts(supplierID string, req *contract.ContactsUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdatePAN(supplierID string, req *contract.PANUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateGST(supplierID string, req *contract.GSTUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateBank(supplierID string, req *contract.BankUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateMSME(supplierID string, req *contract.MSMEUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateDrugLicense(supplierID string, req *contract.DrugLicenseUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateCommercial(supplierID string, req *contract.CommercialUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	UpdateReview(supplierID string, req *contract.ReviewUpdate) (*contract.SessionResponse, apierror.ErrorResponse)
	RemoveDistributor(supplierID string, distributorID int) (*contract.SessionResponse, apierror.ErrorResponse)

	NextStep(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse)
	PreviousStep(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse)
	JumpToStep(supplierID string, req *contract.GoToStepRequest) (*contract.SessionResponse, apierror.ErrorResponse)
	Acknowledge(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse)

	Upload(supplierID string, kind entity.AttachmentKind, distributorID int, fileHeader *multipart.FileHeader) (*contract.SessionResponse, apierror.ErrorResponse)
}

type DefaultOnboardingRoute struct {
	Onboarding OnboardingService
}

func NewOnboardingDefault(onboarding OnboardingService) *DefaultOnboardingRoute {
	return &DefaultOnboardingRoute{Onboarding: onboarding}
}

func (o *DefaultOnboardingRoute) GetSession(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := o.Onboarding.GetSession(supplierID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateSection dispatches the PATCH body onto the named section's
// typed contract.
func (o *DefaultOnboardingRoute) UpdateSection(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var (
		resp   *contract.SessionResponse
		apierr apierror.ErrorResponse
	)

	switch c.Param("section") {
	case entity.StepBasicInfo.String():
		var req contract.BasicInfoUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateBasicInfo(supplierID, &req)

	case entity.StepContacts.String():
		var req contract.ContactsUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateContacts(supplierID, &req)

	case entity.StepPAN.String():
		var req contract.PANUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdatePAN(supplierID, &req)

	case entity.StepGST.String():
		var req contract.GSTUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateGST(supplierID, &req)

	case entity.StepBank.String():
		var req contract.BankUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateBank(supplierID, &req)

	case entity.StepMSME.String():
		var req contract.MSMEUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateMSME(supplierID, &req)

	case entity.StepDrugLicense.String():
		var req contract.DrugLicenseUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateDrugLicense(supplierID, &req)

	case entity.StepCommercial.String():
		var req contract.CommercialUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateCommercial(supplierID, &req)

	case entity.StepReview.String():
		var req contract.ReviewUpdate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
		}
		resp, apierr = o.Onboarding.UpdateReview(supplierID, &req)

	default:
		return c.JSON(apierror.UnknownSectionError.Code(), apierror.UnknownSectionError)
	}

	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (o *DefaultOnboardingRoute) NextStep(c echo.Context) error {
	return o.navigate(c, o.Onboarding.NextStep)
}

func (o *DefaultOnboardingRoute) PreviousStep(c echo.Context) error {
	return o.navigate(c, o.Onboarding.PreviousStep)
}

func (o *DefaultOnboardingRoute) GoToStep(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.GoToStepRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := o.Onboarding.JumpToStep(supplierID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (o *DefaultOnboardingRoute) Acknowledge(c echo.Context) error {
	return o.navigate(c, o.Onboarding.Acknowledge)
}

func (o *DefaultOnboardingRoute) UploadAttachment(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	kind, ok := service.ParseAttachmentKind(c.Param("kind"))
	if !ok {
		return c.JSON(apierror.InvalidAttachmentError.Code(), apierror.InvalidAttachmentError)
	}

	distributorID := 0
	if raw := c.QueryParam("distributor_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("distributor_id", "int"))
		}
		distributorID = id
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.JSON(apierror.MissingAttachmentError.Code(), apierror.MissingAttachmentError)
	}

	resp, apierr := o.Onboarding.Upload(supplierID, kind, distributorID, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (o *DefaultOnboardingRoute) RemoveDistributor(c echo.Context) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	resp, apierr := o.Onboarding.RemoveDistributor(supplierID, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (o *DefaultOnboardingRoute) navigate(c echo.Context, op func(string) (*contract.SessionResponse, apierror.ErrorResponse)) error {
	supplierID, cerr := supplierParam(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := op(supplierID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func supplierParam(c echo.Context) (string, apierror.ErrorResponse) {
	supplierID := c.Param("supplier")
	if supplierID == "" {
		return "", apierror.SupplierMissingError
	}
	return supplierID, nil
}
