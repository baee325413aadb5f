package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	SessionNotFoundError = NewSimple(404, "No onboarding session for this supplier")
	UnknownSectionError  = NewSimple(400, "Unknown form section")

	AttachmentTooLargeError = NewSimple(400, "Attachments must not exceed 5MB")
	InvalidAttachmentError  = NewSimple(400, "Unsupported attachment type")
	MissingAttachmentError  = NewSimple(400, "Attachment file is missing from the form data")
	UnknownDistributorError = NewSimple(404, "Unknown authorized distributor entry")
	UnknownVerifyFieldError = NewSimple(400, "Unknown verification field")
	VerificationFailedError = NewSimple(502, "Verification service is unavailable, please try again")
	AlreadySubmittedError   = NewSimple(409, "This onboarding has already been submitted")
	NotSubmittedError       = NewSimple(409, "The onboarding has not been submitted yet")
	SupplierMissingError    = NewSimple(400, "Missing supplier identifier")

	/*
	 * Used for account signup (identity provider mappings)
	 */
	IDPInvalidPasswordError  = NewSimple(400, "Provided password does not meet requirements")
	IDPExistingEmailError    = NewSimple(400, "Email already exists")
	IDPUserNotFoundError     = NewSimple(404, "User not found")
	IDPInvalidParameterError = NewSimple(400, "Invalid parameters provided")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "pan":
			problems[field] = append(problems[field], "Value must be a valid PAN (AAAAA9999A)")
		case "gstin":
			problems[field] = append(problems[field], "Value must be a valid 15-character GSTIN")
		case "ifsc":
			problems[field] = append(problems[field], "Value must be an 11-character IFSC code")
		case "digits10":
			problems[field] = append(problems[field], "Value must be exactly 10 digits")
		case "pincode":
			problems[field] = append(problems[field], "Value must be a 6-digit postal code")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewStepError is the single shape every step-validation failure takes:
// one blocking message describing the first failing rule.
func NewStepError(msg string, args ...any) *APIError {
	return NewSimple(http.StatusUnprocessableEntity, msg, args...)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
