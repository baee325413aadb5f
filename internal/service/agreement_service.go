package service

import (
	"supplierhub/internal/document"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// Agreement renders the supplier-agreement PDF for a submitted session.
// It is available from the thank-you view any number of times and keeps
// no state between renders.
func (o *OnboardingService) Agreement(supplierID string) ([]byte, string, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, "", apierr
	}

	if !session.Submitted {
		return nil, "", apierror.NotSubmittedError
	}

	date := utils.DateStamp()
	data, err := document.Generate(session, date)
	if err != nil {
		log.Errorf("failed to render agreement for supplier %s: %v", supplierID, err)
		return nil, "", apierror.InternalServerError
	}
	return data, document.FileName(supplierID, date), nil
}
