package service

import (
	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

func (o *OnboardingService) toResponse(s *entity.OnboardingSession) (*contract.SessionResponse, apierror.ErrorResponse) {
	checks, err := o.Checks.FindBySupplierID(s.SupplierID)
	if err != nil {
		log.Errorf("failed to fetch checks for supplier %s: %v", s.SupplierID, err)
		return nil, apierror.InternalServerError
	}

	atts, err := o.Attachments.FindBySupplierID(s.SupplierID)
	if err != nil {
		log.Errorf("failed to fetch attachments for supplier %s: %v", s.SupplierID, err)
		return nil, apierror.InternalServerError
	}

	return buildSessionResponse(s, checks, atts), nil
}

// buildSessionResponse assembles the wizard read model. Every tracked
// verification field appears in the map, defaulting to "none" when no
// check row exists yet.
func buildSessionResponse(s *entity.OnboardingSession, checks []*entity.VerificationCheck, atts []*entity.Attachment) *contract.SessionResponse {
	verifications := map[string]contract.VerificationStatus{
		string(entity.FieldPAN):   {Status: string(entity.VerifyNone)},
		string(entity.FieldGSTIN): {Status: string(entity.VerifyNone)},
		string(entity.FieldBank):  {Status: string(entity.VerifyNone)},
		string(entity.FieldMSME):  {Status: string(entity.VerifyNone)},
	}
	for _, c := range checks {
		verifications[string(c.Field)] = contract.VerificationStatus{
			Status:    string(c.Status),
			Message:   c.Message,
			CheckedAt: utils.FormatEpoch(c.UpdatedAt),
		}
	}

	attachments := make([]*contract.AttachmentResponse, len(atts))
	for i, a := range atts {
		attachments[i] = &contract.AttachmentResponse{
			ID:       a.ID,
			Kind:     string(a.Kind),
			FileName: a.FileName,
			Size:     a.Size,
		}
	}

	distributors := make([]*contract.DistributorResponse, len(s.Distributors))
	for i, d := range s.Distributors {
		distributors[i] = &contract.DistributorResponse{
			ID:         d.ID,
			Name:       d.Name,
			DocumentID: d.DocumentID,
		}
	}

	resp := &contract.SessionResponse{
		SupplierID:  s.SupplierID,
		CurrentStep: int(s.CurrentStep),
		StepName:    s.CurrentStep.String(),
		Submitted:   s.Submitted,

		BasicInfo: contract.BasicInfoResponse{
			CompanyName:    s.BasicInfo.CompanyName,
			Email:          s.BasicInfo.Email,
			Phone:          s.BasicInfo.Phone,
			BusinessType:   s.BasicInfo.BusinessType,
			Registered:     toAddressResponse(s.BasicInfo.Registered),
			BillingDiffers: s.BasicInfo.BillingDiffers,
		},
		Contacts: contract.ContactsResponse{
			Transaction:  toContactResponse(s.Contacts.Transaction),
			EscalationL1: toContactResponse(s.Contacts.EscalationL1),
			EscalationL2: toContactResponse(s.Contacts.EscalationL2),
		},
		PAN: contract.PANResponse{
			Number:     s.PAN.Number,
			HolderName: s.PAN.HolderName,
			DOB:        s.PAN.DOB,
			DocumentID: s.PAN.DocumentID,
		},
		GST: contract.GSTResponse{
			Status:     s.GST.Status,
			GSTIN:      s.GST.GSTIN,
			DocumentID: s.GST.DocumentID,
		},
		Bank: contract.BankResponse{
			AccountName:   s.Bank.AccountName,
			AccountNumber: s.Bank.AccountNumber,
			ConfirmNumber: s.Bank.ConfirmNumber,
			IFSC:          s.Bank.IFSC,
			BankName:      s.Bank.BankName,
			BranchName:    s.Bank.BranchName,
		},
		MSME: contract.MSMEResponse{
			Registered:  string(s.MSME.Registered),
			UdyamNumber: s.MSME.UdyamNumber,
			DocumentID:  s.MSME.DocumentID,
		},
		DrugLicense: contract.DrugLicenseResponse{
			Held:          string(s.DrugLicense.Held),
			LicenseNumber: s.DrugLicense.LicenseNumber,
			DocumentID:    s.DrugLicense.DocumentID,
		},
		Commercial: contract.CommercialResponse{
			CreditDays:              s.Commercial.CreditDays,
			DiscountBasis:           s.Commercial.DiscountBasis,
			InvoiceDiscountPct:      s.Commercial.InvoiceDiscountPct,
			IsAuthorizedDistributor: string(s.Commercial.IsAuthorizedDistributor),
			ExpiredReturnPct:        s.Commercial.ExpiredReturnPct,
			DamagedReturnPct:        s.Commercial.DamagedReturnPct,
			NearExpiryReturnPct:     s.Commercial.NearExpiryReturnPct,
			Distributors:            distributors,
		},

		TermsAccepted: s.TermsAccepted,
		Verifications: verifications,
		Attachments:   attachments,
		UpdatedAt:     utils.FormatEpoch(s.UpdatedAt),
	}

	if s.BasicInfo.BillingDiffers {
		billing := toAddressResponse(s.BasicInfo.Billing)
		resp.BasicInfo.Billing = &billing
	}
	if !s.Contacts.Optional.IsEmpty() {
		optional := toContactResponse(s.Contacts.Optional)
		resp.Contacts.Optional = &optional
	}
	return resp
}

func toAddressResponse(a entity.Address) contract.AddressResponse {
	return contract.AddressResponse{
		Line1:   a.Line1,
		Line2:   a.Line2,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
	}
}

func toContactResponse(c entity.Contact) contract.ContactResponse {
	return contract.ContactResponse{
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}
