package service

import (
	"context"

	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/infrastructure/erpnext"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ERPClient interface {
	GetSupplier(ctx context.Context, supplierID string) (*erpnext.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, fields map[string]any) error
	CreateAddress(ctx context.Context, addr *erpnext.Address) error
	EnsureBank(ctx context.Context, bankName string) error
	CreateBankAccount(ctx context.Context, acct *erpnext.BankAccount) error
}

// SubmissionService pushes a completed onboarding into the ERP. The
// write sequence (supplier, then addresses, then bank account) is not
// transactional: a failure partway leaves the ERP partially updated and
// the form populated, so the supplier can retry manually.
type SubmissionService struct {
	Onboarding *OnboardingService
	ERP        ERPClient
}

func NewSubmissionService(onboarding *OnboardingService, erp ERPClient) *SubmissionService {
	return &SubmissionService{
		Onboarding: onboarding,
		ERP:        erp,
	}
}

// Submit gates on the Review step's validator (terms acceptance) and
// then runs the ERP write sequence. External verification statuses are
// advisory and deliberately not consulted here.
func (s *SubmissionService) Submit(ctx context.Context, supplierID string) (*contract.SubmitResponse, apierror.ErrorResponse) {
	session, apierr := s.Onboarding.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	if session.Submitted {
		return nil, apierror.AlreadySubmittedError
	}
	if verr := ValidateStep(session, entity.StepReview); verr != nil {
		return nil, verr
	}

	// The supplier record must already exist in the ERP; everything
	// below writes onto or links against it.
	supplier, err := s.ERP.GetSupplier(ctx, supplierID)
	if err != nil {
		log.Errorf("ERP supplier lookup failed for %s: %v", supplierID, err)
		return &contract.SubmitResponse{Success: false, Message: "Could not find the supplier record, please try again"}, nil
	}
	if supplier.Disabled != 0 {
		return &contract.SubmitResponse{Success: false, Message: "The supplier record is disabled, please contact support"}, nil
	}

	if err := s.ERP.UpdateSupplier(ctx, supplierID, supplierFields(session)); err != nil {
		log.Errorf("ERP supplier update failed for %s: %v", supplierID, err)
		return &contract.SubmitResponse{Success: false, Message: "Could not update the supplier record, please try again"}, nil
	}

	if err := s.ERP.CreateAddress(ctx, toERPAddress(session, "Registered", session.BasicInfo.Registered)); err != nil {
		log.Errorf("ERP address creation failed for %s: %v", supplierID, err)
		return &contract.SubmitResponse{Success: false, Message: "Could not save the registered address, please try again"}, nil
	}

	if session.BasicInfo.BillingDiffers {
		if err := s.ERP.CreateAddress(ctx, toERPAddress(session, "Billing", session.BasicInfo.Billing)); err != nil {
			log.Errorf("ERP billing address creation failed for %s: %v", supplierID, err)
			return &contract.SubmitResponse{Success: false, Message: "Could not save the billing address, please try again"}, nil
		}
	}

	if err := s.ERP.EnsureBank(ctx, session.Bank.BankName); err != nil {
		log.Errorf("ERP bank lookup/create failed for %s: %v", supplierID, err)
		return &contract.SubmitResponse{Success: false, Message: "Could not save the bank details, please try again"}, nil
	}

	if err := s.ERP.CreateBankAccount(ctx, toERPBankAccount(session)); err != nil {
		log.Errorf("ERP bank account creation failed for %s: %v", supplierID, err)
		return &contract.SubmitResponse{Success: false, Message: "Could not save the bank account, please try again"}, nil
	}

	session.Submitted = true
	if serr := s.Onboarding.save(session); serr != nil {
		return nil, serr
	}

	return &contract.SubmitResponse{Success: true, Message: "Onboarding submitted successfully"}, nil
}

func supplierFields(s *entity.OnboardingSession) map[string]any {
	fields := map[string]any{
		"supplier_name": s.BasicInfo.CompanyName,
		"supplier_type": s.BasicInfo.BusinessType,
		"email_id":      s.BasicInfo.Email,
		"mobile_no":     s.BasicInfo.Phone,
		"pan":           s.PAN.Number,
	}
	if s.GST.Status == entity.GSTRegistered {
		fields["gstin"] = s.GST.GSTIN
	}
	return fields
}

func toERPAddress(s *entity.OnboardingSession, addrType string, a entity.Address) *erpnext.Address {
	return &erpnext.Address{
		AddressTitle: s.BasicInfo.CompanyName + " " + addrType,
		AddressType:  addrType,
		AddressLine1: a.Line1,
		AddressLine2: a.Line2,
		City:         a.City,
		State:        a.State,
		Pincode:      a.Pincode,
		Country:      "India",
		Links: []erpnext.DocLink{
			{LinkDoctype: "Supplier", LinkName: s.SupplierID},
		},
	}
}

func toERPBankAccount(s *entity.OnboardingSession) *erpnext.BankAccount {
	return &erpnext.BankAccount{
		AccountName: s.Bank.AccountName,
		Bank:        s.Bank.BankName,
		BankAccount: s.Bank.AccountNumber,
		Branch:      s.Bank.BranchName,
		IFSC:        s.Bank.IFSC,
		Party:       s.SupplierID,
		PartyType:   "Supplier",
		IsDefault:   1,
		Links: []erpnext.DocLink{
			{LinkDoctype: "Supplier", LinkName: s.SupplierID},
		},
	}
}
