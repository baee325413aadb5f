package service

import (
	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// sectionUpdater acts as a "Change Set" context for one section PATCH.
// It shallow-merges the present fields, tracks whether a save is
// actually needed, and collects which external verifications the edit
// invalidates.
type sectionUpdater struct {
	dirty       bool
	invalidated []entity.VerifyField
}

func (u *sectionUpdater) setString(newVal *string, targetField *string) {
	if newVal == nil || *newVal == *targetField {
		return
	}
	*targetField = *newVal
	u.dirty = true
}

// setTracked is setString for a field backed by an external
// verification: a value change moves that check back to "none".
func (u *sectionUpdater) setTracked(newVal *string, targetField *string, field entity.VerifyField) {
	if newVal == nil || *newVal == *targetField {
		return
	}
	*targetField = *newVal
	u.dirty = true
	u.invalidated = append(u.invalidated, field)
}

func (u *sectionUpdater) setBool(newVal *bool, targetField *bool) {
	if newVal == nil || *newVal == *targetField {
		return
	}
	*targetField = *newVal
	u.dirty = true
}

func (u *sectionUpdater) setInt(newVal *int, targetField *int) {
	if newVal == nil || *newVal == *targetField {
		return
	}
	*targetField = *newVal
	u.dirty = true
}

func (u *sectionUpdater) setFloat(newVal *float64, targetField **float64) {
	if newVal == nil {
		return
	}
	if *targetField != nil && **targetField == *newVal {
		return
	}
	v := *newVal
	*targetField = &v
	u.dirty = true
}

func (u *sectionUpdater) setYesNo(newVal *string, targetField *entity.YesNo) {
	if newVal == nil || entity.YesNo(*newVal) == *targetField {
		return
	}
	*targetField = entity.YesNo(*newVal)
	u.dirty = true
}

func (u *sectionUpdater) mergeAddress(req *contract.AddressUpdate, a *entity.Address) {
	if req == nil {
		return
	}
	u.setString(req.Line1, &a.Line1)
	u.setString(req.Line2, &a.Line2)
	u.setString(req.City, &a.City)
	u.setString(req.State, &a.State)
	u.setString(req.Pincode, &a.Pincode)
}

func (u *sectionUpdater) mergeContact(req *contract.ContactUpdate, c *entity.Contact) {
	if req == nil {
		return
	}
	u.setString(req.Name, &c.Name)
	u.setString(req.Phone, &c.Phone)
	u.setString(req.Email, &c.Email)
}

/*
 * Section update operations. Each merges exactly one sub-record and
 * leaves every other section untouched.
 */

func (o *OnboardingService) UpdateBasicInfo(supplierID string, req *contract.BasicInfoUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		b := &s.BasicInfo
		u.setString(req.CompanyName, &b.CompanyName)
		u.setString(req.Email, &b.Email)
		u.setString(req.Phone, &b.Phone)
		u.setString(req.BusinessType, &b.BusinessType)
		u.mergeAddress(req.Registered, &b.Registered)
		u.setBool(req.BillingDiffers, &b.BillingDiffers)
		u.mergeAddress(req.Billing, &b.Billing)
	})
}

func (o *OnboardingService) UpdateContacts(supplierID string, req *contract.ContactsUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		c := &s.Contacts
		u.mergeContact(req.Transaction, &c.Transaction)
		u.mergeContact(req.EscalationL1, &c.EscalationL1)
		u.mergeContact(req.EscalationL2, &c.EscalationL2)
		u.mergeContact(req.Optional, &c.Optional)
	})
}

func (o *OnboardingService) UpdatePAN(supplierID string, req *contract.PANUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		p := &s.PAN
		u.setTracked(req.Number, &p.Number, entity.FieldPAN)
		u.setString(req.HolderName, &p.HolderName)
		u.setString(req.DOB, &p.DOB)
	})
}

func (o *OnboardingService) UpdateGST(supplierID string, req *contract.GSTUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		g := &s.GST
		u.setString(req.Status, &g.Status)
		u.setTracked(req.GSTIN, &g.GSTIN, entity.FieldGSTIN)
	})
}

func (o *OnboardingService) UpdateBank(supplierID string, req *contract.BankUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		b := &s.Bank
		u.setString(req.AccountName, &b.AccountName)
		u.setTracked(req.AccountNumber, &b.AccountNumber, entity.FieldBank)
		u.setString(req.ConfirmNumber, &b.ConfirmNumber)
		u.setTracked(req.IFSC, &b.IFSC, entity.FieldBank)
		u.setString(req.BankName, &b.BankName)
		u.setString(req.BranchName, &b.BranchName)
	})
}

func (o *OnboardingService) UpdateMSME(supplierID string, req *contract.MSMEUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		m := &s.MSME
		u.setYesNo(req.Registered, &m.Registered)
		u.setTracked(req.UdyamNumber, &m.UdyamNumber, entity.FieldMSME)
	})
}

func (o *OnboardingService) UpdateDrugLicense(supplierID string, req *contract.DrugLicenseUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		d := &s.DrugLicense
		u.setYesNo(req.Held, &d.Held)
		u.setString(req.LicenseNumber, &d.LicenseNumber)
	})
}

func (o *OnboardingService) UpdateCommercial(supplierID string, req *contract.CommercialUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	updater := &sectionUpdater{}
	c := &session.Commercial
	updater.setInt(req.CreditDays, &c.CreditDays)
	updater.setString(req.DiscountBasis, &c.DiscountBasis)
	updater.setFloat(req.InvoiceDiscountPct, &c.InvoiceDiscountPct)
	updater.setYesNo(req.IsAuthorizedDistributor, &c.IsAuthorizedDistributor)
	updater.setFloat(req.ExpiredReturnPct, &c.ExpiredReturnPct)
	updater.setFloat(req.DamagedReturnPct, &c.DamagedReturnPct)
	updater.setFloat(req.NearExpiryReturnPct, &c.NearExpiryReturnPct)

	if apierr := o.upsertDistributors(session, req.Distributors, updater); apierr != nil {
		return nil, apierr
	}

	if updater.dirty {
		if serr := o.save(session); serr != nil {
			return nil, serr
		}
	}
	return o.toResponse(session)
}

func (o *OnboardingService) UpdateReview(supplierID string, req *contract.ReviewUpdate) (*contract.SessionResponse, apierror.ErrorResponse) {
	return o.applyUpdate(supplierID, func(s *entity.OnboardingSession, u *sectionUpdater) {
		u.setBool(req.TermsAccepted, &s.TermsAccepted)
	})
}

// RemoveDistributor drops one entry of the authorized-distributor list.
func (o *OnboardingService) RemoveDistributor(supplierID string, distributorID int) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	var target *entity.AuthorizedDistributor
	remaining := session.Distributors[:0]
	for _, d := range session.Distributors {
		if d.ID == distributorID {
			target = d
			continue
		}
		remaining = append(remaining, d)
	}

	if target == nil {
		return nil, apierror.UnknownDistributorError
	}

	if err := o.Sessions.DeleteDistributor(target); err != nil {
		log.Errorf("failed to delete distributor %d: %v", distributorID, err)
		return nil, apierror.InternalServerError
	}

	session.Distributors = remaining
	if serr := o.save(session); serr != nil {
		return nil, serr
	}
	return o.toResponse(session)
}

func (o *OnboardingService) upsertDistributors(session *entity.OnboardingSession, updates []*contract.DistributorUpdate, u *sectionUpdater) apierror.ErrorResponse {
	for _, upd := range updates {
		if upd == nil {
			continue
		}

		if upd.ID == 0 {
			d := &entity.AuthorizedDistributor{SessionID: session.ID}
			if upd.Name != nil {
				d.Name = *upd.Name
			}
			if err := o.Sessions.SaveDistributor(d); err != nil {
				log.Errorf("failed to create distributor for supplier %s: %v", session.SupplierID, err)
				return apierror.InternalServerError
			}
			session.Distributors = append(session.Distributors, d)
			u.dirty = true
			continue
		}

		found := false
		for _, d := range session.Distributors {
			if d.ID != upd.ID {
				continue
			}
			found = true
			u.setString(upd.Name, &d.Name)
			if err := o.Sessions.SaveDistributor(d); err != nil {
				log.Errorf("failed to update distributor %d: %v", d.ID, err)
				return apierror.InternalServerError
			}
		}
		if !found {
			return apierror.UnknownDistributorError
		}
	}
	return nil
}

// applyUpdate is the shared merge skeleton: load, merge one section,
// reset any invalidated verification, save only when something changed.
func (o *OnboardingService) applyUpdate(supplierID string, merge func(*entity.OnboardingSession, *sectionUpdater)) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	updater := &sectionUpdater{}
	merge(session, updater)

	for _, field := range updater.invalidated {
		if apierr := o.resetCheck(supplierID, field); apierr != nil {
			return nil, apierr
		}
	}

	if updater.dirty {
		if serr := o.save(session); serr != nil {
			return nil, serr
		}
	}
	return o.toResponse(session)
}

// resetCheck moves a verification back to "none" after its input was
// edited. The check row is created lazily, so a missing row already
// means "none".
func (o *OnboardingService) resetCheck(supplierID string, field entity.VerifyField) apierror.ErrorResponse {
	check, err := o.Checks.Find(supplierID, field)
	if err != nil {
		log.Errorf("failed to fetch %s check for supplier %s: %v", field, supplierID, err)
		return apierror.InternalServerError
	}

	if check == nil || check.Status == entity.VerifyNone {
		return nil
	}

	check.Status = entity.VerifyNone
	check.Message = ""
	check.UpdatedAt = utils.NowUTC()
	if err := o.Checks.Save(check); err != nil {
		log.Errorf("failed to reset %s check for supplier %s: %v", field, supplierID, err)
		return apierror.InternalServerError
	}
	return nil
}
