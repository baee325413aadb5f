package service

import (
	"strings"

	"supplierhub/internal/domain/entity"
	"supplierhub/internal/pincode"
	"supplierhub/internal/utils/apierror"
	"supplierhub/internal/utils/validators"
)

// stepValidator checks one section for completeness before the wizard
// may advance past it. Validators are pure over the session: same data,
// same verdict, and the only output is the first failing rule's message.
// Rules run in a fixed priority: presence, then format, then
// cross-field checks. External verification results are advisory and
// never consulted here.
type stepValidator func(s *entity.OnboardingSession) *apierror.APIError

// stepValidators is indexed by entity.Step; slot 0 is unused.
var stepValidators = [entity.StepLast + 1]stepValidator{
	entity.StepBasicInfo:   validateBasicInfo,
	entity.StepContacts:    validateContacts,
	entity.StepPAN:         validatePAN,
	entity.StepGST:         validateGST,
	entity.StepBank:        validateBank,
	entity.StepMSME:        validateMSME,
	entity.StepDrugLicense: validateDrugLicense,
	entity.StepCommercial:  validateCommercial,
	entity.StepReview:      validateReview,
}

func validateBasicInfo(s *entity.OnboardingSession) *apierror.APIError {
	b := &s.BasicInfo

	if b.CompanyName == "" {
		return apierror.NewStepError("Please enter the company name")
	}
	if b.Email == "" {
		return apierror.NewStepError("Please enter an email address")
	}
	if !strings.Contains(b.Email, "@") {
		return apierror.NewStepError("Please enter a valid email address")
	}
	if b.Phone == "" {
		return apierror.NewStepError("Please enter a phone number")
	}
	if !validators.IsTenDigits(b.Phone) {
		return apierror.NewStepError("Phone number must be exactly 10 digits")
	}
	if b.BusinessType == "" {
		return apierror.NewStepError("Please select a business type")
	}

	if err := validateAddress("registered", &b.Registered); err != nil {
		return err
	}

	// Billing fields only matter when flagged as different
	if b.BillingDiffers {
		if err := validateAddress("billing", &b.Billing); err != nil {
			return err
		}
	}
	return nil
}

func validateAddress(label string, a *entity.Address) *apierror.APIError {
	if a.Line1 == "" {
		return apierror.NewStepError("Please enter the %s address", label)
	}
	if a.City == "" {
		return apierror.NewStepError("Please enter the %s address city", label)
	}
	if a.State == "" {
		return apierror.NewStepError("Please select the %s address state", label)
	}
	if a.Pincode == "" {
		return apierror.NewStepError("Please enter the %s address PIN code", label)
	}
	if !pincode.IsWellFormed(a.Pincode) {
		return apierror.NewStepError("PIN code must be exactly 6 digits")
	}
	if !pincode.ValidateForState(a.Pincode, a.State) {
		return apierror.NewStepError("PIN code %s does not belong to %s", a.Pincode, a.State)
	}
	return nil
}

func validateContacts(s *entity.OnboardingSession) *apierror.APIError {
	c := &s.Contacts

	mandatory := []struct {
		label   string
		contact *entity.Contact
	}{
		{"transaction contact", &c.Transaction},
		{"first escalation contact", &c.EscalationL1},
		{"second escalation contact", &c.EscalationL2},
	}

	for _, m := range mandatory {
		if err := validateContact(m.label, m.contact); err != nil {
			return err
		}
	}

	// The optional contact is all-or-nothing: once any field is filled,
	// the whole contact must be complete.
	if !c.Optional.IsEmpty() {
		if err := validateContact("additional contact", &c.Optional); err != nil {
			return err
		}
	}
	return nil
}

func validateContact(label string, c *entity.Contact) *apierror.APIError {
	if c.Name == "" {
		return apierror.NewStepError("Please enter the %s name", label)
	}
	if c.Phone == "" {
		return apierror.NewStepError("Please enter the %s phone number", label)
	}
	if !validators.IsTenDigits(c.Phone) {
		return apierror.NewStepError("The %s phone number must be exactly 10 digits", label)
	}
	if c.Email == "" {
		return apierror.NewStepError("Please enter the %s email address", label)
	}
	if !strings.Contains(c.Email, "@") {
		return apierror.NewStepError("Please enter a valid %s email address", label)
	}
	return nil
}

func validatePAN(s *entity.OnboardingSession) *apierror.APIError {
	p := &s.PAN

	if p.Number == "" {
		return apierror.NewStepError("Please enter the PAN number")
	}
	if !validators.IsPAN(p.Number) {
		return apierror.NewStepError("PAN must be 5 letters, 4 digits and a letter (AAAAA9999A)")
	}
	if p.HolderName == "" {
		return apierror.NewStepError("Please enter the name as on the PAN card")
	}
	if p.DOB == "" {
		return apierror.NewStepError("Please enter the date of birth")
	}
	if !validators.IsISODate(p.DOB) {
		return apierror.NewStepError("Date of birth must be in YYYY-MM-DD format")
	}
	if p.DocumentID == 0 {
		return apierror.NewStepError("Please upload a copy of the PAN card")
	}
	return nil
}

func validateGST(s *entity.OnboardingSession) *apierror.APIError {
	g := &s.GST

	if g.Status == "" {
		return apierror.NewStepError("Please select the GST registration status")
	}

	// GSTIN and the certificate matter only for registered suppliers
	if g.Status != entity.GSTRegistered {
		return nil
	}

	if g.GSTIN == "" {
		return apierror.NewStepError("Please enter the GSTIN")
	}
	if !validators.IsGSTIN(g.GSTIN) {
		return apierror.NewStepError("GSTIN must be a valid 15-character number")
	}
	if g.DocumentID == 0 {
		return apierror.NewStepError("Please upload the GST registration certificate")
	}
	return nil
}

func validateBank(s *entity.OnboardingSession) *apierror.APIError {
	b := &s.Bank

	if b.AccountName == "" {
		return apierror.NewStepError("Please enter the account holder name")
	}
	if b.AccountNumber == "" {
		return apierror.NewStepError("Please enter the account number")
	}
	if b.ConfirmNumber == "" {
		return apierror.NewStepError("Please re-enter the account number")
	}

	// The match check runs before any IFSC rule
	if b.AccountNumber != b.ConfirmNumber {
		return apierror.NewStepError("Account numbers do not match")
	}

	if b.IFSC == "" {
		return apierror.NewStepError("Please enter the IFSC code")
	}
	if !validators.IsIFSC(b.IFSC) {
		return apierror.NewStepError("IFSC code must be exactly 11 characters")
	}
	return nil
}

func validateMSME(s *entity.OnboardingSession) *apierror.APIError {
	m := &s.MSME

	if m.Registered == "" {
		return apierror.NewStepError("Please select whether the company is MSME registered")
	}
	if m.Registered != entity.AnswerYes {
		return nil
	}

	if m.UdyamNumber == "" {
		return apierror.NewStepError("Please enter the Udyam registration number")
	}
	if m.DocumentID == 0 {
		return apierror.NewStepError("Please upload the Udyam registration certificate")
	}
	return nil
}

func validateDrugLicense(s *entity.OnboardingSession) *apierror.APIError {
	d := &s.DrugLicense

	if d.Held == "" {
		return apierror.NewStepError("Please select whether the company holds a drug license")
	}
	if d.Held != entity.AnswerYes {
		return nil
	}

	if d.LicenseNumber == "" {
		return apierror.NewStepError("Please enter the drug license number")
	}
	if d.DocumentID == 0 {
		return apierror.NewStepError("Please upload a copy of the drug license")
	}
	return nil
}

func validateCommercial(s *entity.OnboardingSession) *apierror.APIError {
	c := &s.Commercial

	if c.DiscountBasis == "" {
		return apierror.NewStepError("Please select the discount basis")
	}
	if c.CreditDays < 0 {
		return apierror.NewStepError("Credit days cannot be negative")
	}

	percentages := []struct {
		label string
		value *float64
	}{
		{"invoice discount", c.InvoiceDiscountPct},
		{"expired return", c.ExpiredReturnPct},
		{"damaged return", c.DamagedReturnPct},
		{"near-expiry return", c.NearExpiryReturnPct},
	}

	for _, p := range percentages {
		if p.value == nil {
			continue
		}
		if *p.value < 0 || *p.value > 100 {
			return apierror.NewStepError("The %s percentage must be between 0 and 100", p.label)
		}
	}

	if c.IsAuthorizedDistributor == "" {
		return apierror.NewStepError("Please select whether the company is an authorized distributor")
	}
	if c.IsAuthorizedDistributor != entity.AnswerYes {
		return nil
	}

	if len(s.Distributors) == 0 {
		return apierror.NewStepError("Please add at least one authorized distributorship")
	}
	for _, d := range s.Distributors {
		if d.Name == "" {
			return apierror.NewStepError("Every distributorship entry needs a company name")
		}
		if d.DocumentID == 0 {
			return apierror.NewStepError("Please upload the authorization certificate for %s", d.Name)
		}
	}
	return nil
}

func validateReview(s *entity.OnboardingSession) *apierror.APIError {
	if !s.TermsAccepted {
		return apierror.NewStepError("Please accept the terms and conditions before submitting")
	}
	return nil
}

// ValidateStep runs the validator of a single step. Out-of-range steps
// are saturated first, mirroring the navigation rules.
func ValidateStep(s *entity.OnboardingSession, step entity.Step) *apierror.APIError {
	return stepValidators[step.Clamp()](s)
}
