package contract

// Section update requests. Every field is a pointer: only the fields
// present in the PATCH body are merged into the stored section, the
// rest stay untouched. Format rules are not enforced here, a section
// may hold half-typed values until its step's "Next" gate runs.

type AddressUpdate struct {
	Line1   *string `json:"line1" validate:"omitempty,max=140"`
	Line2   *string `json:"line2" validate:"omitempty,max=140"`
	City    *string `json:"city" validate:"omitempty,max=80"`
	State   *string `json:"state" validate:"omitempty,max=80"`
	Pincode *string `json:"pincode" validate:"omitempty,max=6"`
}

type BasicInfoUpdate struct {
	CompanyName  *string `json:"company_name" validate:"omitempty,max=140"`
	Email        *string `json:"email" validate:"omitempty,max=140"`
	Phone        *string `json:"phone" validate:"omitempty,max=15"`
	BusinessType *string `json:"business_type" validate:"omitempty,max=80"`

	Registered *AddressUpdate `json:"registered_address"`

	BillingDiffers *bool          `json:"billing_differs"`
	Billing        *AddressUpdate `json:"billing_address"`
}

type ContactUpdate struct {
	Name  *string `json:"name" validate:"omitempty,max=140"`
	Phone *string `json:"phone" validate:"omitempty,max=15"`
	Email *string `json:"email" validate:"omitempty,max=140"`
}

type ContactsUpdate struct {
	Transaction  *ContactUpdate `json:"transaction"`
	EscalationL1 *ContactUpdate `json:"escalation_l1"`
	EscalationL2 *ContactUpdate `json:"escalation_l2"`
	Optional     *ContactUpdate `json:"optional"`
}

type PANUpdate struct {
	Number     *string `json:"number" validate:"omitempty,max=10"`
	HolderName *string `json:"holder_name" validate:"omitempty,max=140"`
	DOB        *string `json:"dob" validate:"omitempty,max=10"`
}

type GSTUpdate struct {
	Status *string `json:"status" validate:"omitempty,oneof=registered unregistered"`
	GSTIN  *string `json:"gstin" validate:"omitempty,max=15"`
}

type BankUpdate struct {
	AccountName   *string `json:"account_name" validate:"omitempty,max=140"`
	AccountNumber *string `json:"account_number" validate:"omitempty,max=34"`
	ConfirmNumber *string `json:"confirm_number" validate:"omitempty,max=34"`
	IFSC          *string `json:"ifsc" validate:"omitempty,max=11"`
	BankName      *string `json:"bank_name" validate:"omitempty,max=140"`
	BranchName    *string `json:"branch_name" validate:"omitempty,max=140"`
}

type MSMEUpdate struct {
	Registered  *string `json:"registered" validate:"omitempty,oneof=Yes No"`
	UdyamNumber *string `json:"udyam_number" validate:"omitempty,max=30"`
}

type DrugLicenseUpdate struct {
	Held          *string `json:"held" validate:"omitempty,oneof=Yes No"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=40"`
}

type DistributorUpdate struct {
	ID   int     `json:"id"`
	Name *string `json:"name" validate:"omitempty,max=140"`
}

type CommercialUpdate struct {
	CreditDays         *int     `json:"credit_days" validate:"omitempty,min=0,max=365"`
	DiscountBasis      *string  `json:"discount_basis" validate:"omitempty,max=80"`
	InvoiceDiscountPct *float64 `json:"invoice_discount_pct"`

	IsAuthorizedDistributor *string `json:"is_authorized_distributor" validate:"omitempty,oneof=Yes No"`

	ExpiredReturnPct    *float64 `json:"expired_return_pct"`
	DamagedReturnPct    *float64 `json:"damaged_return_pct"`
	NearExpiryReturnPct *float64 `json:"near_expiry_return_pct"`

	Distributors []*DistributorUpdate `json:"distributors" validate:"omitempty,dive"`
}

type ReviewUpdate struct {
	TermsAccepted *bool `json:"terms_accepted"`
}

// GoToStepRequest carries the target step of a review-edit jump. No
// bounds are validated here: out-of-range values saturate to the
// nearest end of the wizard.
type GoToStepRequest struct {
	Step int `json:"step"`
}
