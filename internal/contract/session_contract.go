package contract

// SessionResponse is the full read model of one onboarding session:
// wizard position, every section, verification statuses and attachment
// handles. The Review step renders straight from it.
type SessionResponse struct {
	SupplierID  string `json:"supplier_id"`
	CurrentStep int    `json:"current_step"`
	StepName    string `json:"step_name"`
	Submitted   bool   `json:"submitted"`

	BasicInfo   BasicInfoResponse   `json:"basic_info"`
	Contacts    ContactsResponse    `json:"contacts"`
	PAN         PANResponse         `json:"pan"`
	GST         GSTResponse         `json:"gst"`
	Bank        BankResponse        `json:"bank"`
	MSME        MSMEResponse        `json:"msme"`
	DrugLicense DrugLicenseResponse `json:"drug_license"`
	Commercial  CommercialResponse  `json:"commercial"`

	TermsAccepted bool `json:"terms_accepted"`

	Verifications map[string]VerificationStatus `json:"verifications"`
	Attachments   []*AttachmentResponse         `json:"attachments"`

	UpdatedAt string `json:"updated_at"`
}

type AddressResponse struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type BasicInfoResponse struct {
	CompanyName  string `json:"company_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessType string `json:"business_type"`

	Registered AddressResponse `json:"registered_address"`

	BillingDiffers bool             `json:"billing_differs"`
	Billing        *AddressResponse `json:"billing_address,omitempty"`
}

type ContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ContactsResponse struct {
	Transaction  ContactResponse  `json:"transaction"`
	EscalationL1 ContactResponse  `json:"escalation_l1"`
	EscalationL2 ContactResponse  `json:"escalation_l2"`
	Optional     *ContactResponse `json:"optional,omitempty"`
}

type PANResponse struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	DOB        string `json:"dob"`
	DocumentID int    `json:"document_id,omitempty"`
}

type GSTResponse struct {
	Status     string `json:"status"`
	GSTIN      string `json:"gstin"`
	DocumentID int    `json:"document_id,omitempty"`
}

type BankResponse struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	ConfirmNumber string `json:"confirm_number"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bank_name"`
	BranchName    string `json:"branch_name"`
}

type MSMEResponse struct {
	Registered  string `json:"registered"`
	UdyamNumber string `json:"udyam_number"`
	DocumentID  int    `json:"document_id,omitempty"`
}

type DrugLicenseResponse struct {
	Held          string `json:"held"`
	LicenseNumber string `json:"license_number"`
	DocumentID    int    `json:"document_id,omitempty"`
}

type DistributorResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DocumentID int    `json:"document_id,omitempty"`
}

type CommercialResponse struct {
	CreditDays         int      `json:"credit_days"`
	DiscountBasis      string   `json:"discount_basis"`
	InvoiceDiscountPct *float64 `json:"invoice_discount_pct,omitempty"`

	IsAuthorizedDistributor string `json:"is_authorized_distributor"`

	ExpiredReturnPct    *float64 `json:"expired_return_pct,omitempty"`
	DamagedReturnPct    *float64 `json:"damaged_return_pct,omitempty"`
	NearExpiryReturnPct *float64 `json:"near_expiry_return_pct,omitempty"`

	Distributors []*DistributorResponse `json:"distributors"`
}

// VerificationStatus is the advisory state of one external check; it
// never blocks step progression.
type VerificationStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	CheckedAt string `json:"checked_at,omitempty"`
}

type AttachmentResponse struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
