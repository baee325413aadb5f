package entity

// YesNo mirrors the form's toggle fields. The zero value means the
// supplier has not answered yet.
type YesNo string

const (
	AnswerYes YesNo = "Yes"
	AnswerNo  YesNo = "No"
)

// GST registration statuses as collected on the form.
const (
	GSTRegistered   = "registered"
	GSTUnregistered = "unregistered"
)

// Address is one postal address block on the Basic Info step.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
}

// BasicInfo is the first wizard section: company identity and the
// registered (and optionally separate billing) address.
type BasicInfo struct {
	CompanyName  string
	Email        string
	Phone        string
	BusinessType string

	Registered Address `gorm:"embedded;embeddedPrefix:reg_"`

	// Billing fields are required only when this flag is set.
	BillingDiffers bool
	Billing        Address `gorm:"embedded;embeddedPrefix:bill_"`
}

// Contact is one named person on the Contact Information step.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// IsEmpty reports whether no field of the contact has been filled.
func (c Contact) IsEmpty() bool {
	return c.Name == "" && c.Phone == "" && c.Email == ""
}

// ContactInformation holds the transaction contact, the two mandatory
// escalation contacts, and one optional all-or-nothing contact.
type ContactInformation struct {
	Transaction  Contact `gorm:"embedded;embeddedPrefix:txn_"`
	EscalationL1 Contact `gorm:"embedded;embeddedPrefix:esc1_"`
	EscalationL2 Contact `gorm:"embedded;embeddedPrefix:esc2_"`
	Optional     Contact `gorm:"embedded;embeddedPrefix:opt_"`
}

// PANDetails is the tax-identity section. DocumentID references the
// uploaded PAN card attachment (0 = none).
type PANDetails struct {
	Number     string
	HolderName string
	DOB        string // YYYY-MM-DD
	DocumentID int
}

// GSTInfo is the GST registration section. GSTIN and the certificate are
// required only when Status is GSTRegistered.
type GSTInfo struct {
	Status     string
	GSTIN      string
	DocumentID int
}

// BankAccountData is the settlement account section. BankName and
// BranchName are filled back from a successful IFSC lookup.
type BankAccountData struct {
	AccountName   string
	AccountNumber string
	ConfirmNumber string
	IFSC          string
	BankName      string
	BranchName    string
}

// MSMEStatus is the Udyam registration section.
type MSMEStatus struct {
	Registered  YesNo
	UdyamNumber string
	DocumentID  int
}

// DrugLicenseData is the pharma licence section.
type DrugLicenseData struct {
	Held          YesNo
	LicenseNumber string
	DocumentID    int
}

// CommercialDetails is the commercial-terms section. Percentage fields
// must lie in [0, 100]; pointers distinguish "not answered" from zero.
type CommercialDetails struct {
	CreditDays         int
	DiscountBasis      string
	InvoiceDiscountPct *float64

	IsAuthorizedDistributor YesNo

	// Return (credit note) policy percentages
	ExpiredReturnPct    *float64
	DamagedReturnPct    *float64
	NearExpiryReturnPct *float64
}

// OnboardingSession is the single aggregate for one supplier's
// onboarding: wizard position plus every collected section. It is
// created on first load, mutated one section at a time, and reset after
// the supplier acknowledges a successful submission.
type OnboardingSession struct {
	ID         int    `gorm:"primaryKey"`
	SupplierID string `gorm:"uniqueIndex;not null"`

	CurrentStep Step `gorm:"not null;default:1"`

	BasicInfo   BasicInfo          `gorm:"embedded;embeddedPrefix:basic_"`
	Contacts    ContactInformation `gorm:"embedded;embeddedPrefix:contact_"`
	PAN         PANDetails         `gorm:"embedded;embeddedPrefix:pan_"`
	GST         GSTInfo            `gorm:"embedded;embeddedPrefix:gst_"`
	Bank        BankAccountData    `gorm:"embedded;embeddedPrefix:bank_"`
	MSME        MSMEStatus         `gorm:"embedded;embeddedPrefix:msme_"`
	DrugLicense DrugLicenseData    `gorm:"embedded;embeddedPrefix:drug_"`
	Commercial  CommercialDetails  `gorm:"embedded;embeddedPrefix:comm_"`

	TermsAccepted bool `gorm:"not null;default:false"`
	Submitted     bool `gorm:"not null;default:false"`

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Distributors []*AuthorizedDistributor `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE;"`
}

// Advance moves to the next step, saturating at the last one.
func (s *OnboardingSession) Advance() {
	s.CurrentStep = (s.CurrentStep + 1).Clamp()
}

// Retreat moves to the previous step, saturating at the first one.
func (s *OnboardingSession) Retreat() {
	s.CurrentStep = (s.CurrentStep - 1).Clamp()
}

// GoTo jumps to an arbitrary step, saturating out-of-range targets.
// Used by the Review step's edit links.
func (s *OnboardingSession) GoTo(step Step) {
	s.CurrentStep = step.Clamp()
}

// Reset clears the collected data and puts the wizard back on the first
// step. SupplierID and timestamps survive.
func (s *OnboardingSession) Reset() {
	s.CurrentStep = StepFirst
	s.BasicInfo = BasicInfo{}
	s.Contacts = ContactInformation{}
	s.PAN = PANDetails{}
	s.GST = GSTInfo{}
	s.Bank = BankAccountData{}
	s.MSME = MSMEStatus{}
	s.DrugLicense = DrugLicenseData{}
	s.Commercial = CommercialDetails{}
	s.TermsAccepted = false
	s.Submitted = false
	s.Distributors = nil
}

// AuthorizedDistributor is one entry of the Commercial step's
// authorized-distributor list. DocumentID references the uploaded
// authorization certificate (0 = none).
type AuthorizedDistributor struct {
	ID         int    `gorm:"primaryKey"`
	SessionID  int    `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	DocumentID int
}
