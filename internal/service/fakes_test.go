package service

import (
	"context"
	"sync"

	"supplierhub/internal/domain/entity"
	"supplierhub/internal/infrastructure/kycapi"
	"supplierhub/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("pan", validators.PAN)
	_ = validate.RegisterValidation("gstin", validators.GSTIN)
	_ = validate.RegisterValidation("ifsc", validators.IFSC)
	_ = validate.RegisterValidation("digits10", validators.TenDigits)
	_ = validate.RegisterValidation("pincode", validators.Pincode)
	return validate
}

/*
 * In-memory fakes shared by the service tests.
 */

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.OnboardingSession
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.OnboardingSession{}}
}

func (r *fakeSessionRepo) FindBySupplierID(supplierID string) (*entity.OnboardingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[supplierID], nil
}

func (r *fakeSessionRepo) Save(session *entity.OnboardingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.ID == 0 {
		r.nextID++
		session.ID = r.nextID
	}
	r.sessions[session.SupplierID] = session
	return nil
}

func (r *fakeSessionRepo) SaveDistributor(d *entity.AuthorizedDistributor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == 0 {
		r.nextID++
		d.ID = r.nextID
	}
	return nil
}

func (r *fakeSessionRepo) DeleteDistributor(d *entity.AuthorizedDistributor) error {
	return nil
}

func (r *fakeSessionRepo) DeleteDistributorsBySession(sessionID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ID == sessionID {
			s.Distributors = nil
		}
	}
	return nil
}

type fakeAttachmentRepo struct {
	attachments map[int]*entity.Attachment
	nextID      int
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{attachments: map[int]*entity.Attachment{}}
}

func (r *fakeAttachmentRepo) FindByID(id int) (*entity.Attachment, error) {
	return r.attachments[id], nil
}

func (r *fakeAttachmentRepo) FindBySupplierID(supplierID string) ([]*entity.Attachment, error) {
	var out []*entity.Attachment
	for _, a := range r.attachments {
		if a.SupplierID == supplierID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttachmentRepo) Save(att *entity.Attachment) error {
	if att.ID == 0 {
		r.nextID++
		att.ID = r.nextID
	}
	r.attachments[att.ID] = att
	return nil
}

func (r *fakeAttachmentRepo) DeleteBySupplierID(supplierID string) error {
	for id, a := range r.attachments {
		if a.SupplierID == supplierID {
			delete(r.attachments, id)
		}
	}
	return nil
}

// fakeVerificationRepo hands out copies, so a caller holding a stale
// struct cannot observe later writes, the same way rows behave.
type fakeVerificationRepo struct {
	mu     sync.Mutex
	checks map[string]*entity.VerificationCheck
	nextID int
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{checks: map[string]*entity.VerificationCheck{}}
}

func checkKey(supplierID string, field entity.VerifyField) string {
	return supplierID + "/" + string(field)
}

func (r *fakeVerificationRepo) Find(supplierID string, field entity.VerifyField) (*entity.VerificationCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.checks[checkKey(supplierID, field)]
	if !ok {
		return nil, nil
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeVerificationRepo) FindBySupplierID(supplierID string) ([]*entity.VerificationCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.VerificationCheck
	for _, c := range r.checks {
		if c.SupplierID == supplierID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeVerificationRepo) Save(check *entity.VerificationCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if check.ID == 0 {
		r.nextID++
		check.ID = r.nextID
	}
	clone := *check
	r.checks[checkKey(check.SupplierID, check.Field)] = &clone
	return nil
}

func (r *fakeVerificationRepo) DeleteBySupplierID(supplierID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, c := range r.checks {
		if c.SupplierID == supplierID {
			delete(r.checks, key)
		}
	}
	return nil
}

// fakeS3 keeps uploads in memory and records removed keys.
type fakeS3 struct {
	mu      sync.Mutex
	uploads map[string][]byte
	removed []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{uploads: map[string][]byte{}}
}

func (f *fakeS3) UploadFile(data []byte, filename string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := "supplier-documents/" + filename
	f.uploads[key] = data
	return key, nil
}

func (f *fakeS3) DeleteFile(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.uploads, key)
	f.removed = append(f.removed, key)
	return nil
}

// fakeVerifier records every outbound call and answers with canned
// results. Safe for the debounce timer goroutines.
type fakeVerifier struct {
	mu    sync.Mutex
	calls []string

	// onCall runs while the outbound call is "in flight", letting a test
	// mutate stored state before the dispatcher reloads it.
	onCall func()

	panResult  *kycapi.PANResult
	gstResult  *kycapi.GSTINResult
	bankResult *kycapi.BankResult
	msmeResult *kycapi.MSMEResult
	err        error
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{
		panResult:  &kycapi.PANResult{Result: kycapi.Result{Success: true}},
		gstResult:  &kycapi.GSTINResult{Result: kycapi.Result{Success: true}},
		bankResult: &kycapi.BankResult{Result: kycapi.Result{Success: true}},
		msmeResult: &kycapi.MSMEResult{Result: kycapi.Result{Success: true}},
	}
}

func (f *fakeVerifier) record(call string) {
	f.mu.Lock()
	hook := f.onCall
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
}

func (f *fakeVerifier) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeVerifier) VerifyPAN(ctx context.Context, pan string) (*kycapi.PANResult, error) {
	f.record("pan:" + pan)
	if f.err != nil {
		return nil, f.err
	}
	return f.panResult, nil
}

func (f *fakeVerifier) VerifyGSTIN(ctx context.Context, gstin string) (*kycapi.GSTINResult, error) {
	f.record("gstin:" + gstin)
	if f.err != nil {
		return nil, f.err
	}
	return f.gstResult, nil
}

func (f *fakeVerifier) VerifyBankAccount(ctx context.Context, accountNumber, ifsc string) (*kycapi.BankResult, error) {
	f.record("bank:" + accountNumber + "|" + ifsc)
	if f.err != nil {
		return nil, f.err
	}
	return f.bankResult, nil
}

func (f *fakeVerifier) VerifyMSME(ctx context.Context, udyamNumber string) (*kycapi.MSMEResult, error) {
	f.record("msme:" + udyamNumber)
	if f.err != nil {
		return nil, f.err
	}
	return f.msmeResult, nil
}

// completeSession is a session that passes every step validator.
func completeSession(supplierID string) *entity.OnboardingSession {
	discount := 2.5
	return &entity.OnboardingSession{
		ID:          1,
		SupplierID:  supplierID,
		CurrentStep: entity.StepFirst,
		BasicInfo: entity.BasicInfo{
			CompanyName:  "Acme Pharma Distributors",
			Email:        "accounts@acmepharma.in",
			Phone:        "9876543210",
			BusinessType: "Distributor",
			Registered: entity.Address{
				Line1:   "14 Industrial Estate",
				City:    "Bengaluru",
				State:   "Karnataka",
				Pincode: "560001",
			},
		},
		Contacts: entity.ContactInformation{
			Transaction:  entity.Contact{Name: "Asha Rao", Phone: "9876500001", Email: "asha@acmepharma.in"},
			EscalationL1: entity.Contact{Name: "Vikram Shah", Phone: "9876500002", Email: "vikram@acmepharma.in"},
			EscalationL2: entity.Contact{Name: "Meena Iyer", Phone: "9876500003", Email: "meena@acmepharma.in"},
		},
		PAN: entity.PANDetails{
			Number:     "ABCDE1234F",
			HolderName: "Acme Pharma Distributors",
			DOB:        "1992-03-14",
			DocumentID: 11,
		},
		GST: entity.GSTInfo{
			Status:     entity.GSTRegistered,
			GSTIN:      "29ABCDE1234F1Z5",
			DocumentID: 12,
		},
		Bank: entity.BankAccountData{
			AccountName:   "Acme Pharma Distributors",
			AccountNumber: "50100012345678",
			ConfirmNumber: "50100012345678",
			IFSC:          "HDFC0001234",
			BankName:      "HDFC Bank",
			BranchName:    "MG Road",
		},
		MSME:        entity.MSMEStatus{Registered: entity.AnswerNo},
		DrugLicense: entity.DrugLicenseData{Held: entity.AnswerNo},
		Commercial: entity.CommercialDetails{
			CreditDays:              30,
			DiscountBasis:           "invoice",
			InvoiceDiscountPct:      &discount,
			IsAuthorizedDistributor: entity.AnswerNo,
		},
		TermsAccepted: true,
	}
}

func newTestOnboarding(sessions *fakeSessionRepo, atts *fakeAttachmentRepo, checks *fakeVerificationRepo) *OnboardingService {
	return NewOnboardingService(sessions, atts, checks, newFakeS3(), newTestValidator())
}
