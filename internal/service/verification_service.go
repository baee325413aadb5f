package service

import (
	"context"
	"sync"
	"time"

	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/infrastructure/kycapi"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// VerificationService coordinates the advisory external checks. Rapid
// edits to the same field collapse into a single outbound call for the
// final settled value (debounce); an input unchanged since its last
// successful check is never re-sent; and every outbound call carries a
// snowflake token so a superseded response arriving late is discarded
// instead of overwriting a newer state.
type VerificationService struct {
	Checks   VerificationRepository
	Sessions SessionRepository
	KYC      kycapi.Verifier
	Validate *validator.Validate

	node     *snowflake.Node
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewVerificationService(
	checks VerificationRepository,
	sessions SessionRepository,
	kyc kycapi.Verifier,
	validate *validator.Validate,
	node *snowflake.Node,
	debounce time.Duration,
) *VerificationService {
	return &VerificationService{
		Checks:   checks,
		Sessions: sessions,
		KYC:      kyc,
		Validate: validate,
		node:     node,
		debounce: debounce,
		pending:  make(map[string]*time.Timer),
	}
}

// Request schedules a verification for the given field. The reply is
// immediate: either the already-verified status (input unchanged) or
// "pending" while the debounced call settles.
func (v *VerificationService) Request(supplierID string, field entity.VerifyField, req *contract.VerifyRequest) (*contract.VerificationStatus, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := v.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	check, err := v.Checks.Find(supplierID, field)
	if err != nil {
		log.Errorf("failed to fetch %s check for supplier %s: %v", field, supplierID, err)
		return nil, apierror.InternalServerError
	}

	value := requestValue(req)
	if check != nil && check.Status == entity.VerifySuccess && check.LastValue == value {
		// Unchanged since the last successful check: skip the call
		return toVerificationStatus(check), nil
	}

	if check == nil {
		check = &entity.VerificationCheck{SupplierID: supplierID, Field: field}
	}

	// Claiming the field stamps a fresh token right away, so an older
	// call still in flight loses ownership the moment this request
	// lands, not when its own dispatch eventually runs.
	token := v.node.Generate().Int64()
	check.Status = entity.VerifyPending
	check.Message = ""
	check.Token = token
	check.UpdatedAt = utils.NowUTC()
	if err := v.Checks.Save(check); err != nil {
		log.Errorf("failed to save %s check for supplier %s: %v", field, supplierID, err)
		return nil, apierror.InternalServerError
	}

	v.schedule(supplierID, field, req.Value, req.Extra, token)
	return toVerificationStatus(check), nil
}

// Status answers the current state of one field's check without
// triggering anything.
func (v *VerificationService) Status(supplierID string, field entity.VerifyField) (*contract.VerificationStatus, apierror.ErrorResponse) {
	check, err := v.Checks.Find(supplierID, field)
	if err != nil {
		log.Errorf("failed to fetch %s check for supplier %s: %v", field, supplierID, err)
		return nil, apierror.InternalServerError
	}

	if check == nil {
		return &contract.VerificationStatus{Status: string(entity.VerifyNone)}, nil
	}
	return toVerificationStatus(check), nil
}

// schedule resets the field's debounce timer so that only the last
// value of an edit burst goes out.
func (v *VerificationService) schedule(supplierID string, field entity.VerifyField, value, extra string, token int64) {
	key := supplierID + "/" + string(field)

	v.mu.Lock()
	defer v.mu.Unlock()

	if timer, ok := v.pending[key]; ok {
		timer.Stop()
	}
	v.pending[key] = time.AfterFunc(v.debounce, func() {
		v.mu.Lock()
		delete(v.pending, key)
		v.mu.Unlock()

		v.dispatch(supplierID, field, value, extra, token)
	})
}

// dispatch performs the outbound call and records the outcome. The
// token it carries is the one its Request stamped on the check; when
// the stored token differs, either before the call or at write time, a
// newer request owns the field and this outcome is discarded.
func (v *VerificationService) dispatch(supplierID string, field entity.VerifyField, value, extra string, token int64) {
	check, err := v.Checks.Find(supplierID, field)
	if err != nil || check == nil {
		log.Errorf("failed to fetch %s check before dispatch for supplier %s: %v", field, supplierID, err)
		return
	}
	if check.Token != token {
		log.Debugf("skipping superseded %s verification for supplier %s", field, supplierID)
		return
	}

	success, message, merge := v.callProvider(field, value, extra)

	// Reload and compare again: a newer request may have claimed the
	// field while the call was in flight
	check, err = v.Checks.Find(supplierID, field)
	if err != nil || check == nil {
		return
	}
	if check.Token != token {
		log.Debugf("discarding stale %s verification for supplier %s", field, supplierID)
		return
	}
	if check.Status != entity.VerifyPending {
		// The input was edited while the call was in flight
		return
	}

	if success {
		check.Status = entity.VerifySuccess
	} else {
		check.Status = entity.VerifyError
	}
	check.Message = message
	check.LastValue = combinedValue(value, extra)
	check.UpdatedAt = utils.NowUTC()
	if err := v.Checks.Save(check); err != nil {
		log.Errorf("failed to record %s verification for supplier %s: %v", field, supplierID, err)
		return
	}

	if success && merge != nil {
		v.mergeNormalized(supplierID, merge)
	}
}

// callProvider runs the external check for one field and returns the
// outcome plus any normalized fields to merge back into the session.
func (v *VerificationService) callProvider(field entity.VerifyField, value, extra string) (bool, string, func(*entity.OnboardingSession)) {
	ctx := context.Background()

	switch field {
	case entity.FieldPAN:
		res, err := v.KYC.VerifyPAN(ctx, value)
		if err != nil {
			return false, apierror.VerificationFailedError.Message, nil
		}
		return res.Success, res.Message, func(s *entity.OnboardingSession) {
			if res.HolderName != "" {
				s.PAN.HolderName = res.HolderName
			}
		}

	case entity.FieldGSTIN:
		res, err := v.KYC.VerifyGSTIN(ctx, value)
		if err != nil {
			return false, apierror.VerificationFailedError.Message, nil
		}
		return res.Success, res.Message, nil

	case entity.FieldBank:
		res, err := v.KYC.VerifyBankAccount(ctx, value, extra)
		if err != nil {
			return false, apierror.VerificationFailedError.Message, nil
		}
		return res.Success, res.Message, func(s *entity.OnboardingSession) {
			if res.BankName != "" {
				s.Bank.BankName = res.BankName
			}
			if res.BranchName != "" {
				s.Bank.BranchName = res.BranchName
			}
		}

	case entity.FieldMSME:
		res, err := v.KYC.VerifyMSME(ctx, value)
		if err != nil {
			return false, apierror.VerificationFailedError.Message, nil
		}
		return res.Success, res.Message, nil

	default:
		return false, apierror.UnknownVerifyFieldError.Message, nil
	}
}

// mergeNormalized writes provider-normalized fields (bank name, branch,
// PAN holder) back into the session. Failures only log: the check
// outcome is already recorded.
func (v *VerificationService) mergeNormalized(supplierID string, merge func(*entity.OnboardingSession)) {
	session, err := v.Sessions.FindBySupplierID(supplierID)
	if err != nil || session == nil {
		log.Errorf("failed to fetch session for normalized merge, supplier %s: %v", supplierID, err)
		return
	}

	merge(session)
	session.UpdatedAt = utils.NowUTC()
	if err := v.Sessions.Save(session); err != nil {
		log.Errorf("failed to merge normalized fields for supplier %s: %v", supplierID, err)
	}
}

// ParseField maps a route parameter onto a tracked verification field.
func ParseField(raw string) (entity.VerifyField, bool) {
	switch entity.VerifyField(raw) {
	case entity.FieldPAN, entity.FieldGSTIN, entity.FieldBank, entity.FieldMSME:
		return entity.VerifyField(raw), true
	default:
		return "", false
	}
}

func requestValue(req *contract.VerifyRequest) string {
	return combinedValue(req.Value, req.Extra)
}

func combinedValue(value, extra string) string {
	if extra == "" {
		return value
	}
	return value + "|" + extra
}

func toVerificationStatus(check *entity.VerificationCheck) *contract.VerificationStatus {
	return &contract.VerificationStatus{
		Status:    string(check.Status),
		Message:   check.Message,
		CheckedAt: utils.FormatEpoch(check.UpdatedAt),
	}
}
