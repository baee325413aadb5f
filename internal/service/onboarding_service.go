package service

import (
	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/infrastructure/aws/storage"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type SessionRepository interface {
	FindBySupplierID(supplierID string) (*entity.OnboardingSession, error)
	Save(session *entity.OnboardingSession) error
	SaveDistributor(d *entity.AuthorizedDistributor) error
	DeleteDistributor(d *entity.AuthorizedDistributor) error
	DeleteDistributorsBySession(sessionID int) error
}

type AttachmentRepository interface {
	FindByID(id int) (*entity.Attachment, error)
	FindBySupplierID(supplierID string) ([]*entity.Attachment, error)
	Save(att *entity.Attachment) error
	DeleteBySupplierID(supplierID string) error
}

type VerificationRepository interface {
	Find(supplierID string, field entity.VerifyField) (*entity.VerificationCheck, error)
	FindBySupplierID(supplierID string) ([]*entity.VerificationCheck, error)
	Save(check *entity.VerificationCheck) error
	DeleteBySupplierID(supplierID string) error
}

// OnboardingService owns the single source of truth for one supplier's
// wizard position and collected form data. Section updates are shallow
// merges; navigation is saturated to the valid step range; the "Next"
// gate is the only place step validators run.
type OnboardingService struct {
	Sessions    SessionRepository
	Attachments AttachmentRepository
	Checks      VerificationRepository
	S3          storage.S3Client
	Validate    *validator.Validate
}

func NewOnboardingService(
	sessions SessionRepository,
	attachments AttachmentRepository,
	checks VerificationRepository,
	s3 storage.S3Client,
	validate *validator.Validate,
) *OnboardingService {
	return &OnboardingService{
		Sessions:    sessions,
		Attachments: attachments,
		Checks:      checks,
		S3:          s3,
		Validate:    validate,
	}
}

// GetSession resumes the supplier's onboarding, creating a fresh
// session on first load.
func (o *OnboardingService) GetSession(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetchOrCreate(supplierID)
	if apierr != nil {
		return nil, apierr
	}
	return o.toResponse(session)
}

func (o *OnboardingService) fetchOrCreate(supplierID string) (*entity.OnboardingSession, apierror.ErrorResponse) {
	session, err := o.Sessions.FindBySupplierID(supplierID)
	if err != nil {
		log.Errorf("failed to fetch session for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}

	if session != nil {
		return session, nil
	}

	now := utils.NowUTC()
	session = &entity.OnboardingSession{
		SupplierID:  supplierID,
		CurrentStep: entity.StepFirst,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := o.Sessions.Save(session); err != nil {
		log.Errorf("failed to create session for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}
	return session, nil
}

func (o *OnboardingService) fetch(supplierID string) (*entity.OnboardingSession, apierror.ErrorResponse) {
	session, err := o.Sessions.FindBySupplierID(supplierID)
	if err != nil {
		log.Errorf("failed to fetch session for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}

	if session == nil {
		return nil, apierror.SessionNotFoundError
	}
	return session, nil
}

func (o *OnboardingService) save(session *entity.OnboardingSession) apierror.ErrorResponse {
	session.UpdatedAt = utils.NowUTC()
	if err := o.Sessions.Save(session); err != nil {
		log.Errorf("failed to save session for supplier %s: %v", session.SupplierID, err)
		return apierror.InternalServerError
	}
	return nil
}

/*
 * Navigation
 */

// NextStep runs the active step's validator and advances only when it
// passes. Advancing past the last step saturates.
func (o *OnboardingService) NextStep(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	if verr := ValidateStep(session, session.CurrentStep); verr != nil {
		return nil, verr
	}

	session.Advance()
	if serr := o.save(session); serr != nil {
		return nil, serr
	}
	return o.toResponse(session)
}

// PreviousStep always succeeds; retreating before the first step
// saturates.
func (o *OnboardingService) PreviousStep(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	session.Retreat()
	if serr := o.save(session); serr != nil {
		return nil, serr
	}
	return o.toResponse(session)
}

// JumpToStep is the Review step's edit link: it skips the validators of
// the steps in between, because the supplier is going back to fix
// something, not progressing.
func (o *OnboardingService) JumpToStep(supplierID string, req *contract.GoToStepRequest) (*contract.SessionResponse, apierror.ErrorResponse) {
	if err := o.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	session.GoTo(entity.Step(req.Step))
	if serr := o.save(session); serr != nil {
		return nil, serr
	}
	return o.toResponse(session)
}

// Acknowledge resets the session after the supplier has seen the
// thank-you view of a successful submission. The reset also drops the
// uploaded documents and verification rows of the finished run.
func (o *OnboardingService) Acknowledge(supplierID string) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	if !session.Submitted {
		return nil, apierror.NotSubmittedError
	}

	o.removeStoredDocuments(supplierID)

	if err := o.Sessions.DeleteDistributorsBySession(session.ID); err != nil {
		log.Errorf("failed to delete distributors for session %d: %v", session.ID, err)
		return nil, apierror.InternalServerError
	}
	if err := o.Attachments.DeleteBySupplierID(supplierID); err != nil {
		log.Errorf("failed to delete attachments for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}
	if err := o.Checks.DeleteBySupplierID(supplierID); err != nil {
		log.Errorf("failed to delete checks for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}

	session.Reset()
	if serr := o.save(session); serr != nil {
		return nil, serr
	}
	return o.toResponse(session)
}

// removeStoredDocuments best-effort deletes the supplier's uploaded
// objects from storage. Row cleanup stays with the caller.
func (o *OnboardingService) removeStoredDocuments(supplierID string) {
	atts, err := o.Attachments.FindBySupplierID(supplierID)
	if err != nil {
		log.Errorf("failed to list attachments for supplier %s: %v", supplierID, err)
		return
	}

	for _, att := range atts {
		if derr := o.S3.DeleteFile(att.S3Key); derr != nil {
			log.Warnf("failed to remove stored document %s: %v", att.S3Key, derr)
		}
	}
}
