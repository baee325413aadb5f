package jobs

import (
	"context"
	"time"

	"supplierhub/internal/domain/entity"
	"supplierhub/internal/utils"

	"github.com/labstack/gommon/log"
)

const sweepInterval = 1 * time.Hour

type SessionRepository interface {
	FindIdleSince(before int64) ([]*entity.OnboardingSession, error)
	DeleteDistributorsBySession(sessionID int) error
	Delete(session *entity.OnboardingSession) error
}

type AttachmentRepository interface {
	FindBySupplierID(supplierID string) ([]*entity.Attachment, error)
	DeleteBySupplierID(supplierID string) error
}

type VerificationRepository interface {
	DeleteBySupplierID(supplierID string) error
}

// ObjectStore is the storage side of the sweep. Only deletion is
// needed here.
type ObjectStore interface {
	DeleteFile(key string) error
}

// SessionCleaner sweeps abandoned onboarding sessions: unsubmitted
// forms untouched for longer than the configured idle window. Each
// swept session takes its uploaded documents, verification rows and
// distributor entries with it.
type SessionCleaner struct {
	sessions    SessionRepository
	attachments AttachmentRepository
	checks      VerificationRepository
	store       ObjectStore
	maxIdleHour int
}

func NewSessionCleaner(
	sessions SessionRepository,
	attachments AttachmentRepository,
	checks VerificationRepository,
	store ObjectStore,
	maxIdleHours int,
) *SessionCleaner {
	return &SessionCleaner{
		sessions:    sessions,
		attachments: attachments,
		checks:      checks,
		store:       store,
		maxIdleHour: maxIdleHours,
	}
}

func (c *SessionCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	log.Info("Session cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping session cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *SessionCleaner) cleanup() {
	cutoff := utils.NowUTC() - int64(c.maxIdleHour)*int64(time.Hour/time.Millisecond)

	sessions, err := c.sessions.FindIdleSince(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to fetch abandoned sessions: %v", err)
		return
	}

	if len(sessions) == 0 {
		return
	}

	log.Infof("Cleaner: found %d abandoned sessions, removing...", len(sessions))
	for _, s := range sessions {
		c.sweep(s)
	}
}

// sweep removes one abandoned session and everything it owns. A
// failure partway skips the session delete so the next run retries.
func (c *SessionCleaner) sweep(s *entity.OnboardingSession) {
	atts, err := c.attachments.FindBySupplierID(s.SupplierID)
	if err != nil {
		log.Errorf("Cleaner: failed to list attachments for supplier %s: %v", s.SupplierID, err)
		return
	}
	for _, att := range atts {
		if derr := c.store.DeleteFile(att.S3Key); derr != nil {
			log.Warnf("Cleaner: failed to remove stored document %s: %v", att.S3Key, derr)
		}
	}

	if err := c.attachments.DeleteBySupplierID(s.SupplierID); err != nil {
		log.Errorf("Cleaner: failed to delete attachments for supplier %s: %v", s.SupplierID, err)
		return
	}
	if err := c.checks.DeleteBySupplierID(s.SupplierID); err != nil {
		log.Errorf("Cleaner: failed to delete checks for supplier %s: %v", s.SupplierID, err)
		return
	}
	if err := c.sessions.DeleteDistributorsBySession(s.ID); err != nil {
		log.Errorf("Cleaner: failed to delete distributors for session %d: %v", s.ID, err)
		return
	}
	if err := c.sessions.Delete(s); err != nil {
		log.Errorf("Cleaner: failed to delete session for supplier %s: %v", s.SupplierID, err)
	}
}
