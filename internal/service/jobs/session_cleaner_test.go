package jobs

import (
	"testing"

	"supplierhub/internal/domain/entity"
	"supplierhub/internal/utils"

	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	idle    []*entity.OnboardingSession
	deleted []string

	distributorsCleared []int
}

func (f *fakeSessions) FindIdleSince(before int64) ([]*entity.OnboardingSession, error) {
	return f.idle, nil
}

func (f *fakeSessions) DeleteDistributorsBySession(sessionID int) error {
	f.distributorsCleared = append(f.distributorsCleared, sessionID)
	return nil
}

func (f *fakeSessions) Delete(s *entity.OnboardingSession) error {
	f.deleted = append(f.deleted, s.SupplierID)
	return nil
}

type fakeAttachments struct {
	rows    []*entity.Attachment
	cleared []string

	listErr error
}

func (f *fakeAttachments) FindBySupplierID(supplierID string) ([]*entity.Attachment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Attachment
	for _, a := range f.rows {
		if a.SupplierID == supplierID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttachments) DeleteBySupplierID(supplierID string) error {
	f.cleared = append(f.cleared, supplierID)
	return nil
}

type fakeChecks struct {
	cleared []string
}

func (f *fakeChecks) DeleteBySupplierID(supplierID string) error {
	f.cleared = append(f.cleared, supplierID)
	return nil
}

type fakeStore struct {
	removed []string
}

func (f *fakeStore) DeleteFile(key string) error {
	f.removed = append(f.removed, key)
	return nil
}

func TestCleanup_SweepsSessionsWithEverythingTheyOwn(t *testing.T) {
	idle := &entity.OnboardingSession{
		ID:         4,
		SupplierID: "SUP-IDLE",
		UpdatedAt:  utils.NowUTC() - 1000,
	}
	sessions := &fakeSessions{idle: []*entity.OnboardingSession{idle}}
	attachments := &fakeAttachments{rows: []*entity.Attachment{
		{SupplierID: "SUP-IDLE", S3Key: "supplier-documents/a.pdf"},
		{SupplierID: "SUP-OTHER", S3Key: "supplier-documents/b.pdf"},
	}}
	checks := &fakeChecks{}
	store := &fakeStore{}

	c := NewSessionCleaner(sessions, attachments, checks, store, 1)
	c.cleanup()

	assert.Equal(t, []string{"supplier-documents/a.pdf"}, store.removed)
	assert.Equal(t, []string{"SUP-IDLE"}, attachments.cleared)
	assert.Equal(t, []string{"SUP-IDLE"}, checks.cleared)
	assert.Equal(t, []int{4}, sessions.distributorsCleared)
	assert.Equal(t, []string{"SUP-IDLE"}, sessions.deleted)
}

func TestCleanup_KeepsTheSessionWhenTheSweepFailsPartway(t *testing.T) {
	idle := &entity.OnboardingSession{ID: 4, SupplierID: "SUP-IDLE"}
	sessions := &fakeSessions{idle: []*entity.OnboardingSession{idle}}
	attachments := &fakeAttachments{listErr: assert.AnError}

	c := NewSessionCleaner(sessions, attachments, &fakeChecks{}, &fakeStore{}, 1)
	c.cleanup()

	// The next run retries from the start
	assert.Empty(t, sessions.deleted)
	assert.Empty(t, sessions.distributorsCleared)
}
