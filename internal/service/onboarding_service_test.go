package service

import (
	"testing"

	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestGetSession_CreatesOnFirstLoad(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	resp, err := svc.GetSession("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, "SUP-0001", resp.SupplierID)
	assert.Equal(t, 1, resp.CurrentStep)
	assert.Equal(t, "basic-info", resp.StepName)
	assert.False(t, resp.Submitted)

	// Every tracked verification defaults to "none"
	assert.Len(t, resp.Verifications, 4)
	for field, status := range resp.Verifications {
		assert.Equal(t, "none", status.Status, "field %s", field)
	}

	// A second load resumes the same session
	again, err := svc.GetSession("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, resp.SupplierID, again.SupplierID)
	assert.Len(t, sessions.sessions, 1)
}

func TestNextStep_AdvancesWhenValid(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.NextStep("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, 2, resp.CurrentStep)
	assert.Equal(t, "contacts", resp.StepName)
}

func TestNextStep_BlockedByValidator(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	s := completeSession("SUP-0001")
	s.BasicInfo.Phone = "123"
	assert.NoError(t, sessions.Save(s))

	resp, err := svc.NextStep("SUP-0001")
	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 422, err.Code())
	assert.Equal(t, entity.StepBasicInfo, s.CurrentStep)
}

func TestNextStep_SaturatesAtLastStep(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	s := completeSession("SUP-0001")
	s.CurrentStep = entity.StepLast
	assert.NoError(t, sessions.Save(s))

	resp, err := svc.NextStep("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, int(entity.StepLast), resp.CurrentStep)
}

func TestPreviousStep_SaturatesAtFirstStep(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.PreviousStep("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, 1, resp.CurrentStep)
}

func TestPreviousStep_NeverValidates(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	s := completeSession("SUP-0001")
	s.CurrentStep = entity.StepBank
	s.Bank = entity.BankAccountData{} // broken section
	assert.NoError(t, sessions.Save(s))

	resp, err := svc.PreviousStep("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, int(entity.StepGST), resp.CurrentStep)
}

func TestJumpToStep_SkipsValidatorsAndClamps(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	s := completeSession("SUP-0001")
	s.CurrentStep = entity.StepReview
	s.BasicInfo.CompanyName = "" // would fail validation
	assert.NoError(t, sessions.Save(s))

	resp, err := svc.JumpToStep("SUP-0001", &contract.GoToStepRequest{Step: 3})
	assert.Nil(t, err)
	assert.Equal(t, 3, resp.CurrentStep)

	resp, err = svc.JumpToStep("SUP-0001", &contract.GoToStepRequest{Step: 99})
	assert.Nil(t, err)
	assert.Equal(t, int(entity.StepLast), resp.CurrentStep)
}

func TestJumpToStep_ZeroAndNegativeClampToFirst(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	s := completeSession("SUP-0001")
	s.CurrentStep = entity.StepReview
	assert.NoError(t, sessions.Save(s))

	resp, err := svc.JumpToStep("SUP-0001", &contract.GoToStepRequest{Step: 0})
	assert.Nil(t, err)
	assert.Equal(t, int(entity.StepFirst), resp.CurrentStep)

	s.CurrentStep = entity.StepReview
	assert.NoError(t, sessions.Save(s))

	resp, err = svc.JumpToStep("SUP-0001", &contract.GoToStepRequest{Step: -5})
	assert.Nil(t, err)
	assert.Equal(t, int(entity.StepFirst), resp.CurrentStep)
}

func TestUpdateSection_ShallowMerge(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.UpdateBasicInfo("SUP-0001", &contract.BasicInfoUpdate{
		Phone: strptr("9999999999"),
	})
	assert.Nil(t, err)

	// Only the present field changed
	assert.Equal(t, "9999999999", resp.BasicInfo.Phone)
	assert.Equal(t, "Acme Pharma Distributors", resp.BasicInfo.CompanyName)
	assert.Equal(t, "accounts@acmepharma.in", resp.BasicInfo.Email)
	assert.Equal(t, "560001", resp.BasicInfo.Registered.Pincode)
}

func TestUpdateSection_LeavesOtherSectionsUntouched(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.UpdateBank("SUP-0001", &contract.BankUpdate{
		AccountName: strptr("New Account Holder"),
	})
	assert.Nil(t, err)
	assert.Equal(t, "New Account Holder", resp.Bank.AccountName)
	assert.Equal(t, "ABCDE1234F", resp.PAN.Number)
	assert.Equal(t, "29ABCDE1234F1Z5", resp.GST.GSTIN)
}

func TestUpdatePAN_InvalidatesVerification(t *testing.T) {
	sessions := newFakeSessionRepo()
	checks := newFakeVerificationRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), checks)
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	assert.NoError(t, checks.Save(&entity.VerificationCheck{
		SupplierID: "SUP-0001",
		Field:      entity.FieldPAN,
		Status:     entity.VerifySuccess,
		LastValue:  "ABCDE1234F",
	}))

	resp, err := svc.UpdatePAN("SUP-0001", &contract.PANUpdate{Number: strptr("FGHIJ5678K")})
	assert.Nil(t, err)
	assert.Equal(t, "none", resp.Verifications["pan"].Status)
}

func TestUpdatePAN_SameValueKeepsVerification(t *testing.T) {
	sessions := newFakeSessionRepo()
	checks := newFakeVerificationRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), checks)
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	assert.NoError(t, checks.Save(&entity.VerificationCheck{
		SupplierID: "SUP-0001",
		Field:      entity.FieldPAN,
		Status:     entity.VerifySuccess,
		LastValue:  "ABCDE1234F",
	}))

	resp, err := svc.UpdatePAN("SUP-0001", &contract.PANUpdate{Number: strptr("ABCDE1234F")})
	assert.Nil(t, err)
	assert.Equal(t, "success", resp.Verifications["pan"].Status)
}

func TestUpdateReview_TogglesTerms(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())

	s := completeSession("SUP-0001")
	s.TermsAccepted = false
	assert.NoError(t, sessions.Save(s))

	resp, err := svc.UpdateReview("SUP-0001", &contract.ReviewUpdate{TermsAccepted: boolptr(true)})
	assert.Nil(t, err)
	assert.True(t, resp.TermsAccepted)
}

func TestUpdateCommercial_AddsAndRemovesDistributors(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.UpdateCommercial("SUP-0001", &contract.CommercialUpdate{
		IsAuthorizedDistributor: strptr("Yes"),
		Distributors: []*contract.DistributorUpdate{
			{Name: strptr("Cipla")},
			{Name: strptr("Sun Pharma")},
		},
	})
	assert.Nil(t, err)
	assert.Len(t, resp.Commercial.Distributors, 2)
	assert.Equal(t, "Cipla", resp.Commercial.Distributors[0].Name)

	removed, err := svc.RemoveDistributor("SUP-0001", resp.Commercial.Distributors[0].ID)
	assert.Nil(t, err)
	assert.Len(t, removed.Commercial.Distributors, 1)
	assert.Equal(t, "Sun Pharma", removed.Commercial.Distributors[0].Name)
}

func TestRemoveDistributor_UnknownID(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.RemoveDistributor("SUP-0001", 404)
	assert.Nil(t, resp)
	assert.Equal(t, apierror.UnknownDistributorError, err)
}

func TestAcknowledge_RequiresSubmission(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newTestOnboarding(sessions, newFakeAttachmentRepo(), newFakeVerificationRepo())
	assert.NoError(t, sessions.Save(completeSession("SUP-0001")))

	resp, err := svc.Acknowledge("SUP-0001")
	assert.Nil(t, resp)
	assert.Equal(t, apierror.NotSubmittedError, err)
}

func TestAcknowledge_ResetsTheForm(t *testing.T) {
	sessions := newFakeSessionRepo()
	atts := newFakeAttachmentRepo()
	checks := newFakeVerificationRepo()
	svc := newTestOnboarding(sessions, atts, checks)

	s := completeSession("SUP-0001")
	s.CurrentStep = entity.StepReview
	s.Submitted = true
	assert.NoError(t, sessions.Save(s))

	assert.NoError(t, atts.Save(&entity.Attachment{
		SupplierID: "SUP-0001",
		Kind:       entity.KindPANCard,
		FileName:   "pan.pdf",
		S3Key:      "supplier-documents/pan.pdf",
	}))
	assert.NoError(t, checks.Save(&entity.VerificationCheck{
		SupplierID: "SUP-0001",
		Field:      entity.FieldPAN,
		Status:     entity.VerifySuccess,
	}))

	resp, err := svc.Acknowledge("SUP-0001")
	assert.Nil(t, err)
	assert.Equal(t, 1, resp.CurrentStep)
	assert.False(t, resp.Submitted)
	assert.False(t, resp.TermsAccepted)
	assert.Empty(t, resp.BasicInfo.CompanyName)
	assert.Empty(t, resp.PAN.Number)
	assert.Empty(t, resp.Commercial.Distributors)

	// Uploaded documents and verification rows go with the form data,
	// the stored objects included
	assert.Empty(t, resp.Attachments)
	assert.Equal(t, "none", resp.Verifications["pan"].Status)
	assert.Equal(t, []string{"supplier-documents/pan.pdf"}, svc.S3.(*fakeS3).removed)

	// The supplier binding survives the reset
	assert.Equal(t, "SUP-0001", resp.SupplierID)
}

func TestOperations_UnknownSupplier(t *testing.T) {
	svc := newTestOnboarding(newFakeSessionRepo(), newFakeAttachmentRepo(), newFakeVerificationRepo())

	_, err := svc.NextStep("SUP-MISSING")
	assert.Equal(t, apierror.SessionNotFoundError, err)

	_, err = svc.UpdateBank("SUP-MISSING", &contract.BankUpdate{})
	assert.Equal(t, apierror.SessionNotFoundError, err)
}
