package service

import (
	"testing"

	"supplierhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateStep_CompleteSessionPassesEveryStep(t *testing.T) {
	s := completeSession("SUP-0001")

	for step := entity.StepFirst; step <= entity.StepLast; step++ {
		assert.Nil(t, ValidateStep(s, step), "step %s should pass", step)
	}
}

func TestValidateStep_IsPureOverTheSession(t *testing.T) {
	s := completeSession("SUP-0001")
	s.BasicInfo.Phone = "12345"

	first := ValidateStep(s, entity.StepBasicInfo)
	second := ValidateStep(s, entity.StepBasicInfo)

	assert.NotNil(t, first)
	assert.Equal(t, first.Message, second.Message)
}

func TestValidateBasicInfo_FirstFailureWins(t *testing.T) {
	s := completeSession("SUP-0001")
	s.BasicInfo.CompanyName = ""
	s.BasicInfo.Email = ""

	err := ValidateStep(s, entity.StepBasicInfo)
	assert.NotNil(t, err)
	assert.Equal(t, "Please enter the company name", err.Message)
}

func TestValidateBasicInfo_PincodeStateMismatch(t *testing.T) {
	s := completeSession("SUP-0001")
	s.BasicInfo.Registered.State = "Kerala"

	err := ValidateStep(s, entity.StepBasicInfo)
	assert.NotNil(t, err)
	assert.Equal(t, "PIN code 560001 does not belong to Kerala", err.Message)
}

func TestValidateBasicInfo_MalformedPincodeBeforeStateCheck(t *testing.T) {
	s := completeSession("SUP-0001")
	s.BasicInfo.Registered.Pincode = "5600"

	err := ValidateStep(s, entity.StepBasicInfo)
	assert.NotNil(t, err)
	assert.Equal(t, "PIN code must be exactly 6 digits", err.Message)
}

func TestValidateBasicInfo_BillingOnlyWhenDiffers(t *testing.T) {
	s := completeSession("SUP-0001")

	// Empty billing block is fine while the flag is off
	assert.Nil(t, ValidateStep(s, entity.StepBasicInfo))

	s.BasicInfo.BillingDiffers = true
	err := ValidateStep(s, entity.StepBasicInfo)
	assert.NotNil(t, err)
	assert.Equal(t, "Please enter the billing address", err.Message)
}

func TestValidateContacts_OptionalIsAllOrNothing(t *testing.T) {
	s := completeSession("SUP-0001")

	// Fully empty optional contact passes
	assert.Nil(t, ValidateStep(s, entity.StepContacts))

	// One filled field demands the whole contact
	s.Contacts.Optional.Name = "Ravi Kumar"
	err := ValidateStep(s, entity.StepContacts)
	assert.NotNil(t, err)
	assert.Equal(t, "Please enter the additional contact phone number", err.Message)

	s.Contacts.Optional.Phone = "9876500004"
	s.Contacts.Optional.Email = "ravi@acmepharma.in"
	assert.Nil(t, ValidateStep(s, entity.StepContacts))
}

func TestValidatePAN_FormatThenDocument(t *testing.T) {
	s := completeSession("SUP-0001")

	s.PAN.Number = "1234ABCDEF"
	err := ValidateStep(s, entity.StepPAN)
	assert.NotNil(t, err)
	assert.Equal(t, "PAN must be 5 letters, 4 digits and a letter (AAAAA9999A)", err.Message)

	s.PAN.Number = "ABCDE1234F"
	s.PAN.DocumentID = 0
	err = ValidateStep(s, entity.StepPAN)
	assert.NotNil(t, err)
	assert.Equal(t, "Please upload a copy of the PAN card", err.Message)
}

func TestValidateGST_UnregisteredSkipsGSTIN(t *testing.T) {
	s := completeSession("SUP-0001")
	s.GST = entity.GSTInfo{Status: entity.GSTUnregistered}

	assert.Nil(t, ValidateStep(s, entity.StepGST))
}

func TestValidateGST_ValidFormatStillNeedsCertificate(t *testing.T) {
	s := completeSession("SUP-0001")
	s.GST.DocumentID = 0

	err := ValidateStep(s, entity.StepGST)
	assert.NotNil(t, err)
	assert.Equal(t, "Please upload the GST registration certificate", err.Message)
}

func TestValidateBank_MismatchReportedBeforeIFSC(t *testing.T) {
	s := completeSession("SUP-0001")
	s.Bank.ConfirmNumber = "99999999999999"
	s.Bank.IFSC = "" // also broken, but the mismatch must win

	err := ValidateStep(s, entity.StepBank)
	assert.NotNil(t, err)
	assert.Equal(t, "Account numbers do not match", err.Message)
}

func TestValidateMSME_YesBranch(t *testing.T) {
	s := completeSession("SUP-0001")
	s.MSME = entity.MSMEStatus{Registered: entity.AnswerYes}

	err := ValidateStep(s, entity.StepMSME)
	assert.NotNil(t, err)
	assert.Equal(t, "Please enter the Udyam registration number", err.Message)

	s.MSME.UdyamNumber = "UDYAM-KR-03-0001234"
	err = ValidateStep(s, entity.StepMSME)
	assert.NotNil(t, err)
	assert.Equal(t, "Please upload the Udyam registration certificate", err.Message)

	s.MSME.DocumentID = 13
	assert.Nil(t, ValidateStep(s, entity.StepMSME))
}

func TestValidateCommercial_PercentageBounds(t *testing.T) {
	s := completeSession("SUP-0001")

	bad := 120.0
	s.Commercial.ExpiredReturnPct = &bad
	err := ValidateStep(s, entity.StepCommercial)
	assert.NotNil(t, err)
	assert.Equal(t, "The expired return percentage must be between 0 and 100", err.Message)

	ok := 100.0
	s.Commercial.ExpiredReturnPct = &ok
	assert.Nil(t, ValidateStep(s, entity.StepCommercial))

	// Unanswered percentages are not an error
	s.Commercial.ExpiredReturnPct = nil
	assert.Nil(t, ValidateStep(s, entity.StepCommercial))
}

func TestValidateCommercial_DistributorListWhenYes(t *testing.T) {
	s := completeSession("SUP-0001")
	s.Commercial.IsAuthorizedDistributor = entity.AnswerYes

	err := ValidateStep(s, entity.StepCommercial)
	assert.NotNil(t, err)
	assert.Equal(t, "Please add at least one authorized distributorship", err.Message)

	s.Distributors = []*entity.AuthorizedDistributor{{ID: 1, SessionID: 1, Name: "Cipla"}}
	err = ValidateStep(s, entity.StepCommercial)
	assert.NotNil(t, err)
	assert.Equal(t, "Please upload the authorization certificate for Cipla", err.Message)

	s.Distributors[0].DocumentID = 14
	assert.Nil(t, ValidateStep(s, entity.StepCommercial))
}

func TestValidateReview_TermsGate(t *testing.T) {
	s := completeSession("SUP-0001")
	s.TermsAccepted = false

	err := ValidateStep(s, entity.StepReview)
	assert.NotNil(t, err)
	assert.Equal(t, "Please accept the terms and conditions before submitting", err.Message)

	s.TermsAccepted = true
	assert.Nil(t, ValidateStep(s, entity.StepReview))
}

func TestValidateStep_OutOfRangeStepsSaturate(t *testing.T) {
	s := completeSession("SUP-0001")
	s.TermsAccepted = false

	// Beyond the last step resolves to the Review validator
	err := ValidateStep(s, entity.Step(42))
	assert.NotNil(t, err)
	assert.Equal(t, "Please accept the terms and conditions before submitting", err.Message)

	// Below the first resolves to Basic Info
	s.BasicInfo.CompanyName = ""
	err = ValidateStep(s, entity.Step(0))
	assert.NotNil(t, err)
	assert.Equal(t, "Please enter the company name", err.Message)
}
