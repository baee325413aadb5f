package entity

// Step is the 1-based index of a wizard step. The step sequence is fixed
// and navigation is always saturated to [StepFirst, StepLast].
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepContacts
	StepPAN
	StepGST
	StepBank
	StepMSME
	StepDrugLicense
	StepCommercial
	StepReview

	StepFirst = StepBasicInfo
	StepLast  = StepReview
)

// stepNames is indexed by Step; slot 0 is unused.
var stepNames = [StepLast + 1]string{
	StepBasicInfo:   "basic-info",
	StepContacts:    "contacts",
	StepPAN:         "pan",
	StepGST:         "gst",
	StepBank:        "bank",
	StepMSME:        "msme",
	StepDrugLicense: "drug-license",
	StepCommercial:  "commercial",
	StepReview:      "review",
}

func (s Step) String() string {
	if s < StepFirst || s > StepLast {
		return "unknown"
	}
	return stepNames[s]
}

// Clamp saturates s to the valid step range.
func (s Step) Clamp() Step {
	if s < StepFirst {
		return StepFirst
	}
	if s > StepLast {
		return StepLast
	}
	return s
}
