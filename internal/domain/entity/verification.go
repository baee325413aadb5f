package entity

// VerifyField names a form field backed by an external verification.
type VerifyField string

const (
	FieldPAN   VerifyField = "pan"
	FieldGSTIN VerifyField = "gstin"
	FieldBank  VerifyField = "bank"
	FieldMSME  VerifyField = "msme"
)

// VerifyStatus is the lifecycle of one field's external verification.
// It is held independently of the field's value: editing a verified
// field moves its status back to VerifyNone.
type VerifyStatus string

const (
	VerifyNone    VerifyStatus = "none"
	VerifyPending VerifyStatus = "pending"
	VerifySuccess VerifyStatus = "success"
	VerifyError   VerifyStatus = "error"
)

// VerificationCheck records the latest verification state for one
// (supplier, field) pair. LastValue is the input the current status was
// computed for; Token identifies the newest outbound request so that a
// superseded response can be discarded when it arrives late.
type VerificationCheck struct {
	ID         int          `gorm:"primaryKey"`
	SupplierID string       `gorm:"uniqueIndex:idx_check_supplier_field;not null"`
	Field      VerifyField  `gorm:"uniqueIndex:idx_check_supplier_field;not null"`
	Status     VerifyStatus `gorm:"not null;default:none"`
	LastValue  string
	Token      int64
	Message    string
	UpdatedAt  int64 `gorm:"not null;autoUpdateTime:false"`
}
