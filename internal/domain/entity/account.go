package entity

// SupplierAccount records that account creation ran for a supplier id,
// so a revisit of the onboarding link can skip the signup flow.
type SupplierAccount struct {
	ID              int    `gorm:"primaryKey"`
	SupplierID      string `gorm:"uniqueIndex;not null"`
	SubUUID         string `gorm:"not null"`
	Email           string `gorm:"not null"`
	SignupCompleted bool   `gorm:"not null;default:false"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"not null;autoUpdateTime:false"`
}
