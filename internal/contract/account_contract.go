package contract

type SignupRequest struct {
	SupplierID string `json:"supplier_id" validate:"required,max=140"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=64"`
}

type SignupResponse struct {
	SupplierID      string `json:"supplier_id"`
	SignupCompleted bool   `json:"signup_completed"`

	// LoginURL is set when the account already exists and the supplier
	// should be sent to the login page instead.
	LoginURL string `json:"login_url,omitempty"`
}

type VerifyRequest struct {
	// Value is the identifier to verify. For the bank field it is the
	// account number; the IFSC rides in Extra.
	Value string `json:"value" validate:"required,max=64"`
	Extra string `json:"extra" validate:"omitempty,max=64"`
}
