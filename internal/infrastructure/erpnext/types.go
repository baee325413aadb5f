package erpnext

// Supplier is the subset of the ERP's Supplier doctype this service
// reads and writes.
type Supplier struct {
	Name         string `json:"name"`
	SupplierName string `json:"supplier_name"`
	SupplierType string `json:"supplier_type"`
	EmailID      string `json:"email_id"`
	MobileNo     string `json:"mobile_no"`
	PAN          string `json:"pan"`
	GSTIN        string `json:"gstin"`
	Disabled     int    `json:"disabled"`
}

type Address struct {
	AddressTitle string `json:"address_title"`
	AddressType  string `json:"address_type"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`

	// Link rows tying the address to the supplier record
	Links []DocLink `json:"links"`
}

type BankAccount struct {
	AccountName string    `json:"account_name"`
	Bank        string    `json:"bank"`
	BankAccount string    `json:"bank_account_no"`
	Branch      string    `json:"branch_code"`
	IFSC        string    `json:"ifsc"`
	Party       string    `json:"party"`
	PartyType   string    `json:"party_type"`
	IsDefault   int       `json:"is_default"`
	Links       []DocLink `json:"links,omitempty"`
}

type DocLink struct {
	LinkDoctype string `json:"link_doctype"`
	LinkName    string `json:"link_name"`
}
