package kycapi

import "encoding/json"

// envelope is the provider's nested response wrapper shared by all four
// verification endpoints.
type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func (e *envelope) decode(out any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

// Result is the portion common to every verification outcome. A failed
// verification is a valid Result with Success=false, not an error.
type Result struct {
	Success bool
	Message string
}

type PANResult struct {
	Result
	HolderName string
	DOB        string
}

type panData struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"dob"`
}

func (d *panData) toResult(env *envelope) *PANResult {
	return &PANResult{
		Result:     Result{Success: env.Success, Message: env.Message},
		HolderName: d.FullName,
		DOB:        d.DateOfBirth,
	}
}

type GSTINResult struct {
	Result
	LegalName string
	TradeName string
	Status    string
}

type gstinData struct {
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name"`
	Status    string `json:"gstin_status"`
}

func (d *gstinData) toResult(env *envelope) *GSTINResult {
	return &GSTINResult{
		Result:    Result{Success: env.Success, Message: env.Message},
		LegalName: d.LegalName,
		TradeName: d.TradeName,
		Status:    d.Status,
	}
}

type BankResult struct {
	Result
	AccountHolder string
	BankName      string
	BranchName    string
}

type bankData struct {
	NameAtBank string `json:"name_at_bank"`
	BankName   string `json:"bank_name"`
	Branch     string `json:"branch"`
}

func (d *bankData) toResult(env *envelope) *BankResult {
	return &BankResult{
		Result:        Result{Success: env.Success, Message: env.Message},
		AccountHolder: d.NameAtBank,
		BankName:      d.BankName,
		BranchName:    d.Branch,
	}
}

type MSMEResult struct {
	Result
	EnterpriseName string
	Category       string
}

type msmeData struct {
	EnterpriseName string `json:"enterprise_name"`
	Category       string `json:"udyam_category"`
}

func (d *msmeData) toResult(env *envelope) *MSMEResult {
	return &MSMEResult{
		Result:         Result{Success: env.Success, Message: env.Message},
		EnterpriseName: d.EnterpriseName,
		Category:       d.Category,
	}
}
