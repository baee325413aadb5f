// Package document renders a completed onboarding into the printable
// supplier agreement: a fixed four-page layout of data tables, the
// commercial terms, the terms-and-conditions text and the signature
// blocks. Rendering is deterministic for identical input and date.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"supplierhub/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth   = 210.0
	marginSide  = 15.0
	labelWidth  = 60.0
	valueWidth  = 120.0
	rowHeight   = 7.0
	titleHeight = 9.0
)

// FileName is the download name of the agreement artifact.
func FileName(supplierID, date string) string {
	return fmt.Sprintf("%s_%s.pdf", supplierID, date)
}

// Generate renders the agreement for one completed session. The date
// stamp is injected by the caller so output stays reproducible.
func Generate(s *entity.OnboardingSession, date string) ([]byte, error) {
	g := &generator{
		pdf:  gofpdf.New("P", "mm", "A4", ""),
		s:    s,
		date: date,
	}
	g.pdf.SetTitle("Supplier Agreement "+s.SupplierID, false)
	// A wall-clock creation date would make identical agreements differ
	g.pdf.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	g.companyPage()
	g.identityPage()
	g.commercialPage()
	g.termsPage()

	var buf bytes.Buffer
	if err := g.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type generator struct {
	pdf  *gofpdf.Fpdf
	s    *entity.OnboardingSession
	date string
}

// companyPage is the header plus the company and contact tables.
func (g *generator) companyPage() {
	g.pdf.AddPage()
	g.header("Supplier Agreement")

	g.pdf.SetFont("Helvetica", "", 10)
	g.pdf.CellFormat(0, 6, "Supplier ID: "+g.s.SupplierID, "", 1, "L", false, 0, "")
	g.pdf.CellFormat(0, 6, "Date: "+g.date, "", 1, "L", false, 0, "")
	g.pdf.Ln(4)

	b := &g.s.BasicInfo
	g.section("Company Details")
	g.row("Company Name", b.CompanyName)
	g.row("Business Type", b.BusinessType)
	g.row("Email", b.Email)
	g.row("Phone", b.Phone)
	g.row("Registered Address", formatAddress(b.Registered))
	if b.BillingDiffers {
		g.row("Billing Address", formatAddress(b.Billing))
	}
	g.pdf.Ln(4)

	c := &g.s.Contacts
	g.section("Contacts")
	g.row("Transaction Contact", formatContact(c.Transaction))
	g.row("Escalation Contact 1", formatContact(c.EscalationL1))
	g.row("Escalation Contact 2", formatContact(c.EscalationL2))
	if !c.Optional.IsEmpty() {
		g.row("Additional Contact", formatContact(c.Optional))
	}
}

// identityPage holds the statutory identity and bank tables.
func (g *generator) identityPage() {
	g.pdf.AddPage()
	g.header("Identity & Bank Details")

	g.section("Statutory Identity")
	g.row("PAN", g.s.PAN.Number)
	g.row("Name as on PAN", g.s.PAN.HolderName)
	g.row("Date of Birth", g.s.PAN.DOB)
	g.row("GST Status", g.s.GST.Status)
	if g.s.GST.Status == entity.GSTRegistered {
		g.row("GSTIN", g.s.GST.GSTIN)
	}
	g.row("MSME Registered", string(g.s.MSME.Registered))
	if g.s.MSME.Registered == entity.AnswerYes {
		g.row("Udyam Number", g.s.MSME.UdyamNumber)
	}
	g.row("Drug License", string(g.s.DrugLicense.Held))
	if g.s.DrugLicense.Held == entity.AnswerYes {
		g.row("License Number", g.s.DrugLicense.LicenseNumber)
	}
	g.pdf.Ln(4)

	b := &g.s.Bank
	g.section("Bank Account")
	g.row("Account Holder", b.AccountName)
	g.row("Account Number", b.AccountNumber)
	g.row("IFSC", b.IFSC)
	g.row("Bank", b.BankName)
	g.row("Branch", b.BranchName)
}

// commercialPage is the commercial terms table.
func (g *generator) commercialPage() {
	g.pdf.AddPage()
	g.header("Commercial Terms")

	c := &g.s.Commercial
	g.section("Terms")
	g.row("Credit Days", fmt.Sprintf("%d", c.CreditDays))
	g.row("Discount Basis", c.DiscountBasis)
	g.row("Invoice Discount", formatPct(c.InvoiceDiscountPct))
	g.row("Expired Return CN", formatPct(c.ExpiredReturnPct))
	g.row("Damaged Return CN", formatPct(c.DamagedReturnPct))
	g.row("Near-Expiry Return CN", formatPct(c.NearExpiryReturnPct))
	g.row("Authorized Distributor", string(c.IsAuthorizedDistributor))
	g.pdf.Ln(4)

	if c.IsAuthorizedDistributor == entity.AnswerYes && len(g.s.Distributors) > 0 {
		g.section("Authorized Distributorships")
		for i, d := range g.s.Distributors {
			g.row(fmt.Sprintf("Distributorship %d", i+1), d.Name)
		}
	}
}

// termsPage carries the agreement text, the delivery SLA table and the
// signature blocks.
func (g *generator) termsPage() {
	g.pdf.AddPage()
	g.header("Terms & Conditions")

	g.pdf.SetFont("Helvetica", "", 9)
	g.pdf.MultiCell(pageWidth-2*marginSide, 4.5, agreementTerms, "", "L", false)
	g.pdf.Ln(6)

	g.section("Delivery Turn-Around Time")
	g.slaRow("Location", "TAT", true)
	g.slaRow("Within city limits", "24 hours", false)
	g.slaRow("Within state", "48 hours", false)
	g.slaRow("Rest of India", "72 hours", false)
	g.pdf.Ln(14)

	g.signatureBlocks()
}

func (g *generator) header(title string) {
	g.pdf.SetFont("Helvetica", "B", 15)
	g.pdf.CellFormat(0, titleHeight, title, "", 1, "C", false, 0, "")
	g.pdf.Ln(3)
}

func (g *generator) section(title string) {
	g.pdf.SetFont("Helvetica", "B", 11)
	g.pdf.CellFormat(0, rowHeight, title, "B", 1, "L", false, 0, "")
	g.pdf.Ln(1)
}

func (g *generator) row(label, value string) {
	g.pdf.SetFont("Helvetica", "B", 9)
	g.pdf.CellFormat(labelWidth, rowHeight, label, "1", 0, "L", false, 0, "")
	g.pdf.SetFont("Helvetica", "", 9)
	g.pdf.CellFormat(valueWidth, rowHeight, value, "1", 1, "L", false, 0, "")
}

func (g *generator) slaRow(location, tat string, head bool) {
	style := ""
	if head {
		style = "B"
	}
	g.pdf.SetFont("Helvetica", style, 9)
	g.pdf.CellFormat(90, rowHeight, location, "1", 0, "L", false, 0, "")
	g.pdf.CellFormat(90, rowHeight, tat, "1", 1, "L", false, 0, "")
}

func (g *generator) signatureBlocks() {
	g.pdf.SetFont("Helvetica", "", 9)
	half := (pageWidth - 2*marginSide) / 2

	g.pdf.CellFormat(half, rowHeight, "For "+g.s.BasicInfo.CompanyName, "", 0, "L", false, 0, "")
	g.pdf.CellFormat(half, rowHeight, "For the Company", "", 1, "L", false, 0, "")
	g.pdf.Ln(16)
	g.pdf.CellFormat(half, rowHeight, "Authorized Signatory", "T", 0, "L", false, 0, "")
	g.pdf.CellFormat(half, rowHeight, "Authorized Signatory", "T", 1, "L", false, 0, "")
	g.pdf.CellFormat(half, rowHeight, "Date: "+g.date, "", 0, "L", false, 0, "")
	g.pdf.CellFormat(half, rowHeight, "Date: "+g.date, "", 1, "L", false, 0, "")
}

func formatAddress(a entity.Address) string {
	parts := []string{a.Line1}
	if a.Line2 != "" {
		parts = append(parts, a.Line2)
	}
	parts = append(parts, a.City, a.State, a.Pincode)
	return strings.Join(parts, ", ")
}

func formatContact(c entity.Contact) string {
	return fmt.Sprintf("%s / %s / %s", c.Name, c.Phone, c.Email)
}

func formatPct(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *p)
}

const agreementTerms = `The Supplier agrees to supply goods in accordance with the purchase orders issued by the Company, at the commercial terms recorded in this agreement. All invoices shall reference a valid purchase order and carry the statutory identifiers (PAN, and GSTIN where registered) stated herein. Goods must conform to the agreed specifications; non-conforming, damaged, expired or near-expiry stock is returnable under the credit note percentages recorded in the commercial terms. Payment falls due after the agreed credit period counted from receipt of a correct invoice. The Supplier warrants that all statutory registrations represented during onboarding are accurate and will remain current for the duration of this agreement, and shall notify the Company of any change within seven days. Either party may terminate with thirty days written notice; obligations accrued before termination survive it. This agreement is governed by the laws of India.`
