package document

import "time"

// Type identifies which commercial document is being produced.
type Type string

const (
	TypeInvoice         Type = "invoice"
	TypeDeliveryChallan Type = "delivery-challan"
	TypeQuotation       Type = "quotation"
)

// Types lists every supported document type in catalog order.
var Types = []Type{TypeInvoice, TypeDeliveryChallan, TypeQuotation}

// Valid reports whether t is one of the supported document types.
func (t Type) Valid() bool {
	switch t {
	case TypeInvoice, TypeDeliveryChallan, TypeQuotation:
		return true
	}
	return false
}

// NumberLabel returns the form label used for the document number field.
func (t Type) NumberLabel() string {
	switch t {
	case TypeInvoice:
		return "Invoice #"
	case TypeDeliveryChallan:
		return "Challan #"
	case TypeQuotation:
		return "Quotation #"
	default:
		return "Document #"
	}
}

// LineItem is one billable or shippable row. Amount is always kept equal to
// Quantity*Rate, even for document types that do not display rate columns.
type LineItem struct {
	ID          int     `json:"id"`
	Product     string  `json:"product"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type CompanyInfo struct {
	Name         string   `json:"name"`
	Logo         string   `json:"logo,omitempty"` // data URL, provided by the caller as-is
	Email        string   `json:"email"`
	PhoneNumbers []string `json:"phone_numbers"`
}

type SignatureInfo struct {
	IncludeSignature bool   `json:"include_signature"`
	Name             string `json:"name"`
	Designation      string `json:"designation"`
}

// Document is the full record describing one invoice, delivery challan or
// quotation. Subtotal and Total are derived fields; every edit operation that
// can affect them recomputes both before returning a new snapshot.
type Document struct {
	DocumentType  Type          `json:"document_type"`
	InvoiceNumber string        `json:"invoice_number"`
	Recipient     string        `json:"recipient"`
	Subject       string        `json:"subject"`
	Address       string        `json:"address"`
	Date          string        `json:"date"` // ISO date, YYYY-MM-DD
	LineItems     []LineItem    `json:"line_items"`
	Subtotal      float64       `json:"subtotal"`
	DeliveryCost  float64       `json:"delivery_cost"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	ShowTotals    bool          `json:"show_totals"`
	Advance       float64       `json:"advance"`
	Currency      string        `json:"currency"`
	CompanyInfo   CompanyInfo   `json:"company_info"`
	SignatureInfo SignatureInfo `json:"signature_info"`
}

// Draft is a persisted snapshot of a Document tagged with its save time.
type Draft struct {
	ID       string    `json:"id"`
	Document Document  `json:"document"`
	SavedAt  time.Time `json:"saved_at"`
}

// Clone returns a structurally fresh copy of d. No slice is shared with the
// receiver, so callers can hand out snapshots without aliasing concerns.
func (d Document) Clone() Document {
	out := d
	out.LineItems = make([]LineItem, len(d.LineItems))
	copy(out.LineItems, d.LineItems)
	out.CompanyInfo.PhoneNumbers = make([]string, len(d.CompanyInfo.PhoneNumbers))
	copy(out.CompanyInfo.PhoneNumbers, d.CompanyInfo.PhoneNumbers)
	return out
}

// Due is the balance remaining after the advance payment. It is derived for
// display only and never stored back into the document.
func (d Document) Due() float64 {
	return d.Total - d.Advance
}
