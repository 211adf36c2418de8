package document

import "time"

// Default template constants. These seed every fresh form.
const (
	DefaultLineDescription      = "As per Sample"
	DefaultCurrency             = "USD"
	defaultCompanyName          = "EDISON INNOVATIONS"
	defaultCompanyEmail         = "contact@edisoninnovations.com"
	defaultSignatoryName        = "Thomas Edison"
	defaultSignatoryDesignation = "Chief Executive Officer"
)

// Default returns the fresh template for the given document type: one empty
// line item, zero totals, today's date and the stock company/signature block.
// Every call returns a structurally new value so a template can never leak
// state from a previous document.
func Default(t Type) Document {
	return Document{
		DocumentType:  t,
		InvoiceNumber: "",
		Recipient:     "",
		Subject:       "",
		Address:       "",
		Date:          time.Now().Format("2006-01-02"),
		LineItems: []LineItem{
			{ID: 1, Product: "", Description: DefaultLineDescription, Quantity: 0, Rate: 0, Amount: 0},
		},
		Subtotal:     0,
		DeliveryCost: 0,
		Discount:     0,
		Total:        0,
		ShowTotals:   true,
		Advance:      0,
		Currency:     DefaultCurrency,
		CompanyInfo: CompanyInfo{
			Name:         defaultCompanyName,
			Email:        defaultCompanyEmail,
			PhoneNumbers: []string{"+1 (555) 123-4567", "+1 (555) 987-6543"},
		},
		SignatureInfo: SignatureInfo{
			IncludeSignature: true,
			Name:             defaultSignatoryName,
			Designation:      defaultSignatoryDesignation,
		},
	}
}
