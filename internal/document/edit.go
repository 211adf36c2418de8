package document

// ItemField names the editable columns of a line item.
type ItemField string

const (
	FieldProduct     ItemField = "product"
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldRate        ItemField = "rate"
)

// Valid reports whether f is an editable line-item field.
func (f ItemField) Valid() bool {
	switch f {
	case FieldProduct, FieldDescription, FieldQuantity, FieldRate:
		return true
	}
	return false
}

// Edit is one discrete field update emitted by the form. Each variant carries
// exactly the data its field needs, so updates stay typed instead of routing
// through path strings. Apply never mutates its input; every edit yields a
// fresh snapshot with derived totals already recomputed where required.
type Edit interface {
	apply(d *Document)
}

// Apply runs a single edit against doc and returns the resulting snapshot.
// A nil edit returns an unchanged copy.
func Apply(doc Document, e Edit) Document {
	out := doc.Clone()
	if e != nil {
		e.apply(&out)
	}
	return out
}

// Scalar field edits. None of these touch the derived totals.

type SetInvoiceNumber struct{ Value string }

func (e SetInvoiceNumber) apply(d *Document) { d.InvoiceNumber = e.Value }

type SetRecipient struct{ Value string }

func (e SetRecipient) apply(d *Document) { d.Recipient = e.Value }

type SetSubject struct{ Value string }

func (e SetSubject) apply(d *Document) { d.Subject = e.Value }

type SetAddress struct{ Value string }

func (e SetAddress) apply(d *Document) { d.Address = e.Value }

type SetDate struct{ Value string }

func (e SetDate) apply(d *Document) { d.Date = e.Value }

// SetCurrency stores the code as given. Unknown codes are legal; they fall
// back to the default symbol at render time.
type SetCurrency struct{ Value string }

func (e SetCurrency) apply(d *Document) { d.Currency = e.Value }

type SetShowTotals struct{ Value bool }

func (e SetShowTotals) apply(d *Document) { d.ShowTotals = e.Value }

type SetCompanyName struct{ Value string }

func (e SetCompanyName) apply(d *Document) { d.CompanyInfo.Name = e.Value }

type SetCompanyEmail struct{ Value string }

func (e SetCompanyEmail) apply(d *Document) { d.CompanyInfo.Email = e.Value }

// SetCompanyLogo stores a data-URL reference to the uploaded image. The byte
// stream is accepted as provided; no image validation happens here.
type SetCompanyLogo struct{ DataURL string }

func (e SetCompanyLogo) apply(d *Document) { d.CompanyInfo.Logo = e.DataURL }

type SetSignatureIncluded struct{ Value bool }

func (e SetSignatureIncluded) apply(d *Document) { d.SignatureInfo.IncludeSignature = e.Value }

type SetSignatureName struct{ Value string }

func (e SetSignatureName) apply(d *Document) { d.SignatureInfo.Name = e.Value }

type SetSignatureDesignation struct{ Value string }

func (e SetSignatureDesignation) apply(d *Document) { d.SignatureInfo.Designation = e.Value }

// Phone number edits. Unlike line items, removing the sole phone number is
// allowed; the at-least-one guard applies to line items only.

type AddPhoneNumber struct{}

func (e AddPhoneNumber) apply(d *Document) {
	d.CompanyInfo.PhoneNumbers = append(d.CompanyInfo.PhoneNumbers, "")
}

type UpdatePhoneNumber struct {
	Index int
	Value string
}

func (e UpdatePhoneNumber) apply(d *Document) {
	if e.Index < 0 || e.Index >= len(d.CompanyInfo.PhoneNumbers) {
		return
	}
	d.CompanyInfo.PhoneNumbers[e.Index] = e.Value
}

type RemovePhoneNumber struct{ Index int }

func (e RemovePhoneNumber) apply(d *Document) {
	if e.Index < 0 || e.Index >= len(d.CompanyInfo.PhoneNumbers) {
		return
	}
	d.CompanyInfo.PhoneNumbers = append(
		d.CompanyInfo.PhoneNumbers[:e.Index],
		d.CompanyInfo.PhoneNumbers[e.Index+1:]...,
	)
}

// Line item edits.

// AddLineItem appends a zeroed row with the next monotonic id. The new row
// contributes nothing to the subtotal, so totals are left as they are.
type AddLineItem struct{}

func (e AddLineItem) apply(d *Document) {
	d.LineItems = append(d.LineItems, LineItem{
		ID:          nextLineItemID(d.LineItems),
		Description: DefaultLineDescription,
	})
}

// UpdateLineItem assigns one field of the row at Index. Quantity and rate are
// coerced from the raw string, the row amount is recomputed from the updated
// pair, and subtotal/total follow. Out-of-range indexes are ignored.
type UpdateLineItem struct {
	Index int
	Field ItemField
	Value string
}

func (e UpdateLineItem) apply(d *Document) {
	if e.Index < 0 || e.Index >= len(d.LineItems) {
		return
	}
	item := &d.LineItems[e.Index]
	switch e.Field {
	case FieldProduct:
		item.Product = e.Value
		return
	case FieldDescription:
		item.Description = e.Value
		return
	case FieldQuantity:
		item.Quantity = ParseAmount(e.Value)
	case FieldRate:
		item.Rate = ParseAmount(e.Value)
	default:
		return
	}
	item.Amount = item.Quantity * item.Rate
	recalculate(d)
}

// RemoveLineItem deletes the row with the given id and recomputes totals.
// A document must always keep at least one line item, so removing the last
// remaining row is a no-op here at the model boundary rather than a guard
// the caller is trusted to enforce.
type RemoveLineItem struct{ ID int }

func (e RemoveLineItem) apply(d *Document) {
	if len(d.LineItems) <= 1 {
		return
	}
	kept := d.LineItems[:0]
	for _, item := range d.LineItems {
		if item.ID != e.ID {
			kept = append(kept, item)
		}
	}
	d.LineItems = kept
	recalculate(d)
}

// Adjustment edits. Delivery cost and discount shift the total; the advance
// only feeds the display-time due amount and is not part of the total.

type SetDeliveryCost struct{ Raw string }

func (e SetDeliveryCost) apply(d *Document) {
	d.DeliveryCost = ParseAmount(e.Raw)
	d.Total = d.Subtotal + d.DeliveryCost - d.Discount
}

type SetDiscount struct{ Raw string }

func (e SetDiscount) apply(d *Document) {
	d.Discount = ParseAmount(e.Raw)
	d.Total = d.Subtotal + d.DeliveryCost - d.Discount
}

type SetAdvance struct{ Raw string }

func (e SetAdvance) apply(d *Document) {
	d.Advance = ParseAmount(e.Raw)
}
