package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/paperdesk/paperdesk/internal/document"
)

// ErrUnknownOp rejects an edit command whose op is not in the dispatch table.
var ErrUnknownOp = errors.New("unknown edit op")

// EditRequest is one field-update event from the form. Op selects the edit
// variant; the remaining fields carry whatever that variant needs. Raw values
// stay strings so the model's numeric-coercion policy is the only place
// input is interpreted.
type EditRequest struct {
	Op    string `json:"op" validate:"required"`
	Value string `json:"value"`
	Flag  bool   `json:"flag"`
	Index int    `json:"index" validate:"gte=0"`
	ID    int    `json:"id" validate:"gte=0"`
	Field string `json:"field"`
}

// Edit resolves the request into its typed edit variant.
func (r EditRequest) Edit() (document.Edit, error) {
	switch r.Op {
	case "set_invoice_number":
		return document.SetInvoiceNumber{Value: r.Value}, nil
	case "set_recipient":
		return document.SetRecipient{Value: r.Value}, nil
	case "set_subject":
		return document.SetSubject{Value: r.Value}, nil
	case "set_address":
		return document.SetAddress{Value: r.Value}, nil
	case "set_date":
		return document.SetDate{Value: r.Value}, nil
	case "set_currency":
		return document.SetCurrency{Value: r.Value}, nil
	case "set_show_totals":
		return document.SetShowTotals{Value: r.Flag}, nil
	case "set_company_name":
		return document.SetCompanyName{Value: r.Value}, nil
	case "set_company_email":
		return document.SetCompanyEmail{Value: r.Value}, nil
	case "add_phone_number":
		return document.AddPhoneNumber{}, nil
	case "update_phone_number":
		return document.UpdatePhoneNumber{Index: r.Index, Value: r.Value}, nil
	case "remove_phone_number":
		return document.RemovePhoneNumber{Index: r.Index}, nil
	case "set_signature_included":
		return document.SetSignatureIncluded{Value: r.Flag}, nil
	case "set_signature_name":
		return document.SetSignatureName{Value: r.Value}, nil
	case "set_signature_designation":
		return document.SetSignatureDesignation{Value: r.Value}, nil
	case "add_line_item":
		return document.AddLineItem{}, nil
	case "update_line_item":
		field := document.ItemField(r.Field)
		if !field.Valid() {
			return nil, fmt.Errorf("%w: line item field %q", ErrUnknownOp, r.Field)
		}
		return document.UpdateLineItem{Index: r.Index, Field: field, Value: r.Value}, nil
	case "remove_line_item":
		return document.RemoveLineItem{ID: r.ID}, nil
	case "set_delivery_cost":
		return document.SetDeliveryCost{Raw: r.Value}, nil
	case "set_discount":
		return document.SetDiscount{Raw: r.Value}, nil
	case "set_advance":
		return document.SetAdvance{Raw: r.Value}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, r.Op)
	}
}

// ChangeTypeRequest switches the form to another document type.
type ChangeTypeRequest struct {
	DocumentType string `json:"document_type" validate:"required"`
}

// SnapshotResponse is the form/preview payload: the document plus the
// derived values the presentation layer needs but never writes back.
type SnapshotResponse struct {
	Document        document.Document `json:"document"`
	NumberLabel     string            `json:"number_label"`
	CurrencySymbol  string            `json:"currency_symbol"`
	Due             *float64          `json:"due,omitempty"`
	LoadedFromDraft bool              `json:"loaded_from_draft"`
}

// DraftSavedResponse acknowledges a save-as-draft.
type DraftSavedResponse struct {
	DraftID string    `json:"draft_id"`
	SavedAt time.Time `json:"saved_at"`
	Durable bool      `json:"durable"`
	Notice  string    `json:"notice,omitempty"`
}

// DraftSummary lists per-type draft history for the form's load buttons.
type DraftSummary struct {
	DocumentType document.Type `json:"document_type"`
	Count        int           `json:"count"`
}
