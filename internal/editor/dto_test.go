package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/internal/document"
)

func TestEditRequestDispatch(t *testing.T) {
	cases := []struct {
		req  EditRequest
		want document.Edit
	}{
		{EditRequest{Op: "set_recipient", Value: "ACME"}, document.SetRecipient{Value: "ACME"}},
		{EditRequest{Op: "set_show_totals", Flag: true}, document.SetShowTotals{Value: true}},
		{EditRequest{Op: "add_line_item"}, document.AddLineItem{}},
		{EditRequest{Op: "remove_line_item", ID: 2}, document.RemoveLineItem{ID: 2}},
		{EditRequest{Op: "update_phone_number", Index: 1, Value: "123"}, document.UpdatePhoneNumber{Index: 1, Value: "123"}},
		{EditRequest{Op: "set_delivery_cost", Value: "9.5"}, document.SetDeliveryCost{Raw: "9.5"}},
		{
			EditRequest{Op: "update_line_item", Index: 0, Field: "rate", Value: "12"},
			document.UpdateLineItem{Index: 0, Field: document.FieldRate, Value: "12"},
		},
	}
	for _, tc := range cases {
		edit, err := tc.req.Edit()
		require.NoError(t, err, "op %s", tc.req.Op)
		assert.Equal(t, tc.want, edit)
	}
}

func TestEditRequestUnknownOp(t *testing.T) {
	_, err := EditRequest{Op: "teleport"}.Edit()
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestEditRequestUnknownLineItemField(t *testing.T) {
	_, err := EditRequest{Op: "update_line_item", Field: "color"}.Edit()
	assert.ErrorIs(t, err, ErrUnknownOp)
}
