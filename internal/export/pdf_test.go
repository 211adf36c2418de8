package export

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/internal/document"
)

func sampleInvoice() document.Document {
	doc := document.Default(document.TypeInvoice)
	doc = document.Apply(doc, document.SetInvoiceNumber{Value: "INV-001"})
	doc = document.Apply(doc, document.SetRecipient{Value: "ACME Corp"})
	doc = document.Apply(doc, document.UpdateLineItem{Index: 0, Field: document.FieldProduct, Value: "Bulbs"})
	doc = document.Apply(doc, document.UpdateLineItem{Index: 0, Field: document.FieldQuantity, Value: "3"})
	doc = document.Apply(doc, document.UpdateLineItem{Index: 0, Field: document.FieldRate, Value: "100"})
	doc = document.Apply(doc, document.SetAdvance{Raw: "50"})
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := NewRenderer().Render(sampleInvoice())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must start with the PDF magic")
}

func TestRenderAllDocumentTypes(t *testing.T) {
	r := NewRenderer()
	for _, docType := range document.Types {
		doc := document.Default(docType)
		out, err := r.Render(doc)
		require.NoError(t, err, "type %s", docType)
		assert.NotEmpty(t, out)
	}
}

func TestRenderSkipsUndecodableLogo(t *testing.T) {
	doc := sampleInvoice()
	doc = document.Apply(doc, document.SetCompanyLogo{DataURL: "data:image/png;base64,not-base64!!"})

	out, err := NewRenderer().Render(doc)
	require.NoError(t, err, "a broken logo must never fail the export")
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDecodeLogo(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))

	raw, imgType, ok := decodeLogo("data:image/png;base64," + payload)
	require.True(t, ok)
	assert.Equal(t, "PNG", imgType)
	assert.Equal(t, []byte("fake-image-bytes"), raw)

	_, imgType, ok = decodeLogo("data:image/jpeg;base64," + payload)
	require.True(t, ok)
	assert.Equal(t, "JPG", imgType)

	_, _, ok = decodeLogo("")
	assert.False(t, ok)
	_, _, ok = decodeLogo("http://example.com/logo.png")
	assert.False(t, ok)
	_, _, ok = decodeLogo("data:image/svg+xml;base64," + payload)
	assert.False(t, ok, "unsupported image types are skipped")
	_, _, ok = decodeLogo("data:image/png;base64,%%%")
	assert.False(t, ok)
}
