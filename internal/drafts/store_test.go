package drafts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/internal/document"
)

func TestNewStoreHasEmptyListPerType(t *testing.T) {
	store := NewStore()
	assert.Equal(t, SchemaVersion, store.Version)
	for _, docType := range document.Types {
		assert.NotNil(t, store.ByType[docType])
		assert.Zero(t, store.Len(docType))
	}
}

func TestAppendThenMostRecent(t *testing.T) {
	store := NewStore()
	_, ok := store.MostRecent(document.TypeInvoice)
	require.False(t, ok, "empty store must report no drafts")

	doc := document.Default(document.TypeInvoice)
	doc.Recipient = "ACME"
	savedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	store = store.Append(document.TypeInvoice, doc, savedAt)

	draft, ok := store.MostRecent(document.TypeInvoice)
	require.True(t, ok)
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, savedAt, draft.SavedAt)
	assert.Equal(t, doc, draft.Document, "draft must match the saved document field for field")

	// Other types are untouched.
	_, ok = store.MostRecent(document.TypeQuotation)
	assert.False(t, ok)
}

func TestMostRecentWinsOverEarlierAppends(t *testing.T) {
	store := NewStore()
	first := document.Default(document.TypeQuotation)
	first.Recipient = "first"
	second := document.Default(document.TypeQuotation)
	second.Recipient = "second"

	store = store.Append(document.TypeQuotation, first, time.Now())
	store = store.Append(document.TypeQuotation, second, time.Now())

	require.Equal(t, 2, store.Len(document.TypeQuotation))
	draft, ok := store.MostRecent(document.TypeQuotation)
	require.True(t, ok)
	assert.Equal(t, "second", draft.Document.Recipient)
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	before := NewStore()
	after := before.Append(document.TypeInvoice, document.Default(document.TypeInvoice), time.Now())

	assert.Zero(t, before.Len(document.TypeInvoice))
	assert.Equal(t, 1, after.Len(document.TypeInvoice))
}

func TestAppendDeepCopiesTheSnapshot(t *testing.T) {
	doc := document.Default(document.TypeInvoice)
	store := NewStore().Append(document.TypeInvoice, doc, time.Now())

	doc.LineItems[0].Product = "edited after save"

	draft, ok := store.MostRecent(document.TypeInvoice)
	require.True(t, ok)
	assert.Empty(t, draft.Document.LineItems[0].Product, "stored draft must not alias the working document")
}
