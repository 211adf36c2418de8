package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/internal/document"
	"github.com/paperdesk/paperdesk/internal/drafts"
)

type stubRenderer struct{}

func (stubRenderer) Render(doc document.Document) ([]byte, error) {
	return []byte("%PDF-stub " + string(doc.DocumentType)), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := drafts.NewService(&memoryRepository{}, logger)
	svc.Init(context.Background())
	session := NewSession(logger, svc)
	handler := NewHandler(logger, session, svc, stubRenderer{})

	r := chi.NewRouter()
	r.Route("/api", handler.MountRoutes)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeSnapshot(t *testing.T, resp *http.Response) SnapshotResponse {
	t.Helper()
	defer resp.Body.Close()
	var snap SnapshotResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

func TestShowReturnsDefaultInvoice(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/document")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decodeSnapshot(t, resp)
	assert.Equal(t, document.TypeInvoice, snap.Document.DocumentType)
	assert.Equal(t, "Invoice #", snap.NumberLabel)
	assert.Equal(t, "$", snap.CurrencySymbol)
	assert.Nil(t, snap.Due)
	assert.False(t, snap.LoadedFromDraft)
}

func TestApplyEditRecomputesTotals(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "add_line_item"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/document/edits",
		EditRequest{Op: "update_line_item", Index: 1, Field: "quantity", Value: "3"})
	resp.Body.Close()
	resp = postJSON(t, server.URL+"/api/document/edits",
		EditRequest{Op: "update_line_item", Index: 1, Field: "rate", Value: "10"})
	snap := decodeSnapshot(t, resp)

	require.Len(t, snap.Document.LineItems, 2)
	assert.Equal(t, float64(30), snap.Document.LineItems[1].Amount)
	assert.Equal(t, float64(30), snap.Document.Subtotal)
	assert.Equal(t, float64(30), snap.Document.Total)
}

func TestApplyEditNumericCoercionOverHTTP(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "set_delivery_cost", Value: "abc"})
	snap := decodeSnapshot(t, resp)
	assert.Equal(t, float64(0), snap.Document.DeliveryCost)

	resp = postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "set_delivery_cost", Value: "12.5"})
	snap = decodeSnapshot(t, resp)
	assert.Equal(t, 12.5, snap.Document.DeliveryCost)
	assert.Equal(t, 12.5, snap.Document.Total)
}

func TestApplyEditUnknownOp(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "explode"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDueExposedForInvoiceWithAdvance(t *testing.T) {
	server := newTestServer(t)

	for _, req := range []EditRequest{
		{Op: "update_line_item", Index: 0, Field: "quantity", Value: "3"},
		{Op: "update_line_item", Index: 0, Field: "rate", Value: "100"},
	} {
		resp := postJSON(t, server.URL+"/api/document/edits", req)
		resp.Body.Close()
	}
	resp := postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "set_advance", Value: "50"})
	snap := decodeSnapshot(t, resp)

	require.NotNil(t, snap.Due)
	assert.Equal(t, float64(250), *snap.Due)
	assert.Equal(t, float64(300), snap.Document.Total)
	assert.Equal(t, float64(50), snap.Document.Advance)
}

func TestChangeTypeResetsDocument(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "set_recipient", Value: "lost"})
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/document/type", ChangeTypeRequest{DocumentType: "delivery-challan"})
	snap := decodeSnapshot(t, resp)
	assert.Equal(t, document.TypeDeliveryChallan, snap.Document.DocumentType)
	assert.Equal(t, "Challan #", snap.NumberLabel)
	assert.Empty(t, snap.Document.Recipient)
}

func TestChangeTypeRejectsUnknown(t *testing.T) {
	server := newTestServer(t)
	resp := postJSON(t, server.URL+"/api/document/type", ChangeTypeRequest{DocumentType: "memo"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDraftSaveLoadFlow(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/document/edits", EditRequest{Op: "set_recipient", Value: "ACME"})
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/drafts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved DraftSavedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	resp.Body.Close()
	assert.NotEmpty(t, saved.DraftID)
	assert.True(t, saved.Durable)

	resp = postJSON(t, server.URL+"/api/document/reset", nil)
	snap := decodeSnapshot(t, resp)
	assert.Empty(t, snap.Document.Recipient)

	resp = postJSON(t, server.URL+"/api/drafts/load", nil)
	snap = decodeSnapshot(t, resp)
	assert.Equal(t, "ACME", snap.Document.Recipient)
	assert.True(t, snap.LoadedFromDraft)
}

func TestLoadDraftWithoutAnyReturns404(t *testing.T) {
	server := newTestServer(t)
	resp := postJSON(t, server.URL+"/api/drafts/load", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListDrafts(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/drafts", nil)
	resp.Body.Close()

	resp, err := http.Get(server.URL + "/api/drafts")
	require.NoError(t, err)
	defer resp.Body.Close()
	var summaries []DraftSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))

	require.Len(t, summaries, 3)
	byType := map[document.Type]int{}
	for _, s := range summaries {
		byType[s.DocumentType] = s.Count
	}
	assert.Equal(t, 1, byType[document.TypeInvoice])
	assert.Equal(t, 0, byType[document.TypeQuotation])
}

func TestUploadLogoStoresDataURL(t *testing.T) {
	server := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	// Minimal PNG signature so content type detection lands on image/png.
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n00000000"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(server.URL+"/api/document/logo", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	snap := decodeSnapshot(t, resp)
	assert.True(t, strings.HasPrefix(snap.Document.CompanyInfo.Logo, "data:image/png;base64,"),
		"logo = %q", snap.Document.CompanyInfo.Logo)
}

func TestExportPDF(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/document/pdf")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestListCurrencies(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/currencies")
	require.NoError(t, err)
	defer resp.Body.Close()

	var currencies []struct {
		Code   string `json:"code"`
		Symbol string `json:"symbol"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&currencies))
	assert.NotEmpty(t, currencies)
}
