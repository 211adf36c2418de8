package editor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/paperdesk/paperdesk/internal/currency"
	"github.com/paperdesk/paperdesk/internal/document"
	"github.com/paperdesk/paperdesk/internal/drafts"
	"github.com/paperdesk/paperdesk/internal/platform/httpx"
)

// maxLogoBytes caps logo uploads at 5MB.
const maxLogoBytes = 5 * 1024 * 1024

// Renderer produces the print-formatted export of a document.
type Renderer interface {
	Render(doc document.Document) ([]byte, error)
}

type Handler struct {
	logger   *slog.Logger
	session  *Session
	drafts   *drafts.Service
	renderer Renderer
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, session *Session, draftsService *drafts.Service, renderer Renderer) *Handler {
	return &Handler{
		logger:   logger,
		session:  session,
		drafts:   draftsService,
		renderer: renderer,
		validate: validator.New(),
	}
}

func (h *Handler) snapshotResponse(doc document.Document, loadedFromDraft bool) SnapshotResponse {
	resp := SnapshotResponse{
		Document:        doc,
		NumberLabel:     doc.DocumentType.NumberLabel(),
		CurrencySymbol:  currency.Symbol(doc.Currency),
		LoadedFromDraft: loadedFromDraft,
	}
	if doc.DocumentType == document.TypeInvoice && doc.Advance > 0 {
		due := doc.Due()
		resp.Due = &due
	}
	return resp
}

// Show returns the current working document snapshot.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	doc, loaded := h.session.Snapshot()
	httpx.JSON(w, http.StatusOK, h.snapshotResponse(doc, loaded))
}

// ApplyEdit applies one field-update command and returns the new snapshot.
func (h *Handler) ApplyEdit(w http.ResponseWriter, r *http.Request) {
	var req EditRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: decode edit: %v", httpx.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	edit, err := req.Edit()
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	doc := h.session.Apply(edit)
	_, loaded := h.session.Snapshot()
	httpx.JSON(w, http.StatusOK, h.snapshotResponse(doc, loaded))
}

// ChangeType discards the working document and starts the fresh template for
// the requested type.
func (h *Handler) ChangeType(w http.ResponseWriter, r *http.Request) {
	var req ChangeTypeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: decode type change: %v", httpx.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	doc, err := h.session.ChangeType(document.Type(req.DocumentType))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	httpx.JSON(w, http.StatusOK, h.snapshotResponse(doc, false))
}

// Reset replaces the working document with the fresh template for its type.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	doc := h.session.Reset()
	httpx.JSON(w, http.StatusOK, h.snapshotResponse(doc, false))
}

// UploadLogo ingests a logo image and stores it on the company info as a
// data URL. The edit is applied through the session so it lands on the
// snapshot current at completion time, not the one current at upload start.
func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: parse upload: %v", httpx.ErrValidation, err))
		return
	}
	file, _, err := r.FormFile("logo")
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: missing logo file: %v", httpx.ErrValidation, err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: read logo: %v", httpx.ErrValidation, err))
		return
	}
	if len(data) > maxLogoBytes {
		httpx.RespondError(w, fmt.Errorf("%w: logo exceeds %d bytes", httpx.ErrValidation, maxLogoBytes))
		return
	}

	mime := http.DetectContentType(data)
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	doc := h.session.Apply(document.SetCompanyLogo{DataURL: dataURL})
	_, loaded := h.session.Snapshot()
	httpx.JSON(w, http.StatusOK, h.snapshotResponse(doc, loaded))
}

// SaveDraft appends the working document to the draft store.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.session.SaveDraft(r.Context())
	resp := DraftSavedResponse{DraftID: draft.ID, SavedAt: draft.SavedAt, Durable: true}
	if err != nil {
		if !errors.Is(err, drafts.ErrNotDurable) {
			h.logger.Error("save draft", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		// Saved in memory only; tell the user instead of failing the save.
		resp.Durable = false
		resp.Notice = "draft saved for this session but could not be persisted"
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// LoadDraft replaces the working document with the most recent draft for the
// current type. Responds 404 when none exist; the form shows it as a notice.
func (h *Handler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	doc, err := h.session.LoadDraft(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoDrafts) {
			httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrNotFound, err))
			return
		}
		h.logger.Error("load draft", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.snapshotResponse(doc, true))
}

// ListDrafts reports per-type draft counts.
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	counts := h.drafts.Counts()
	out := make([]DraftSummary, 0, len(document.Types))
	for _, t := range document.Types {
		out = append(out, DraftSummary{DocumentType: t, Count: counts[t]})
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ExportPDF renders the working document to its print-formatted PDF.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.session.Snapshot()
	pdf, err := h.renderer.Render(doc)
	if err != nil {
		h.logger.Error("render pdf", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Export Failed", "could not render document")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", doc.DocumentType))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// ListCurrencies returns the display catalog.
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, currency.All())
}
