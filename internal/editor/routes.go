package editor

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/document", func(r chi.Router) {
		r.Get("/", h.Show)
		r.Post("/edits", h.ApplyEdit)
		r.Post("/type", h.ChangeType)
		r.Post("/reset", h.Reset)
		r.Post("/logo", h.UploadLogo)
		r.Get("/pdf", h.ExportPDF)
	})
	r.Route("/drafts", func(r chi.Router) {
		r.Get("/", h.ListDrafts)
		r.Post("/", h.SaveDraft)
		r.Post("/load", h.LoadDraft)
	})
	r.Get("/currencies", h.ListCurrencies)
}
