package email

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/email", func(r chi.Router) {
		r.Post("/generate", h.HandleGenerate)
		r.Post("/generate/raw", h.HandleGenerateRaw)
		r.Get("/history", h.HandleHistory)
	})
}
