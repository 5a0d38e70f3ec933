package email

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc           Service
	signatureName string
}

func NewHandler(svc Service, signatureName string) *Handler {
	return &Handler{svc: svc, signatureName: signatureName}
}

// HandleGenerate accepts JSON {"emailContent": "...", "tone": "..."}
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmailContent string `json:"emailContent"`
		Tone         string `json:"tone"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(payload.EmailContent) == "" {
		http.Error(w, "missing emailContent", http.StatusBadRequest)
		return
	}

	h.respond(w, r, ReplyRequest{Content: payload.EmailContent, Tone: payload.Tone})
}

// HandleGenerateRaw: тело запроса это письмо целиком (message/rfc822).
func (h *Handler) HandleGenerateRaw(w http.ResponseWriter, r *http.Request) {
	content, err := ParseRawMessage(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, "message has no text body", http.StatusBadRequest)
			return
		}
		http.Error(w, "invalid message", http.StatusBadRequest)
		return
	}

	h.respond(w, r, ReplyRequest{Content: content, Tone: r.URL.Query().Get("tone")})
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	items, err := h.svc.History(r.Context(), limit)
	if err != nil {
		log.Printf("[http] history: %v", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, items)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, req ReplyRequest) {
	replies := SignReplies(h.svc.Generate(r.Context(), req), h.signatureName)

	if r.URL.Query().Get("format") == "html" {
		rendered, err := RenderHTML(replies)
		if err != nil {
			log.Printf("[http] render html: %v", err)
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		replies = rendered
	}

	writeJSON(w, replies)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode response: %v", err)
	}
}
