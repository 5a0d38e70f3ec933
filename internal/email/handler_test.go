package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testService struct {
	mockGenerate func(ctx context.Context, req ReplyRequest) []string
	history      []Generation
	historyLimit int
}

func (s *testService) Generate(ctx context.Context, req ReplyRequest) []string {
	return s.mockGenerate(ctx, req)
}

func (s *testService) History(_ context.Context, limit int) ([]Generation, error) {
	s.historyLimit = limit
	return s.history, nil
}

func newTestRouter(svc Service, signature string) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc, signature))
	return r
}

func TestHandleGenerate(t *testing.T) {
	var got ReplyRequest
	svc := &testService{mockGenerate: func(_ context.Context, req ReplyRequest) []string {
		got = req
		return []string{"Hi,\n\nSure.\n\nBest,\n[Your Name]", "Hey"}
	}}

	body := `{"emailContent":"Can you send the report?","tone":"professional"}`
	req := httptest.NewRequest(http.MethodPost, "/api/email/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	newTestRouter(svc, "Sharanya").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, ReplyRequest{Content: "Can you send the report?", Tone: "professional"}, got)

	var replies []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replies))
	assert.Equal(t, []string{"Hi,\n\nSure.\n\nBest,\nSharanya", "Hey"}, replies)
}

func TestHandleGenerate_BadInput(t *testing.T) {
	svc := &testService{mockGenerate: func(context.Context, ReplyRequest) []string {
		t.Fatal("service must not be called for invalid input")
		return nil
	}}

	for _, body := range []string{`{`, `{"emailContent":"   "}`, `{"tone":"casual"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/email/generate", strings.NewReader(body))
		w := httptest.NewRecorder()

		newTestRouter(svc, "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestHandleGenerate_HTMLFormat(t *testing.T) {
	svc := &testService{mockGenerate: func(context.Context, ReplyRequest) []string {
		return []string{"Hi,\nThanks **a lot**"}
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/email/generate?format=html",
		strings.NewReader(`{"emailContent":"hello"}`))
	w := httptest.NewRecorder()

	newTestRouter(svc, "").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var replies []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replies))
	require.Len(t, replies, 1)
	assert.Equal(t, "<p>Hi,<br>\nThanks <strong>a lot</strong></p>\n", replies[0])
}

func TestHandleGenerateRaw(t *testing.T) {
	var got ReplyRequest
	svc := &testService{mockGenerate: func(_ context.Context, req ReplyRequest) []string {
		got = req
		return []string{"ok"}
	}}

	msg := "From: Dana <dana@example.com>\r\n" +
		"To: me@example.com\r\n" +
		"Subject: Friday sync\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Can we move it to 3pm?\r\n"

	req := httptest.NewRequest(http.MethodPost, "/api/email/generate/raw?tone=formal", strings.NewReader(msg))
	w := httptest.NewRecorder()

	newTestRouter(svc, "").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "formal", got.Tone)
	assert.True(t, strings.HasPrefix(got.Content, "Subject: Friday sync\n\n"), got.Content)
	assert.Contains(t, got.Content, "Can we move it to 3pm?")
}

func TestHandleGenerateRaw_EmptyBody(t *testing.T) {
	svc := &testService{mockGenerate: func(context.Context, ReplyRequest) []string {
		t.Fatal("service must not be called for an empty message")
		return nil
	}}

	msg := "Subject: nothing here\r\nContent-Type: text/plain\r\n\r\n   \r\n"
	req := httptest.NewRequest(http.MethodPost, "/api/email/generate/raw", strings.NewReader(msg))
	w := httptest.NewRecorder()

	newTestRouter(svc, "").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHistory(t *testing.T) {
	svc := &testService{history: []Generation{{ID: 3, Content: "c", Replies: []string{"r"}, Outcome: OutcomeReplies}}}

	req := httptest.NewRequest(http.MethodGet, "/api/email/history?limit=5", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc, "").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, svc.historyLimit)

	var items []Generation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, OutcomeReplies, items[0].Outcome)

	req = httptest.NewRequest(http.MethodGet, "/api/email/history?limit=zero", nil)
	w = httptest.NewRecorder()
	newTestRouter(svc, "").ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
