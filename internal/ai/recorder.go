package ai

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// recordedResponse holds the status and body of the last response seen for one call.
type recordedResponse struct {
	status int
	body   []byte
}

type recordKey struct{}

func withRecorder(ctx context.Context) (context.Context, *recordedResponse) {
	rec := &recordedResponse{}
	return context.WithValue(ctx, recordKey{}, rec), rec
}

// bodyRecorder copies the response body aside before the SDK decodes it,
// so callers still see what the provider sent when decoding fails.
type bodyRecorder struct {
	next http.RoundTripper
}

func (t bodyRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	rec, ok := req.Context().Value(recordKey{}).(*recordedResponse)
	if !ok {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	rec.status = resp.StatusCode
	rec.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}
