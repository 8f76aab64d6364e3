package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGemini("test-key", srv.URL, "gemini-2.0-flash")
}

func TestGeminiGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest
	g := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"content":"第一题",`},
					{"text": `"type":"text"}`},
				}}},
			},
		})
	})

	got, err := g.Generate(context.Background(), "出一道题")
	require.NoError(t, err)

	// Multi-part candidates concatenate in order.
	assert.Equal(t, `{"content":"第一题","type":"text"}`, got)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "出一道题", gotBody.Contents[0].Parts[0].Text)
	assert.InDelta(t, 0.8, gotBody.GenerationConfig.Temperature, 0.001)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
}

func TestGeminiNoCandidates(t *testing.T) {
	g := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	_, err := g.Generate(context.Background(), "出一道题")

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrorCodeEmptyResponse, provErr.Code)
	assert.Equal(t, "gemini", provErr.Provider)
}

func TestGeminiErrorResponse(t *testing.T) {
	calls := 0
	g := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"},
		})
	})

	_, err := g.Generate(context.Background(), "出一道题")

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrorCodeRateLimit, provErr.Code)
	assert.Equal(t, "quota exceeded", provErr.Message)
	assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
	// One request per Generate; failures are not retried here.
	assert.Equal(t, 1, calls)
}

func TestGeminiUnparseableErrorBody(t *testing.T) {
	g := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := g.Generate(context.Background(), "出一道题")

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrorCodeServerError, provErr.Code)
	assert.Contains(t, provErr.Message, "unexpected status 502")
}

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, ErrorCodeInvalidRequest},
		{401, ErrorCodeAuthentication},
		{403, ErrorCodeAuthentication},
		{404, ErrorCodeModelNotFound},
		{429, ErrorCodeRateLimit},
		{500, ErrorCodeServerError},
		{503, ErrorCodeServerError},
		{418, ErrorCodeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeForStatus(tt.status), "status %d", tt.status)
	}
}
