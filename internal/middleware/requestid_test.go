package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRequestID(t *testing.T, header string) (captured string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return captured, rec
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()
	id, rec := captureRequestID(t, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headerID string
		wantNew  bool
	}{
		{name: "alphanumeric with hyphens", headerID: "abc-123_DEF", wantNew: false},
		{name: "newline", headerID: "fake-id\nINJECTED: malicious", wantNew: true},
		{name: "carriage return", headerID: "fake-id\rINJECTED: malicious", wantNew: true},
		{name: "spaces", headerID: "id with spaces", wantNew: true},
		{name: "markup", headerID: "id<script>alert(1)</script>", wantNew: true},
		{name: "too long", headerID: strings.Repeat("a", 129), wantNew: true},
		{name: "max length", headerID: strings.Repeat("a", 128), wantNew: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, rec := captureRequestID(t, tt.headerID)
			require.NotEmpty(t, id)
			assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
			if tt.wantNew {
				assert.NotEqual(t, tt.headerID, id)
			} else {
				assert.Equal(t, tt.headerID, id)
			}
		})
	}
}

func TestRequestIDFromContext_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
