package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	testCases := []struct {
		name     string
		verbose  bool
		wantBody string
	}{
		{name: "development exposes panic", verbose: true, wantBody: `{"message":"boom"}`},
		{name: "production hides panic", verbose: false, wantBody: `{"message":"Something went wrong!"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			middleware.Recoverer(discardLogger(), tc.verbose)(panicking).
				ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, tc.wantBody, rr.Body.String())
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	middleware.SecurityHeaders(http.NotFoundHandler()).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rr.Header().Get("X-XSS-Protection"))
}

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusCreated, wantLevel: "level=INFO"},
		{name: "server error", status: http.StatusBadGateway, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			rr := httptest.NewRecorder()
			middleware.Logger(logger)(middleware.Metrics(next)).
				ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/shipments", nil))

			assert.Equal(t, tc.status, rr.Code)
			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "method=POST")
			assert.Contains(t, out, "path=/api/shipments")
		})
	}
}
