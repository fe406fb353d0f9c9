package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Env:  config.EnvProduction,
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("secret detail")
	})
}

func request(a *application, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestApplication_Routes(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.now = func() time.Time { return time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC) }
	a.SetHTTPHandlers(pingHandler{})

	t.Run("health", func(t *testing.T) {
		rr := request(a, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Shipment Tracker API is running!","status":"healthy","timestamp":"2026-05-01T10:00:00Z"}`, rr.Body.String())
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	})

	t.Run("handlers mounted under api", func(t *testing.T) {
		rr := request(a, http.MethodGet, "/api/ping")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pong", rr.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		for _, target := range []string{"/nope", "/api/nope"} {
			rr := request(a, http.MethodGet, target)
			assert.Equal(t, http.StatusNotFound, rr.Code, target)
			assert.JSONEq(t, `{"message":"Route not found"}`, rr.Body.String())
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		rr := request(a, http.MethodDelete, "/api/ping")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("panic hidden in production", func(t *testing.T) {
		rr := request(a, http.MethodGet, "/api/panic")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret detail")
		assert.Contains(t, rr.Body.String(), "Something went wrong!")
	})

	t.Run("metrics", func(t *testing.T) {
		rr := request(a, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "shipment_tracker_http_requests_total")
	})
}

type fakeConsumer struct {
	consumed atomic.Bool
	closeErr error
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	c.consumed.Store(true)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	return c.closeErr
}

type fakeStarter struct {
	err     error
	started bool
}

func (s *fakeStarter) Start(context.Context) error {
	s.started = true
	return s.err
}

func TestApplication_Lifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	consumer := &fakeConsumer{}
	starter := &fakeStarter{}
	a.SetConsumers(consumer)
	a.SetStarters(starter)

	require.NoError(t, a.Start(ctx))
	assert.True(t, starter.started)
	assert.Eventually(t, consumer.consumed.Load, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, a.Stop())
}

func TestApplication_StarterFailure(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetStarters(&fakeStarter{err: errors.New("boom")})

	assert.ErrorContains(t, a.Start(context.Background()), "boom")
}

func TestApplication_StopReportsConsumerError(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetConsumers(&fakeConsumer{closeErr: errors.New("close failed")})

	assert.ErrorContains(t, a.Stop(), "close failed")
}
