package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"*"}},
	}
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Post("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "swagger", method: http.MethodGet, path: "/swagger/doc.json", wantStatus: http.StatusOK},
		{name: "handler", method: http.MethodPost, path: "/api/ping", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestApplication_CORS(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	req.Header.Set("Origin", "https://donate.example.org")
	rr := httptest.NewRecorder()

	a.router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type fakeConsumer struct {
	consumed chan struct{}
	closed   bool
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	close(c.consumed)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	c.closed = true
	return nil
}

func TestApplication_StartStop(t *testing.T) {
	a := newTestApp()

	started := false
	consumer := &fakeConsumer{consumed: make(chan struct{})}
	a.SetStarters(starterFunc(func(context.Context) error {
		started = true
		return nil
	}))
	a.SetConsumers(consumer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	<-consumer.consumed
	assert.True(t, started)

	cancel()
	require.NoError(t, a.Stop())
	assert.True(t, consumer.closed)
}

func TestApplication_StarterFails(t *testing.T) {
	a := newTestApp()
	a.SetStarters(starterFunc(func(context.Context) error {
		return errors.New("boom")
	}))

	err := a.Start(context.Background())
	assert.ErrorContains(t, err, "boom")
}
