package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackielii/pageshell"
	"github.com/jackielii/pageshell/internal/app"
	"github.com/jackielii/pageshell/internal/metrics"
)

func newTestHandler(t *testing.T, logs *bytes.Buffer) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	shell, err := app.New("Joel", pageshell.WithLogger(logger), pageshell.WithObserver(rec))
	require.NoError(t, err)
	return NewHandler(shell, Options{Logger: logger, Gatherer: reg})
}

func TestHandlerRoutes(t *testing.T) {
	var logs bytes.Buffer
	h := newTestHandler(t, &logs)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/healthz", http.StatusOK, "ok"},
		{http.MethodGet, "/", http.StatusOK, `data-route="home"`},
		{http.MethodGet, "/about", http.StatusOK, `data-route="about"`},
		{http.MethodGet, "/contact", http.StatusOK, "Joel"},
		{http.MethodGet, "/nonexistent", http.StatusOK, `<main id="page"></main>`},
		{http.MethodHead, "/about", http.StatusOK, ""},
		{http.MethodPost, "/contact", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))
		assert.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.path)
		assert.Contains(t, rec.Body.String(), tt.body, "%s %s", tt.method, tt.path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pageshell_renders_total{route="none",status="ok"} 1`)
	assert.Contains(t, rec.Body.String(), `pageshell_renders_total{route="contact",status="ok"} 1`)
}

func TestHandlerWithoutMetrics(t *testing.T) {
	shell, err := app.New("Joel")
	require.NoError(t, err)
	h := NewHandler(shell, Options{Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.NotContains(t, rec.Body.String(), "pageshell_renders_total",
		"/metrics falls through to the shell when metrics are off")
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	h := newTestHandler(t, &logs)

	req := httptest.NewRequest(http.MethodGet, "/about", http.NoBody)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		if m["msg"] == "request" {
			entry = m
		}
	}
	require.NotNil(t, entry, "expected a request log record in:\n%s", logs.String())
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/about", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Equal(t, true, entry["htmx"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRequestDeadlineBeforeWriteTimeout(t *testing.T) {
	require.Less(t, requestTimeout, writeTimeout)

	var deadline time.Time
	var hasDeadline bool
	page := func(any) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			deadline, hasDeadline = ctx.Deadline()
			return nil
		})
	}
	table, err := pageshell.NewRouteTable(pageshell.Route("/", pageshell.Exact, "home", page))
	require.NoError(t, err)
	shell, err := pageshell.New(table, nil)
	require.NoError(t, err)
	h := NewHandler(shell, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	start := time.Now()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.True(t, hasDeadline, "request context should carry the handler timeout")
	assert.WithinDuration(t, start.Add(requestTimeout), deadline, time.Second)
	assert.True(t, deadline.Before(start.Add(writeTimeout)))
}
