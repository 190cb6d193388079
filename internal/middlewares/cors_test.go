package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", h.Get("Access-Control-Allow-Headers"))
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		method string
		status int
		body   string
	}{
		{name: "created", method: http.MethodPost, status: http.StatusCreated, body: "{}"},
		{name: "not found", method: http.MethodGet, status: http.StatusNotFound},
		{name: "server error", method: http.MethodPost, status: http.StatusInternalServerError},
		{name: "implicit ok", method: http.MethodGet, status: http.StatusOK, body: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != http.StatusOK {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			CORSMiddleware(next).ServeHTTP(rr, httptest.NewRequest(tt.method, "/any", nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())
			assertCORSHeaders(t, rr.Header())
		})
	}
}

func TestPreflightMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORSMiddleware(PreflightMiddleware(next))

	for _, path := range []string{"/", "/api/auth/register", "/unknown/path"} {
		t.Run("OPTIONS "+path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", "POST")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Empty(t, rr.Body.String())
			assertCORSHeaders(t, rr.Header())
		})
	}
	assert.False(t, called, "preflight must not reach the next handler")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
