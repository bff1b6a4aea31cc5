package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func request(t *testing.T, h http.Handler, header, value string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	h.ServeHTTP(rr, req)
	return rr
}

func TestMiddleware_PassThroughModes(t *testing.T) {
	tests := []struct {
		name string
		mode string
		key  string
	}{
		{"mode none", "none", "secret"},
		{"mode empty", "", "secret"},
		{"apikey without configured key", "apikey", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Middleware(tc.mode, "x-api-key", tc.key, okHandler())
			if rr := request(t, h, "", ""); rr.Code != http.StatusOK {
				t.Errorf("status: got %d, want 200", rr.Code)
			}
		})
	}
}

func TestMiddleware_ValidKey(t *testing.T) {
	h := Middleware("apikey", "x-api-key", "secret", okHandler())
	if rr := request(t, h, "x-api-key", "secret"); rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
}

func TestMiddleware_InvalidKey(t *testing.T) {
	h := Middleware("apikey", "x-api-key", "secret", okHandler())
	if rr := request(t, h, "x-api-key", "wrong"); rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rr.Code)
	}
}

func TestMiddleware_MissingKey(t *testing.T) {
	h := Middleware("apikey", "x-api-key", "secret", okHandler())
	rr := request(t, h, "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
}

func TestMiddleware_CustomHeader(t *testing.T) {
	h := Middleware("apikey", "x-fit-key", "secret", okHandler())
	if rr := request(t, h, "x-fit-key", "secret"); rr.Code != http.StatusOK {
		t.Errorf("custom header accepted: got %d, want 200", rr.Code)
	}
	if rr := request(t, h, "x-api-key", "secret"); rr.Code != http.StatusUnauthorized {
		t.Errorf("wrong header rejected: got %d, want 401", rr.Code)
	}
}
