package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"property-backoffice/config"
	"property-backoffice/pkg/jwt"

	"github.com/sirupsen/logrus"
)

type fakeTokenStore struct {
	valid map[string]bool
}

func (s *fakeTokenStore) Save(_ context.Context, _ jwt.TokenType, _ uint, tokenID string, _ time.Duration) error {
	s.valid[tokenID] = true
	return nil
}

func (s *fakeTokenStore) Exists(_ context.Context, _ jwt.TokenType, _ uint, tokenID string) (bool, error) {
	return s.valid[tokenID], nil
}

func (s *fakeTokenStore) Revoke(_ context.Context, _ jwt.TokenType, _ uint, tokenID string) error {
	delete(s.valid, tokenID)
	return nil
}

func (s *fakeTokenStore) RevokeAll(_ context.Context, _ uint) error {
	s.valid = make(map[string]bool)
	return nil
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func echoSecretary(w http.ResponseWriter, r *http.Request) {
	if id, ok := GetSecretaryIDFromContext(r.Context()); ok {
		w.Header().Set("X-Secretary", strconv.FormatUint(uint64(id), 10))
	}
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	jwtService := newJWT()
	store := &fakeTokenStore{valid: make(map[string]bool)}
	m := NewAuthMiddleware(jwtService, store)

	token, tokenID, err := jwtService.GenerateAccessToken(5, "ana@imobiliaria.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	store.valid[tokenID] = true

	refresh, _, err := jwtService.GenerateRefreshToken(5, "ana@imobiliaria.com", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	revoked, _, err := jwtService.GenerateAccessToken(5, "ana@imobiliaria.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"revoked token", "Bearer " + revoked, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	handler := m.Authenticate(http.HandlerFunc(echoSecretary))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/autenticacao/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && rec.Header().Get("X-Secretary") == "" {
				t.Fatalf("secretary not attached to context")
			}
		})
	}
}

func TestOptionalAuthenticateLetsAnonymousThrough(t *testing.T) {
	m := NewAuthMiddleware(newJWT(), &fakeTokenStore{valid: make(map[string]bool)})
	handler := m.OptionalAuthenticate(http.HandlerFunc(echoSecretary))

	for _, header := range []string{"", "Bearer invalid"} {
		req := httptest.NewRequest(http.MethodGet, "/consultas", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK || rec.Header().Get("X-Secretary") != "" {
			t.Fatalf("header %q: status = %d, secretary = %q", header, rec.Code, rec.Header().Get("X-Secretary"))
		}
	}
}

func TestCORS(t *testing.T) {
	m := NewCORSMiddleware("http://localhost:5173")
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/consultas", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" ||
		rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("missing CORS headers: %v", rec.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/consultas", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot || rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("foreign origin: status = %d, headers = %v", rec.Code, rec.Header())
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	handler := rl.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/autenticacao/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, code)
		}
	}
	if code := send("10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Fatalf("over burst status = %d, want 429", code)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other client status = %d", code)
	}
}

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := NewLoggingMiddleware(log)

	rec := httptest.NewRecorder()
	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pacientes", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
}
