package usecase

import (
	"context"
	"errors"
	"testing"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/repository"
	"property-backoffice/pkg/jwt"
	"property-backoffice/pkg/preference"
)

type authFixture struct {
	usecase   AuthUsecase
	tokens    *memoryTokenStore
	prefs     map[uint]*preference.MemoryStore
	jwt       *jwt.JWTService
	secretary *entity.Secretary
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	f := &authFixture{
		tokens: newMemoryTokenStore(),
		prefs:  make(map[uint]*preference.MemoryStore),
		jwt:    newTestJWTService(),
	}
	f.secretary = seedSecretary(t, db, "ana@imobiliaria.com", "segredo123")
	f.usecase = NewAuthUsecase(
		db,
		log,
		repository.NewSecretaryRepository(),
		newTestAuditService(log),
		f.jwt,
		f.tokens,
		func(secretaryID uint) preference.Store {
			store, ok := f.prefs[secretaryID]
			if !ok {
				store = preference.NewMemoryStore()
				f.prefs[secretaryID] = store
			}
			return store
		},
	)
	return f
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "ana@imobiliaria.com", "segredo123", nil},
		{"wrong password", "ana@imobiliaria.com", "errada", ErrInvalidCredentials},
		{"unknown email", "ninguem@imobiliaria.com", "segredo123", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if resp.AccessToken == "" || resp.RefreshToken == "" || resp.Secretary == nil {
				t.Fatalf("incomplete token response: %+v", resp)
			}
		})
	}
}

func TestLoginRememberMePreference(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "ana@imobiliaria.com", Password: "segredo123", RememberMe: true}); err != nil {
		t.Fatalf("login: %v", err)
	}
	got, err := f.usecase.GetRememberMe(ctx, f.secretary.ID)
	if err != nil || !got.RememberMe {
		t.Fatalf("remember me = %+v, err = %v", got, err)
	}

	if _, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "ana@imobiliaria.com", Password: "segredo123"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	got, err = f.usecase.GetRememberMe(ctx, f.secretary.ID)
	if err != nil || got.RememberMe {
		t.Fatalf("remember me should be cleared, got %+v, err = %v", got, err)
	}
}

func TestRefreshTokenRotatesAndKeepsRememberMe(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	login, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "ana@imobiliaria.com", Password: "segredo123", RememberMe: true})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !refreshed.RememberMe {
		t.Fatalf("remember me lost on refresh")
	}
	claims, err := f.jwt.ValidateToken(refreshed.RefreshToken)
	if err != nil || !claims.RememberMe {
		t.Fatalf("refresh claims = %+v, err = %v", claims, err)
	}

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("reused refresh token error = %v, want %v", err, ErrTokenRevoked)
	}

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: refreshed.AccessToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access token as refresh error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestLogoutRevokesTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	login, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "ana@imobiliaria.com", Password: "segredo123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	access, err := f.jwt.ValidateToken(login.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if err := f.usecase.Logout(ctx, f.secretary.ID, access.TokenID, login.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if f.tokens.count() != 0 {
		t.Fatalf("tokens left after logout: %d", f.tokens.count())
	}

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("error = %v, want %v", err, ErrTokenRevoked)
	}
}

func TestGetCurrentSecretary(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	me, err := f.usecase.GetCurrentSecretary(ctx, f.secretary.ID)
	if err != nil || me.Email != "ana@imobiliaria.com" {
		t.Fatalf("me = %+v, err = %v", me, err)
	}

	if _, err := f.usecase.GetCurrentSecretary(ctx, 999); !errors.Is(err, ErrSecretaryNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrSecretaryNotFound)
	}
}
