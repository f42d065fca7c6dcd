package jwt

import (
	"errors"
	"time"

	"property-backoffice/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	SecretaryID uint      `json:"secretary_id"`
	Email       string    `json:"email"`
	TokenType   TokenType `json:"token_type"`
	TokenID     string    `json:"token_id"`
	RememberMe  bool      `json:"remember_me,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateAccessToken(secretaryID uint, email string) (string, string, error) {
	return s.generate(secretaryID, email, AccessToken, false, s.config.AccessExpiry)
}

// GenerateRefreshToken issues a refresh token. Remember-me sessions get the
// longer expiry and keep the flag so a refresh preserves it.
func (s *JWTService) GenerateRefreshToken(secretaryID uint, email string, rememberMe bool) (string, string, error) {
	return s.generate(secretaryID, email, RefreshToken, rememberMe, s.GetRefreshExpiry(rememberMe))
}

func (s *JWTService) generate(secretaryID uint, email string, tokenType TokenType, rememberMe bool, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		SecretaryID: secretaryID,
		Email:       email,
		TokenType:   tokenType,
		TokenID:     tokenID,
		RememberMe:  rememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry(rememberMe bool) time.Duration {
	if rememberMe {
		return s.config.RememberMeExpiry
	}
	return s.config.RefreshExpiry
}
