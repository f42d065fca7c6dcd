package usecase

import (
	"context"

	"property-backoffice/internal/converter"
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/domain/repository"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/jwt"
	"property-backoffice/pkg/preference"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PreferenceStoreFactory returns the preference store of one secretary.
type PreferenceStoreFactory func(secretaryID uint) preference.Store

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, secretaryID uint, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentSecretary(ctx context.Context, secretaryID uint) (*dto.SecretaryResponse, error)
	GetRememberMe(ctx context.Context, secretaryID uint) (*dto.RememberMeResponse, error)
}

type authUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	secretaryRepo repository.SecretaryRepository
	auditService  service.AuditService
	jwtService    *jwt.JWTService
	tokenStore    service.TokenStore
	preferences   PreferenceStoreFactory
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	secretaryRepo repository.SecretaryRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	preferences PreferenceStoreFactory,
) AuthUsecase {
	return &authUsecase{
		db:            db,
		log:           log,
		secretaryRepo: secretaryRepo,
		auditService:  auditService,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		preferences:   preferences,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// Find secretary by email (read-only, no transaction needed)
	secretary, err := u.secretaryRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find secretary by email: %+v", err)
		return nil, unexpected(err)
	}
	if secretary == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(secretary.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, secretary.ID, secretary.Email, req.RememberMe)
	if err != nil {
		return nil, err
	}
	tokens.Secretary = converter.SecretaryToResponse(secretary)

	if u.preferences != nil {
		if err := preference.SetRememberMe(ctx, u.preferences(secretary.ID), req.RememberMe); err != nil {
			u.log.Warnf("Failed to store remember-me preference: %+v", err)
		}
	}

	u.logLogin(ctx, secretary.ID, req.RememberMe)

	return tokens, nil
}

func (u *authUsecase) logLogin(ctx context.Context, secretaryID uint, rememberMe bool) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	metadata := map[string]interface{}{"lembrarMe": rememberMe}
	if err := u.auditService.LogCreate(ctx, tx, &secretaryID, entity.AuditActionSecretaryLogin, "secretary", secretaryID, metadata); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
	}
}

func (u *authUsecase) issueTokens(ctx context.Context, secretaryID uint, email string, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(secretaryID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, unexpected(err)
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(secretaryID, email, rememberMe)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, unexpected(err)
	}

	if err := u.tokenStore.Save(ctx, jwt.AccessToken, secretaryID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, unexpected(err)
	}

	if err := u.tokenStore.Save(ctx, jwt.RefreshToken, secretaryID, refreshTokenID, u.jwtService.GetRefreshExpiry(rememberMe)); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		RememberMe:   rememberMe,
	}, nil
}

// Logout revokes the current access token and, when given, the refresh token
// of the same secretary. An unusable refresh token is ignored.
func (u *authUsecase) Logout(ctx context.Context, secretaryID uint, accessTokenID, refreshToken string) error {
	if err := u.tokenStore.Revoke(ctx, jwt.AccessToken, secretaryID, accessTokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return unexpected(err)
	}

	if refreshToken == "" {
		return nil
	}

	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.SecretaryID != secretaryID {
		return nil
	}

	if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, secretaryID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete refresh token: %+v", err)
		return unexpected(err)
	}

	return nil
}

// RefreshToken rotates the token pair. The remember-me choice made at login
// carries over to the new refresh token.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenStore.Exists(ctx, jwt.RefreshToken, claims.SecretaryID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, unexpected(err)
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Delete old refresh token
	if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, claims.SecretaryID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, unexpected(err)
	}

	return u.issueTokens(ctx, claims.SecretaryID, claims.Email, claims.RememberMe)
}

func (u *authUsecase) GetCurrentSecretary(ctx context.Context, secretaryID uint) (*dto.SecretaryResponse, error) {
	secretary, err := u.secretaryRepo.FindByID(u.db.WithContext(ctx), secretaryID)
	if err != nil {
		u.log.Warnf("Failed to find secretary by ID: %+v", err)
		return nil, unexpected(err)
	}
	if secretary == nil {
		return nil, ErrSecretaryNotFound
	}

	return converter.SecretaryToResponse(secretary), nil
}

func (u *authUsecase) GetRememberMe(ctx context.Context, secretaryID uint) (*dto.RememberMeResponse, error) {
	if u.preferences == nil {
		return &dto.RememberMeResponse{}, nil
	}

	remember, err := preference.RememberMe(ctx, u.preferences(secretaryID))
	if err != nil {
		u.log.Warnf("Failed to read remember-me preference: %+v", err)
		return nil, unexpected(err)
	}

	return &dto.RememberMeResponse{RememberMe: remember}, nil
}
