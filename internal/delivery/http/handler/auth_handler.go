package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/delivery/http/middleware"
	"property-backoffice/internal/usecase"
	"property-backoffice/pkg/response"
	"property-backoffice/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles secretary login
// @Summary Login
// @Description Authenticate a secretary. lembrarMe extends the refresh token lifetime.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /autenticacao/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /autenticacao/refresh [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to refresh token")
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// Logout revokes the access token of the request and, when sent in the
// body, the refresh token. The body is optional.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	secretaryID, ok := middleware.GetSecretaryIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	var req dto.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.authUsecase.Logout(r.Context(), secretaryID, tokenID, req.RefreshToken); err != nil {
		response.FromError(w, err, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentSecretary handles getting current secretary info
// @Summary Get current secretary
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /autenticacao/me [get]
func (h *AuthHandler) GetCurrentSecretary(w http.ResponseWriter, r *http.Request) {
	secretaryID, ok := middleware.GetSecretaryIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	secretary, err := h.authUsecase.GetCurrentSecretary(r.Context(), secretaryID)
	if err != nil {
		response.FromError(w, err, "Failed to get secretary info")
		return
	}

	response.Success(w, http.StatusOK, "Secretary retrieved successfully", secretary)
}

func (h *AuthHandler) GetRememberMe(w http.ResponseWriter, r *http.Request) {
	secretaryID, ok := middleware.GetSecretaryIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	preference, err := h.authUsecase.GetRememberMe(r.Context(), secretaryID)
	if err != nil {
		response.FromError(w, err, "Failed to get remember-me preference")
		return
	}

	response.Success(w, http.StatusOK, "Preference retrieved successfully", preference)
}
