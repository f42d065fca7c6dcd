// Package client is a typed HTTP client for the back-office API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/pkg/apperror"
	"property-backoffice/pkg/preference"
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	preferences preference.Store

	mu     sync.RWMutex
	tokens *dto.TokenResponse
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPreferences sets where the remember-me flag is kept between runs.
func WithPreferences(store preference.Store) Option {
	return func(c *Client) {
		c.preferences = store
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Errors  []string        `json:"errors"`
}

func kindForStatus(status int) apperror.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperror.KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperror.KindUnauthorized
	case http.StatusNotFound:
		return apperror.KindNotFound
	case http.StatusConflict:
		return apperror.KindConflict
	case http.StatusTooManyRequests:
		return apperror.KindTooManyRequests
	default:
		return apperror.KindUnexpected
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && err != io.EOF {
		if resp.StatusCode >= 300 {
			return &apperror.Error{Kind: kindForStatus(resp.StatusCode), Message: resp.Status}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, &env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func decodeError(status int, env *envelope) error {
	appErr := &apperror.Error{
		Kind:    kindForStatus(status),
		Message: env.Message,
	}
	if appErr.Message == "" {
		appErr.Message = http.StatusText(status)
	}

	var fields map[string]string
	if len(env.Error) > 0 && json.Unmarshal(env.Error, &fields) == nil && len(fields) > 0 {
		appErr.Fields = fields
	}
	return appErr
}

func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.AccessToken
}

// Login authenticates and keeps the tokens for later calls. The remember-me
// flag is stored when set and cleared otherwise.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (*dto.TokenResponse, error) {
	var tokens dto.TokenResponse
	err := c.do(ctx, http.MethodPost, "/autenticacao/login", &dto.LoginRequest{
		Email:      email,
		Password:   password,
		RememberMe: rememberMe,
	}, &tokens)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tokens = &tokens
	c.mu.Unlock()

	if c.preferences != nil {
		if err := preference.SetRememberMe(ctx, c.preferences, rememberMe); err != nil {
			return &tokens, fmt.Errorf("store remember-me preference: %w", err)
		}
	}

	return &tokens, nil
}

// RememberMe reads the locally stored flag, used to prefill the login form.
func (c *Client) RememberMe(ctx context.Context) (bool, error) {
	if c.preferences == nil {
		return false, nil
	}
	return preference.RememberMe(ctx, c.preferences)
}

func (c *Client) Logout(ctx context.Context) error {
	c.mu.RLock()
	tokens := c.tokens
	c.mu.RUnlock()
	if tokens == nil {
		return nil
	}

	err := c.do(ctx, http.MethodPost, "/autenticacao/logout", &dto.LogoutRequest{RefreshToken: tokens.RefreshToken}, nil)

	c.mu.Lock()
	c.tokens = nil
	c.mu.Unlock()

	return err
}

func (c *Client) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	var out dto.AppointmentListResponse
	if err := c.do(ctx, http.MethodGet, "/consultas", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := c.do(ctx, http.MethodPost, "/consultas", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/consultas/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id uint) (*dto.AppointmentDetailResponse, error) {
	var out dto.AppointmentDetailResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/consultas/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProperties(ctx context.Context) (*dto.PropertyListResponse, error) {
	var out dto.PropertyListResponse
	if err := c.do(ctx, http.MethodGet, "/cadastro-imoveis", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListClients(ctx context.Context) (*dto.ClientListResponse, error) {
	var out dto.ClientListResponse
	if err := c.do(ctx, http.MethodGet, "/pacientes", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListStaff(ctx context.Context) (*dto.StaffListResponse, error) {
	var out dto.StaffListResponse
	if err := c.do(ctx, http.MethodGet, "/medicos", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
