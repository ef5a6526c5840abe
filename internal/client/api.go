// Package client talks to the BudgetPro collaborator API. It performs no
// session mutation: the shell feeds issued token pairs to the session
// manager itself.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

var (
	// ErrInvalidCredentials means the login exchange refused the
	// email/password combination.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountPending means the account exists but has not been
	// approved by an admin yet.
	ErrAccountPending = errors.New("account pending approval")

	// ErrUnreachable means the collaborator API could not be reached.
	ErrUnreachable = errors.New("service unreachable")
)

// ValidationError carries field-level registration failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// RegistrationForm is the self-registration payload.
type RegistrationForm struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Password   string `json:"password"`
}

// AccessRequestSummary is one pending registration as listed for admins.
type AccessRequestSummary struct {
	ID            string    `json:"id"`
	UserEmail     string    `json:"user_email"`
	UserFullName  string    `json:"user_fullname"`
	RequestedRole string    `json:"requested_role"`
	RequestedAt   time.Time `json:"requested_at"`
	Status        string    `json:"status"`
}

// Client is an HTTP client for the collaborator API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client for the API at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := c.post(ctx, "/api/token", body, "")
	if err != nil {
		return domain.TokenPair{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var payload struct {
			Data domain.TokenPair `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return domain.TokenPair{}, fmt.Errorf("decoding token response: %w", err)
		}
		return payload.Data, nil
	case http.StatusUnauthorized:
		return domain.TokenPair{}, ErrInvalidCredentials
	case http.StatusForbidden:
		return domain.TokenPair{}, ErrAccountPending
	default:
		return domain.TokenPair{}, c.unexpected(resp)
	}
}

// Register submits a self-registration. Field-level problems come back as
// a *ValidationError.
func (c *Client) Register(ctx context.Context, form RegistrationForm) error {
	resp, err := c.post(ctx, "/api/users/register", form, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest, http.StatusConflict:
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && len(envelope.Error.Details) > 0 {
			return &ValidationError{Fields: envelope.Error.Details}
		}
		return &ValidationError{Fields: map[string]string{"": envelope.Error.Message}}
	default:
		return c.unexpected(resp)
	}
}

// PendingRequests lists access requests awaiting review. Admin only; the
// access token travels as a bearer credential.
func (c *Client) PendingRequests(ctx context.Context, accessToken string) ([]AccessRequestSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/requests", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpected(resp)
	}

	var payload struct {
		Data []AccessRequestSummary `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding requests response: %w", err)
	}
	return payload.Data, nil
}

func (c *Client) post(ctx context.Context, path string, body any, bearer string) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return resp, nil
}

func (c *Client) unexpected(resp *http.Response) error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, envelope.Error.Message)
	}
	return fmt.Errorf("api error %d", resp.StatusCode)
}
