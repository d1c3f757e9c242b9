// Package identity talks to Firebase Auth. Credential verification goes
// through the Identity Toolkit REST API because the Admin SDK has no
// password sign-in path; directory and revocation operations use the
// Admin SDK.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"borrowbuddy-backend/internal/logger"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidIDToken     = errors.New("invalid federated credential")
)

// Account is the Firebase identity resolved by a sign-in or sign-up call.
// UserID is the Firebase localId, the stable owner identity for ledger
// records.
type Account struct {
	UserID string
	Email  string
}

// Client calls the Identity Toolkit REST API with a web API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different endpoint, for the
// Auth emulator and for tests.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// SignUpWithPassword creates a new email/password account.
func (c *Client) SignUpWithPassword(ctx context.Context, email, password string) (*Account, error) {
	return c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SignInWithPassword verifies an email/password credential.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Account, error) {
	return c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SignInWithGoogleIDToken exchanges a Google ID token for the linked
// Firebase account, creating one on first sign-in.
func (c *Client) SignInWithGoogleIDToken(ctx context.Context, idToken string) (*Account, error) {
	return c.post(ctx, "accounts:signInWithIdp", map[string]any{
		"postBody":            fmt.Sprintf("id_token=%s&providerId=google.com", idToken),
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	})
}

type toolkitResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any) (*Account, error) {
	logger.ExternalServiceCall("firebase-auth", endpoint)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("firebase-auth", endpoint, err)
		return nil, fmt.Errorf("identity toolkit request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed toolkitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode identity toolkit response: %w", err)
	}

	if resp.StatusCode >= 400 {
		err := mapToolkitError(parsed)
		logger.ExternalServiceResult("firebase-auth", endpoint, err)
		return nil, err
	}

	logger.ExternalServiceResult("firebase-auth", endpoint, nil, "local_id", parsed.LocalID)
	return &Account{UserID: parsed.LocalID, Email: parsed.Email}, nil
}

func mapToolkitError(resp toolkitResponse) error {
	if resp.Error == nil {
		return errors.New("identity toolkit request rejected")
	}
	// Toolkit error messages can carry suffixes, e.g.
	// "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
	msg := resp.Error.Message
	switch {
	case strings.HasPrefix(msg, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(msg, "INVALID_PASSWORD"),
		strings.HasPrefix(msg, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(msg, "USER_DISABLED"):
		return ErrInvalidCredentials
	case strings.HasPrefix(msg, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case strings.HasPrefix(msg, "INVALID_IDP_RESPONSE"),
		strings.HasPrefix(msg, "INVALID_ID_TOKEN"):
		return ErrInvalidIDToken
	default:
		return fmt.Errorf("identity toolkit error: %s", msg)
	}
}
