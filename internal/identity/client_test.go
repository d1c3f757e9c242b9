package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func toolkitServer(t *testing.T, handler func(endpoint string, payload map[string]any) (int, any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad payload: %v", err)
		}

		status, body := handler(r.URL.Path, payload)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func TestClient_SignInWithPassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := toolkitServer(t, func(endpoint string, payload map[string]any) (int, any) {
			assert.Equal(t, "/accounts:signInWithPassword", endpoint)
			assert.Equal(t, "alice@example.com", payload["email"])
			return http.StatusOK, map[string]any{"localId": "uid-1", "email": "alice@example.com"}
		})
		defer srv.Close()

		client := NewClientWithBaseURL("test-key", srv.URL)
		account, err := client.SignInWithPassword(context.Background(), "alice@example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", account.UserID)
		assert.Equal(t, "alice@example.com", account.Email)
	})

	t.Run("Wrong password", func(t *testing.T) {
		srv := toolkitServer(t, func(endpoint string, payload map[string]any) (int, any) {
			return http.StatusBadRequest, map[string]any{"error": map[string]any{"message": "INVALID_LOGIN_CREDENTIALS"}}
		})
		defer srv.Close()

		client := NewClientWithBaseURL("test-key", srv.URL)
		_, err := client.SignInWithPassword(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestClient_SignUpWithPassword(t *testing.T) {
	t.Run("Email already registered", func(t *testing.T) {
		srv := toolkitServer(t, func(endpoint string, payload map[string]any) (int, any) {
			assert.Equal(t, "/accounts:signUp", endpoint)
			return http.StatusBadRequest, map[string]any{"error": map[string]any{"message": "EMAIL_EXISTS"}}
		})
		defer srv.Close()

		client := NewClientWithBaseURL("test-key", srv.URL)
		_, err := client.SignUpWithPassword(context.Background(), "alice@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestClient_SignInWithGoogleIDToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := toolkitServer(t, func(endpoint string, payload map[string]any) (int, any) {
			assert.Equal(t, "/accounts:signInWithIdp", endpoint)
			assert.Contains(t, payload["postBody"], "providerId=google.com")
			return http.StatusOK, map[string]any{"localId": "uid-2", "email": "bob@example.com"}
		})
		defer srv.Close()

		client := NewClientWithBaseURL("test-key", srv.URL)
		account, err := client.SignInWithGoogleIDToken(context.Background(), "google-token")
		assert.NoError(t, err)
		assert.Equal(t, "uid-2", account.UserID)
	})

	t.Run("Rejected token", func(t *testing.T) {
		srv := toolkitServer(t, func(endpoint string, payload map[string]any) (int, any) {
			return http.StatusBadRequest, map[string]any{"error": map[string]any{"message": "INVALID_IDP_RESPONSE"}}
		})
		defer srv.Close()

		client := NewClientWithBaseURL("test-key", srv.URL)
		_, err := client.SignInWithGoogleIDToken(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidIDToken)
	})
}

func TestMapToolkitError_Suffixed(t *testing.T) {
	resp := toolkitResponse{}
	resp.Error = &struct {
		Message string `json:"message"`
	}{Message: "INVALID_PASSWORD : The password is invalid"}
	assert.ErrorIs(t, mapToolkitError(resp), ErrInvalidCredentials)
}
