package jellyseerr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("valid config", func(t *testing.T) {
		client, err := NewClient("http://jellyseerr:5055/api/v1", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://jellyseerr:5055/api/v1", client.baseURL)
	})

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient("", "test-key", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient("http://jellyseerr:5055/api/v1", "", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestUpdateRequestStatus(t *testing.T) {
	t.Run("decline", func(t *testing.T) {
		var gotPath, gotMethod, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotKey = r.Header.Get("X-Api-Key")
			w.Write([]byte(`{"id": 42, "status": 3}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)

		require.NoError(t, client.UpdateRequestStatus(context.Background(), "42", StatusDecline))
		assert.Equal(t, "/request/42/decline", gotPath)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "test-key", gotKey)
	})

	t.Run("approve", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/request/7/approve", r.URL.Path)
			w.Write([]byte(`{"id": 7, "status": 2}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)

		assert.NoError(t, client.UpdateRequestStatus(context.Background(), "7", StatusApprove))
	})

	t.Run("non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Request not found"}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)

		err = client.UpdateRequestStatus(context.Background(), "42", StatusDecline)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStatusUpdateFailed)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsNotFound())
	})

	t.Run("invalid status token", func(t *testing.T) {
		client, err := NewClient("http://jellyseerr:5055/api/v1", "test-key", zerolog.Nop())
		require.NoError(t, err)

		err = client.UpdateRequestStatus(context.Background(), "42", "reject")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid request status")
	})

	t.Run("missing request ID", func(t *testing.T) {
		client, err := NewClient("http://jellyseerr:5055/api/v1", "test-key", zerolog.Nop())
		require.NoError(t, err)

		err = client.UpdateRequestStatus(context.Background(), "", StatusApprove)
		require.Error(t, err)
	})
}

func TestTestConnection(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/me", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
			w.Write([]byte(`{"id": 1, "displayName": "Admin"}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)
		assert.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "bad-key", zerolog.Nop())
		require.NoError(t, err)

		err = client.TestConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to Jellyseerr")
	})
}
