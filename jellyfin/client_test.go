package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient("", "key", logger)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient("http://jellyfin:8096", "", logger)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSystemInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/System/Info/Public", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"ServerName": "media", "LocalAddress": "http://10.0.0.2:8096", "Version": "10.9.1"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", zerolog.Nop())
	require.NoError(t, err)

	info, err := client.SystemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "media", info.ServerName)
	assert.Equal(t, "http://10.0.0.2:8096", info.LocalAddress)
}

func TestMovies(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Items", r.URL.Path)
			assert.Equal(t, "Movie", r.URL.Query().Get("IncludeItemTypes"))
			assert.Equal(t, "Path", r.URL.Query().Get("Fields"))
			assert.Equal(t, "true", r.URL.Query().Get("Recursive"))

			w.Write([]byte(`{
				"Items": [
					{"Id": "a", "Name": "The Matrix", "Path": "/movies/The Matrix (1999) [tmdbid-603]/file.mkv"},
					{"Id": "b", "Name": "Heat", "Path": "/movies/Heat (1995)/file.mkv"}
				],
				"TotalRecordCount": 2
			}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)

		movies, err := client.Movies(context.Background())
		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, "The Matrix", movies[0].Name)
		assert.Contains(t, movies[0].Path, "[tmdbid-603]")
	})

	t.Run("pages through large libraries", func(t *testing.T) {
		const total = movieFetchLimit + 3

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start, _ := strconv.Atoi(r.URL.Query().Get("StartIndex"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("Limit"))

			var items []Item
			for i := start; i < total && i < start+limit; i++ {
				items = append(items, Item{ID: strconv.Itoa(i), Name: fmt.Sprintf("Movie %d", i)})
			}
			json.NewEncoder(w).Encode(itemsResponse{Items: items, TotalRecordCount: total})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)

		movies, err := client.Movies(context.Background())
		require.NoError(t, err)
		assert.Len(t, movies, total)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Movies(context.Background())
		require.Error(t, err)
	})
}
