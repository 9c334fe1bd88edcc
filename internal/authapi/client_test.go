package authapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"marketloop/internal/authapi"
	"marketloop/internal/core"
)

func TestClient_Login(t *testing.T) {
	t.Parallel()

	t.Run("decodes the session on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/auth/login", r.URL.Path)

			var creds authapi.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, "mia@example.com", creds.Email)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(authapi.Session{ //nolint:errcheck
				Token: "tok-1",
				User:  core.User{ID: "u1", Name: "Mia Chen"},
			})
		}))
		defer srv.Close()

		client := authapi.NewClient(srv.URL)
		defer client.Close() //nolint:errcheck

		session, err := client.Login(t.Context(), authapi.Credentials{Email: "mia@example.com", Password: "hunter2"})
		require.NoError(t, err)
		require.Equal(t, "tok-1", session.Token)
		require.Equal(t, "u1", session.User.ID)
	})

	t.Run("maps 401 to ErrUnauthorized", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := authapi.NewClient(srv.URL)
		defer client.Close() //nolint:errcheck

		_, err := client.Login(t.Context(), authapi.Credentials{Email: "x", Password: "y"})
		require.ErrorIs(t, err, authapi.ErrUnauthorized)
	})
}

func TestClient_CurrentUser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(core.User{ID: "u1", Name: "Mia Chen"}) //nolint:errcheck
	}))
	defer srv.Close()

	client := authapi.NewClient(srv.URL)
	defer client.Close() //nolint:errcheck

	user, err := client.CurrentUser(t.Context(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
}
