package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/common"
	"github.com/introapp/freshintro/internal/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, srv.Client(), testLogger())
	require.NoError(t, err)
	return c, srv
}

func TestGetMyProfile_OK(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/get-my-profile", r.URL.Path)

		cookie, err := r.Cookie(common.AccessTokenCookieName)
		require.NoError(t, err)
		require.Equal(t, "tok123", cookie.Value)

		_ = json.NewEncoder(w).Encode(models.RemoteProfile{
			Bio:       "hello",
			Branch:    "ECE",
			Hostel:    "H2",
			Interests: []string{"music"},
			User: models.RemoteUser{
				ID:     7,
				Images: []models.RemoteImage{{ID: 1, ImageURL: "http://x/y.jpg"}},
			},
		})
	}))
	c.SetSessionToken("tok123")

	p, err := c.GetMyProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello", p.Bio)
	require.Len(t, p.User.Images, 1)
}

func TestGetMyProfile_404(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.GetMyProfile(context.Background())
	require.ErrorIs(t, err, common.ErrProfileNotFound)
}

func TestPresign(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/s3/presign", r.URL.Path)
		require.Equal(t, "cat.jpg", r.URL.Query().Get("filename"))
		require.Equal(t, "image/jpeg", r.URL.Query().Get("type"))

		_ = json.NewEncoder(w).Encode(models.PresignedUpload{
			UploadURL: "http://bucket.local/",
			Fields:    map[string]string{"policy": "p"},
			Key:       "user-profiles/7/cat.jpg",
		})
	}))

	pu, err := c.Presign(context.Background(), "cat.jpg", "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "user-profiles/7/cat.jpg", pu.Key)
	require.Equal(t, "p", pu.Fields["policy"])
}

func TestCreateOrUpdateProfile_ServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bio too long", http.StatusUnprocessableEntity)
	}))

	err := c.CreateOrUpdateProfile(context.Background(), &models.WriteProfileRequest{Bio: "x"})
	var se *common.ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnprocessableEntity, se.Status)
	require.Equal(t, "bio too long", se.Detail)
}

func TestCreateOrUpdateProfile_SendsPayload(t *testing.T) {
	var got models.WriteProfileRequest
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	err := c.CreateOrUpdateProfile(context.Background(), &models.WriteProfileRequest{
		Bio:       "hey",
		Branch:    "CSE",
		Hostel:    "H1",
		Interests: []string{"chess"},
		ImageKeys: []string{"k1", "k2"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"k1", "k2"}, got.ImageKeys)
	require.Equal(t, "hey", got.Bio)
}

func TestFetchImage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))

	data, ct, err := c.FetchImage(context.Background(), c.origin+"/some/image.png")
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
	require.Equal(t, "image/png", ct)
}

func TestTokenExpired(t *testing.T) {
	mk := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
		s, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}

	require.True(t, TokenExpired(mk(time.Now().Add(-time.Hour))))
	require.False(t, TokenExpired(mk(time.Now().Add(time.Hour))))

	// opaque tokens are treated as live
	require.False(t, TokenExpired("not-a-jwt"))
	require.False(t, TokenExpired(""))
}
