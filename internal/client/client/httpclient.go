package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/common"
	"github.com/introapp/freshintro/internal/logging"
)

// HTTPClient implements Client over the backend's REST endpoints. The session
// token is attached as a cookie on every request, mirroring the browser
// client this replaces.
type HTTPClient struct {
	origin string
	http   *http.Client
	token  string
	log    logging.Logger

	warnedExpired bool
}

// NewHTTPClient returns an HTTPClient for the given backend origin
// (e.g. "http://localhost:8000").
func NewHTTPClient(origin string, httpClient *http.Client, log logging.Logger) (*HTTPClient, error) {
	if _, err := url.Parse(origin); err != nil {
		return nil, fmt.Errorf("invalid backend origin %q: %w", origin, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		origin: strings.TrimRight(origin, "/"),
		http:   httpClient,
		log:    log,
	}, nil
}

// SetSessionToken installs the session token used for subsequent requests.
func (c *HTTPClient) SetSessionToken(token string) {
	c.token = token
	c.warnedExpired = false
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.origin+path, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: common.AccessTokenCookieName, Value: c.token})
		if !c.warnedExpired && TokenExpired(c.token) {
			c.warnedExpired = true
			c.log.Warn(ctx, "session token looks expired, the backend will likely reject this request")
		}
	}
	return req, nil
}

// GetMyProfile fetches the caller's profile; 404 means no profile yet.
func (c *HTTPClient) GetMyProfile(ctx context.Context) (*models.RemoteProfile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/profile/get-my-profile", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, common.ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readServerError(resp)
	}

	var profile models.RemoteProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

// Presign asks the storage broker for a one-file upload authorization.
func (c *HTTPClient) Presign(ctx context.Context, filename, contentType string) (*models.PresignedUpload, error) {
	q := url.Values{}
	q.Set("filename", filename)
	q.Set("type", contentType)

	req, err := c.newRequest(ctx, http.MethodGet, "/s3/presign?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("presign request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readServerError(resp)
	}

	var pu models.PresignedUpload
	if err := json.NewDecoder(resp.Body).Decode(&pu); err != nil {
		return nil, fmt.Errorf("decode presign response: %w", err)
	}
	return &pu, nil
}

// CreateOrUpdateProfile writes the draft fields and uploaded object keys.
func (c *HTTPClient) CreateOrUpdateProfile(ctx context.Context, wr *models.WriteProfileRequest) error {
	body, err := json.Marshal(wr)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/profile/create-or-update-profile", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("profile write: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readServerError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// FetchImage downloads an already-uploaded image by URL.
func (c *HTTPClient) FetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("image fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image fetch: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("image fetch: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}

// readServerError turns a non-2xx response into a ServerError carrying the
// body as human-readable detail.
func readServerError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &common.ServerError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(b))}
}
