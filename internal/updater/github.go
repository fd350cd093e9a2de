package updater

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.github.com"

var (
	// ErrNoReleases indicates the repository has never published a release
	ErrNoReleases = errors.New("no releases found")
	// ErrRateLimited indicates the release endpoint refused the request
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Release is the remote release metadata the updater consumes
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	ZipballURL string `json:"zipball_url"`
	HTMLURL    string `json:"html_url"`
}

// Version strips the conventional "v" prefix from the release tag
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// ReleaseClient talks to the GitHub releases API for one repository
type ReleaseClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewReleaseClient creates a client with the given metadata-check timeout
func NewReleaseClient(timeout time.Duration) *ReleaseClient {
	return &ReleaseClient{
		BaseURL:   defaultAPIBase,
		UserAgent: "glados-launcher",
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LatestRelease fetches the newest published release for owner/repo.
// 404 and 403 map to the sentinel errors so callers can tell the outcomes
// apart from transport failures.
func (c *ReleaseClient) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.BaseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var release Release
		if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
			return nil, fmt.Errorf("failed to decode release: %w", err)
		}
		return &release, nil
	case http.StatusNotFound:
		return nil, ErrNoReleases
	case http.StatusForbidden:
		return nil, ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("release request failed: status %d, body: %s", resp.StatusCode, string(body))
	}
}

// DownloadArchive streams the release archive into w. When the remote declares
// a content length and progress is non-nil, the stream is mirrored into the
// writer progress returns. The archive download is unbounded in duration; only
// the metadata check carries the client timeout, so a separate transport
// without it is used here.
func (c *ReleaseClient) DownloadArchive(ctx context.Context, url string, w io.Writer, progress func(total int64) io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	client := &http.Client{Transport: c.HTTPClient.Transport}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to start download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: status %d", resp.StatusCode)
	}

	dest := w
	if progress != nil && resp.ContentLength > 0 {
		if pw := progress(resp.ContentLength); pw != nil {
			dest = io.MultiWriter(w, pw)
		}
	}

	if _, err := io.Copy(dest, resp.Body); err != nil {
		return fmt.Errorf("failed to write download: %w", err)
	}
	return nil
}
