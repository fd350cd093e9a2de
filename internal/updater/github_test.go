package updater

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *ReleaseClient {
	c := NewReleaseClient(5 * time.Second)
	c.BaseURL = baseURL
	return c
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/be-smiley2/glados_game_launcher/releases/latest", r.URL.Path)
		assert.Equal(t, "glados-launcher", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `{"tag_name":"v2.1.0","name":"Release 2.1.0","zipball_url":"https://example.com/zipball","html_url":"https://example.com/release"}`)
	}))
	defer srv.Close()

	release, err := newTestClient(srv.URL).LatestRelease(context.Background(), "be-smiley2", "glados_game_launcher")
	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", release.TagName)
	assert.Equal(t, "2.1.0", release.Version())
	assert.Equal(t, "https://example.com/zipball", release.ZipballURL)
}

func TestLatestReleaseStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"no releases", http.StatusNotFound, ErrNoReleases},
		{"rate limited", http.StatusForbidden, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).LatestRelease(context.Background(), "o", "r")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLatestReleaseServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).LatestRelease(context.Background(), "o", "r")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoReleases)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestDownloadArchive(t *testing.T) {
	payload := bytes.Repeat([]byte("aperture"), 128)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	var reported int64
	err := newTestClient(srv.URL).DownloadArchive(context.Background(), srv.URL, &buf, func(total int64) io.Writer {
		reported = total
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, payload, buf.Bytes())
	assert.Equal(t, int64(len(payload)), reported)
}

func TestDownloadArchiveBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := newTestClient(srv.URL).DownloadArchive(context.Background(), srv.URL, &buf, nil)
	assert.Error(t, err)
}
