package fastapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.Client(), srv.URL)
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, "/api/metadata", req.URL.Path)

		body, _ := io.ReadAll(req.Body)
		require.JSONEq(t, `{"url":"https://vt.tiktok.com/XYZ/"}`, string(body))

		w.Write([]byte(`{"success":true,"data":{"title":"Demo clip","thumbnail":"https://cdn/th.jpg","duration":42,"uploader":"demo","platform":"TikTok","url":"https://vt.tiktok.com/XYZ/","filesize":1000}}`))
	})

	md, err := r.Resolve(context.Background(), "https://vt.tiktok.com/XYZ/")
	require.NoError(t, err)
	require.Equal(t, "Demo clip", md.Title)
	require.Equal(t, media.PlatformTikTok, md.Platform)
	require.Equal(t, "demo", md.Author)
	require.Equal(t, int64(1000), md.Filesize)
	require.Equal(t, 42, md.Duration)

	// The thumbnail comes back routed through the backend proxy.
	require.Equal(t, r.baseURL+"/api/thumbnail?url=https%3A%2F%2Fcdn%2Fth.jpg", md.Thumbnail)
}

func TestResolveDefaults(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"platform":"unknown"}}`))
	})

	md, err := r.Resolve(context.Background(), "https://example.com/v")
	require.NoError(t, err)
	require.Equal(t, "Video", md.Title)
	require.Equal(t, "Unknown", md.Author)
	require.Empty(t, md.Thumbnail)
	require.Equal(t, media.PlatformOther, md.Platform)
}

func TestResolveBackendError(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"success":false,"error":"Unsupported URL"}`))
	})

	_, err := r.Resolve(context.Background(), "https://example.com/v")
	require.ErrorIs(t, err, common.ErrResolutionFailed)
	require.Contains(t, err.Error(), "Unsupported URL")
}

func TestResolveMalformedPayload(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := r.Resolve(context.Background(), "https://example.com/v")
	require.ErrorIs(t, err, common.ErrResolutionFailed)
}

func TestResolveEmptyURL(t *testing.T) {
	called := false
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	_, err := r.Resolve(context.Background(), "")
	require.ErrorIs(t, err, common.ErrInvalidInput)
	require.False(t, called, "empty url must not reach the network")
}

func TestDirectURL(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/get-direct-url", req.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"direct_url":"https://cdn/video.mp4","filename":"clip.mp4","filesize":2048,"expires_in":600}}`))
	})

	d, err := r.DirectURL(context.Background(), "https://vt.tiktok.com/XYZ/")
	require.NoError(t, err)
	require.Equal(t, "https://cdn/video.mp4", d.URL)
	require.Equal(t, "clip.mp4", d.Filename)
	require.Equal(t, int64(2048), d.Filesize)
	require.Equal(t, int64(600), d.ExpiresIn)
}

func TestDirectURLMissing(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"filename":"clip.mp4"}}`))
	})

	_, err := r.DirectURL(context.Background(), "https://vt.tiktok.com/XYZ/")
	require.ErrorIs(t, err, common.ErrNoDirectURL)
}

func TestThumbnailURL(t *testing.T) {
	r := New(http.DefaultClient, "https://api.example.com/")

	require.Empty(t, r.ThumbnailURL(""))
	require.Equal(t,
		"https://api.example.com/api/thumbnail?url=https%3A%2F%2Fcdn%2Fth.jpg",
		r.ThumbnailURL("https://cdn/th.jpg"),
	)
}

func TestValid(t *testing.T) {
	r := New(http.DefaultClient, "")

	require.True(t, r.Valid("https://anything.example.com/clip"))
	require.True(t, r.Valid("http://host/v"))
	require.False(t, r.Valid("ftp://host/v"))
	require.False(t, r.Valid("plain text"))
}
