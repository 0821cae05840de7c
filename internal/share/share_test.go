package share

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/StounhandJ/vidsaver/internal/catalog"
	"github.com/StounhandJ/vidsaver/internal/fetcher"
	"github.com/StounhandJ/vidsaver/internal/handlers"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/resolver"
	"github.com/StounhandJ/vidsaver/internal/securestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type stubResolver struct {
	md     media.Metadata
	direct media.DirectURL
}

func (s *stubResolver) Valid(url string) bool { return true }

func (s *stubResolver) Resolve(ctx context.Context, url string) (*media.Metadata, error) {
	md := s.md
	md.URL = url

	return &md, nil
}

func (s *stubResolver) DirectURL(ctx context.Context, url string) (media.DirectURL, error) {
	return s.direct, nil
}

type stubFetcher struct {
	dir string
}

func (s *stubFetcher) Fetch(ctx context.Context, directURL, filename string, onProgress fetcher.ProgressFunc) (string, error) {
	onProgress(media.Progress{TotalBytes: 4, DownloadedBytes: 4, Percentage: 100})

	path := filepath.Join(s.dir, "transient.mp4")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		return "", err
	}

	return path, nil
}

type stubCommitter struct{}

func (s *stubCommitter) Commit(ctx context.Context, transientPath string, md media.Metadata) (*media.DownloadedVideo, error) {
	info, err := os.Stat(transientPath)
	if err != nil {
		return nil, err
	}

	return &media.DownloadedVideo{
		ID:       "asset-1",
		Metadata: md,
		LocalURI: transientPath,
		FileSize: info.Size(),
	}, nil
}

func (s *stubCommitter) Delete(ctx context.Context, id string) error { return nil }

func newTestServer(t *testing.T, resolvers []resolver.IResolver) *Server {
	t.Helper()

	sec, err := securestore.NewFileStore(t.TempDir(), "test-pass")
	require.NoError(t, err)

	svc := handlers.NewService(
		resolvers,
		&stubFetcher{dir: t.TempDir()},
		&stubCommitter{},
		catalog.New(sec),
		false,
	)

	return NewServer(svc)
}

func serve(s *Server, method, uri, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.SetBodyString(body)

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)

	s.route(&ctx)

	return &ctx
}

func TestShareDownloadsAndReplies(t *testing.T) {
	srv := newTestServer(t, []resolver.IResolver{&stubResolver{
		md:     media.Metadata{Title: "Clip", Platform: media.PlatformTikTok},
		direct: media.DirectURL{URL: "https://cdn.example.com/v.mp4", Filename: "v.mp4"},
	}})

	ctx := serve(srv, http.MethodPost, "/share",
		"Check this out https://www.tiktok.com/@user/video/123")

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var video media.DownloadedVideo
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &video))
	assert.Equal(t, "asset-1", video.ID)
	assert.Equal(t, "Clip", video.Title)
	assert.EqualValues(t, 4, video.FileSize)
}

func TestShareRejectsTextWithoutLink(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx := serve(srv, http.MethodPost, "/share", "no link here")

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestShareMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx := serve(srv, http.MethodGet, "/share", "")

	assert.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx := serve(srv, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", string(ctx.Response.Body()))
}

func TestUnknownPath(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx := serve(srv, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}
