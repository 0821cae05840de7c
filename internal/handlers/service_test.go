package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/StounhandJ/vidsaver/internal/catalog"
	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/fetcher"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/resolver"
	"github.com/StounhandJ/vidsaver/internal/securestore"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	md     *media.Metadata
	direct media.DirectURL
	err    error
}

func (s *stubResolver) Valid(url string) bool { return true }

func (s *stubResolver) Resolve(ctx context.Context, url string) (*media.Metadata, error) {
	if s.err != nil {
		return nil, s.err
	}

	md := *s.md
	md.URL = url

	return &md, nil
}

func (s *stubResolver) DirectURL(ctx context.Context, url string) (media.DirectURL, error) {
	if s.err != nil {
		return media.DirectURL{}, s.err
	}

	return s.direct, nil
}

type stubFetcher struct {
	dir     string
	content []byte
}

func (s *stubFetcher) Fetch(ctx context.Context, directURL, filename string, onProgress fetcher.ProgressFunc) (string, error) {
	total := int64(len(s.content))
	for _, done := range []int64{0, total / 2, total} {
		p := media.Progress{TotalBytes: total, DownloadedBytes: done}
		if total > 0 {
			p.Percentage = float64(done) / float64(total) * 100
		}
		onProgress(p)
	}

	path := filepath.Join(s.dir, "transient.mp4")
	if err := os.WriteFile(path, s.content, 0o600); err != nil {
		return "", err
	}

	return path, nil
}

type stubCommitter struct {
	assetID   string
	commitErr error
	deleteErr error
	deleted   []string
}

func (s *stubCommitter) Commit(ctx context.Context, transientPath string, md media.Metadata) (*media.DownloadedVideo, error) {
	if s.commitErr != nil {
		return nil, s.commitErr
	}

	info, err := os.Stat(transientPath)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(transientPath); err != nil {
		return nil, err
	}

	return &media.DownloadedVideo{
		ID:           s.assetID,
		Metadata:     md,
		LocalURI:     "asset://" + s.assetID,
		DownloadedAt: 1700000000000,
		FileSize:     info.Size(),
	}, nil
}

func (s *stubCommitter) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}

	s.deleted = append(s.deleted, id)

	return nil
}

func newTestService(t *testing.T, r resolver.IResolver, committer *stubCommitter, content []byte) *Service {
	t.Helper()

	secStore, err := securestore.NewFileStore(t.TempDir(), "test")
	require.NoError(t, err)

	return NewService(
		[]resolver.IResolver{r},
		&stubFetcher{dir: t.TempDir(), content: content},
		committer,
		catalog.New(secStore),
		false,
	)
}

func TestProcessEndToEnd(t *testing.T) {
	ctx := context.Background()

	content := []byte("tiktok video bytes")
	r := &stubResolver{
		md: &media.Metadata{
			Title:    "Demo",
			Platform: media.PlatformTikTok,
			Author:   "demo",
		},
		direct: media.DirectURL{URL: "https://cdn/video.mp4", Filename: "demo.mp4"},
	}
	committer := &stubCommitter{assetID: "asset-42"}

	svc := newTestService(t, r, committer, content)

	var percentages []float64
	video, err := svc.Process(ctx,
		"https://www.tiktok.com/@demo/video/7000000000000000000",
		func(p media.Progress) { percentages = append(percentages, p.Percentage) },
	)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 50, 100}, percentages)
	require.Equal(t, "asset-42", video.ID)
	require.Equal(t, int64(len(content)), video.FileSize)
	require.Equal(t, media.PlatformTikTok, video.Metadata.Platform)
	require.Equal(t, "https://www.tiktok.com/@demo/video/7000000000000000000", video.Metadata.URL)

	videos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, *video, videos[0])
}

func TestResolveRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t, &stubResolver{md: &media.Metadata{}}, &stubCommitter{}, nil)

	_, err := svc.Resolve(context.Background(), "no links here")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Resolve(context.Background(), "https://example.com/not-a-video")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestResolveExtractsFromSharedText(t *testing.T) {
	r := &stubResolver{md: &media.Metadata{Title: "Demo", Platform: media.PlatformInstagram}}
	svc := newTestService(t, r, &stubCommitter{}, nil)

	md, err := svc.Resolve(context.Background(), "Look at this https://www.instagram.com/reel/ABC123/?igsh=track me")
	require.NoError(t, err)

	// Tracking query is stripped before the resolver sees the url.
	require.Equal(t, "https://www.instagram.com/reel/ABC123/", md.URL)
}

func TestDownloadPermissionRequiredPassesThrough(t *testing.T) {
	r := &stubResolver{
		md:     &media.Metadata{Title: "Demo", Platform: media.PlatformTikTok},
		direct: media.DirectURL{URL: "https://cdn/video.mp4"},
	}
	svc := newTestService(t, r, &stubCommitter{commitErr: common.ErrPermissionRequired}, []byte("x"))

	md := media.Metadata{URL: "https://vt.tiktok.com/XYZ/", Title: "Demo"}

	_, err := svc.Download(context.Background(), &md, func(media.Progress) {})
	require.ErrorIs(t, err, common.ErrPermissionRequired)

	// Nothing was cataloged.
	videos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, videos)
}

func TestRemoveStrictPolicy(t *testing.T) {
	ctx := context.Background()

	r := &stubResolver{
		md:     &media.Metadata{Title: "Demo", Platform: media.PlatformTikTok},
		direct: media.DirectURL{URL: "https://cdn/video.mp4"},
	}
	committer := &stubCommitter{assetID: "asset-1"}
	svc := newTestService(t, r, committer, []byte("x"))

	_, err := svc.Process(ctx, "https://vt.tiktok.com/XYZ/", func(media.Progress) {})
	require.NoError(t, err)

	// Physical deletion fails: the entry must survive.
	committer.deleteErr = errors.New("device busy")
	require.Error(t, svc.Remove(ctx, "asset-1"))

	videos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)

	// Physical deletion succeeds: the entry goes.
	committer.deleteErr = nil
	require.NoError(t, svc.Remove(ctx, "asset-1"))

	videos, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, videos)
	require.Equal(t, []string{"asset-1"}, committer.deleted)
}
