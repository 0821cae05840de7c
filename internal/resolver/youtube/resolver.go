// Package youtube resolves YouTube links locally via the innertube client,
// no backend round trip needed.
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/linkcheck"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
	"github.com/kkdai/youtube/v2"
)

type Resolver struct {
	client *youtube.Client
}

func New(client *http.Client) *Resolver {
	return &Resolver{
		client: &youtube.Client{
			HTTPClient: client,
		},
	}
}

func (r *Resolver) Valid(url string) bool {
	return linkcheck.IsYouTubeURL(url)
}

func (r *Resolver) Resolve(ctx context.Context, url string) (*media.Metadata, error) {
	if url == "" {
		return nil, common.ErrInvalidInput
	}

	video, err := r.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	thumbnail := ""
	if len(video.Thumbnails) > 0 {
		// The list is ordered smallest first.
		thumbnail = video.Thumbnails[len(video.Thumbnails)-1].URL
	}

	return &media.Metadata{
		URL:       url,
		Title:     utils.StringNotEmptyCoalesce(video.Title, "Video"),
		Thumbnail: thumbnail,
		Duration:  int(video.Duration / time.Second),
		Platform:  media.PlatformYouTube,
		Author:    utils.StringNotEmptyCoalesce(video.Author, "Unknown"),
		Uploader:  video.Author,
	}, nil
}

func (r *Resolver) DirectURL(ctx context.Context, url string) (media.DirectURL, error) {
	if url == "" {
		return media.DirectURL{}, common.ErrInvalidInput
	}

	video, err := r.client.GetVideoContext(ctx, url)
	if err != nil {
		return media.DirectURL{}, fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	formats := video.Formats.WithAudioChannels().Type("video/mp4")
	if len(formats) == 0 {
		return media.DirectURL{}, common.ErrNoDirectURL
	}

	streamURL, err := r.client.GetStreamURLContext(ctx, video, &formats[0])
	if err != nil {
		return media.DirectURL{}, fmt.Errorf("%w: %v", common.ErrNoDirectURL, err)
	}

	return media.DirectURL{
		URL:      streamURL,
		Filename: video.ID + ".mp4",
		Filesize: formats[0].ContentLength,
	}, nil
}
