// Package tikwm resolves TikTok links through the public tikwm.com API.
// One round trip answers both metadata and the direct play URL, so there is
// no indirection step here.
package tikwm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/linkcheck"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
)

type Resolver struct {
	client  *http.Client
	baseURL string
}

func New(client *http.Client) *Resolver {
	return NewWithBaseURL(client, DefaultBaseURL)
}

func NewWithBaseURL(client *http.Client, baseURL string) *Resolver {
	return &Resolver{client: client, baseURL: baseURL}
}

func (r *Resolver) Valid(url string) bool {
	return linkcheck.IsTikTokURL(url)
}

func (r *Resolver) Resolve(ctx context.Context, url string) (*media.Metadata, error) {
	if url == "" {
		return nil, common.ErrInvalidInput
	}

	data, err := fetchMetadata(ctx, r.client, r.baseURL, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	return &media.Metadata{
		URL:       url,
		Title:     utils.StringNotEmptyCoalesce(data.Data.Title, "Video"),
		Thumbnail: utils.StringNotEmptyCoalesce(data.Data.OriginCover, data.Data.Cover),
		Duration:  data.Data.Duration,
		Platform:  media.PlatformTikTok,
		Author:    utils.StringNotEmptyCoalesce(data.Data.Author.Nickname, data.Data.Author.UniqueID, "Unknown"),
		Uploader:  data.Data.Author.UniqueID,
		Filesize:  pickSize(data),
	}, nil
}

// DirectURL prefers the HD rendition, then the clean one, then watermarked.
func (r *Resolver) DirectURL(ctx context.Context, url string) (media.DirectURL, error) {
	if url == "" {
		return media.DirectURL{}, common.ErrInvalidInput
	}

	data, err := fetchMetadata(ctx, r.client, r.baseURL, url)
	if err != nil {
		return media.DirectURL{}, fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	playURL := utils.StringNotEmptyCoalesce(data.Data.Hdplay, data.Data.Play, data.Data.Wmplay)
	if playURL == "" {
		return media.DirectURL{}, common.ErrNoDirectURL
	}

	filename := data.Data.ID
	if filename != "" {
		filename += ".mp4"
	}

	return media.DirectURL{
		URL:      playURL,
		Filename: filename,
		Filesize: pickSize(data),
	}, nil
}

func pickSize(data apiResponse) int64 {
	if data.Data.Hdplay != "" && data.Data.HdSize > 0 {
		return data.Data.HdSize
	}

	return data.Data.Size
}
