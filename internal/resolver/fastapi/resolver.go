// Package fastapi talks to the hosted resolution backend. The backend does
// the actual extraction (yt-dlp and friends) and serves three endpoints:
// metadata, direct-url and a thumbnail proxy.
package fastapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	netUrl "net/url"
	"strings"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/linkcheck"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const DefaultBaseURL = "https://fastapi-u8bm.onrender.com"

type Resolver struct {
	client  *http.Client
	baseURL string
}

func New(client *http.Client, baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Resolver{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Valid accepts any http(s) URL: the backend resolves arbitrary sources, so
// this resolver is registered last as the catch-all.
func (r *Resolver) Valid(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func (r *Resolver) Resolve(ctx context.Context, url string) (*media.Metadata, error) {
	if url == "" {
		return nil, common.ErrInvalidInput
	}

	var resp metadataResponse
	if err := r.post(ctx, "/api/metadata", url, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, apiError(resp.Error, resp.Detail)
	}

	data := resp.Data

	return &media.Metadata{
		URL:       url,
		Title:     utils.StringNotEmptyCoalesce(data.Title, "Video"),
		Thumbnail: r.ThumbnailURL(data.Thumbnail),
		Duration:  data.Duration,
		Platform:  linkcheck.MapPlatform(data.Platform),
		Author:    utils.StringNotEmptyCoalesce(data.Uploader, "Unknown"),
		Uploader:  data.Uploader,
		Filesize:  data.Filesize,
	}, nil
}

func (r *Resolver) DirectURL(ctx context.Context, url string) (media.DirectURL, error) {
	if url == "" {
		return media.DirectURL{}, common.ErrInvalidInput
	}

	var resp directURLResponse
	if err := r.post(ctx, "/api/get-direct-url", url, &resp); err != nil {
		return media.DirectURL{}, err
	}

	if !resp.Success {
		return media.DirectURL{}, apiError(resp.Error, resp.Detail)
	}

	if resp.Data.DirectURL == "" {
		return media.DirectURL{}, common.ErrNoDirectURL
	}

	return media.DirectURL{
		URL:       resp.Data.DirectURL,
		Filename:  resp.Data.Filename,
		Filesize:  resp.Data.Filesize,
		ExpiresIn: resp.Data.ExpiresIn,
	}, nil
}

// ThumbnailURL wraps a provider thumbnail into the backend's proxy so it
// loads without cross-origin restrictions. Empty in, empty out.
func (r *Resolver) ThumbnailURL(thumbnailURL string) string {
	if thumbnailURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/api/thumbnail?url=%s", r.baseURL, netUrl.QueryEscape(thumbnailURL))
}

func (r *Resolver) post(ctx context.Context, endpoint, url string, out easyjson.Unmarshaler) error {
	body, err := easyjson.Marshal(apiRequest{URL: url})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrResolutionFailed, err)
	}

	if err := easyjson.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: malformed response", common.ErrResolutionFailed)
	}

	return nil
}

// apiError surfaces the backend's own message when it sent one.
func apiError(errMsg, detail string) error {
	if msg := utils.StringNotEmptyCoalesce(errMsg, detail); msg != "" {
		return fmt.Errorf("%w: %s", common.ErrResolutionFailed, msg)
	}

	return common.ErrResolutionFailed
}
