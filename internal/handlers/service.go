// Package handlers orchestrates one user action end to end: classify the
// input, resolve metadata, download with progress, commit to durable
// storage, record in the catalog. Each step's output is the next step's
// input; there is no queue and no automatic retry.
package handlers

import (
	"context"
	"fmt"

	"github.com/StounhandJ/vidsaver/internal/catalog"
	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/fetcher"
	"github.com/StounhandJ/vidsaver/internal/linkcheck"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/resolver"
	"github.com/StounhandJ/vidsaver/internal/store"
	"github.com/StounhandJ/vidsaver/internal/utils"
)

// Downloader is the byte-pulling part of the pipeline, satisfied by
// *fetcher.Fetcher.
type Downloader interface {
	Fetch(ctx context.Context, directURL, filename string, onProgress fetcher.ProgressFunc) (string, error)
}

type Service struct {
	resolvers  []resolver.IResolver
	fetcher    Downloader
	committer  store.Committer
	catalog    *catalog.Catalog
	slot       *fetcher.Slot
	permissive bool
}

func NewService(
	resolvers []resolver.IResolver,
	fetch Downloader,
	committer store.Committer,
	cat *catalog.Catalog,
	permissive bool,
) *Service {
	return &Service{
		resolvers:  resolvers,
		fetcher:    fetch,
		committer:  committer,
		catalog:    cat,
		slot:       fetcher.NewSlot(),
		permissive: permissive,
	}
}

// Resolve extracts a video URL out of shared free text, validates it and
// fetches display metadata. It is independent from Download so the caller
// decides between manual and automatic sequencing.
func (s *Service) Resolve(ctx context.Context, text string) (*media.Metadata, error) {
	url := linkcheck.ExtractURLFromText(text)
	if url == "" {
		return nil, fmt.Errorf("%w: no url found in input", common.ErrInvalidInput)
	}

	if !linkcheck.IsValidVideoURL(url, s.permissive) {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidInput, url)
	}

	r, err := resolver.Pick(s.resolvers, url)
	if err != nil {
		return nil, err
	}

	md, err := r.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}

	utils.Log.Debugf("resolved %s: %q by %s (%s)", url, md.Title, md.Author, md.Platform)

	return md, nil
}

// Download runs the acquisition pipeline for already-resolved metadata:
// direct URL, byte transfer, durable commit, catalog entry. The download
// claims the single attempt slot, superseding any in-flight attempt.
// ErrPermissionRequired passes through untouched so the caller can run a
// grant flow and call Download again.
func (s *Service) Download(ctx context.Context, md *media.Metadata, onProgress fetcher.ProgressFunc) (*media.DownloadedVideo, error) {
	r, err := resolver.Pick(s.resolvers, md.URL)
	if err != nil {
		return nil, err
	}

	direct, err := r.DirectURL(ctx, md.URL)
	if err != nil {
		return nil, err
	}

	ctx, onProgress = s.slot.Start(ctx, onProgress)

	transientPath, err := s.fetcher.Fetch(ctx, direct.URL, direct.Filename, onProgress)
	if err != nil {
		return nil, err
	}

	video, err := s.committer.Commit(ctx, transientPath, *md)
	if err != nil {
		return nil, err
	}

	// The operation is complete only once the catalog knows the asset.
	if err := s.catalog.Add(ctx, *video); err != nil {
		return nil, err
	}

	return video, nil
}

// Process is the shared-text flow: resolve, then download immediately.
func (s *Service) Process(ctx context.Context, text string, onProgress fetcher.ProgressFunc) (*media.DownloadedVideo, error) {
	md, err := s.Resolve(ctx, text)
	if err != nil {
		return nil, err
	}

	return s.Download(ctx, md, onProgress)
}

// Remove deletes a downloaded video under the strict policy: the physical
// asset goes first, and the catalog entry is dropped only when that
// succeeded. A failed physical delete leaves the entry in place.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.committer.Delete(ctx, id); err != nil {
		return err
	}

	return s.catalog.Remove(ctx, id)
}

// List returns the catalog, newest first.
func (s *Service) List(ctx context.Context) ([]media.DownloadedVideo, error) {
	return s.catalog.List(ctx)
}
