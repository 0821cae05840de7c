// Package store moves a transient downloaded file into durable storage and
// deletes committed assets. Two strategies implement the same contract: a
// user-granted folder (the default) and an id-keyed media library.
package store

import (
	"context"
	"strings"

	"github.com/StounhandJ/vidsaver/internal/fetcher"
	"github.com/StounhandJ/vidsaver/internal/media"
)

type Committer interface {
	// Commit makes the transient file durable and returns the catalog
	// record. On success the transient file is gone; on failure it is left
	// in place so the byte transfer is not lost.
	Commit(ctx context.Context, transientPath string, md media.Metadata) (*media.DownloadedVideo, error)

	// Delete removes the physical asset behind a DownloadedVideo id. An
	// already-missing asset counts as deleted.
	Delete(ctx context.Context, id string) error
}

// safeTitle reduces a video title to a short filename stem.
func safeTitle(title string) string {
	name := fetcher.SanitizeFilename(title)
	if len(name) > 50 {
		name = name[:50]
	}

	name = strings.Trim(name, "_")
	if name == "" {
		name = "video"
	}

	return name
}
