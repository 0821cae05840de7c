// Package catalog persists the list of completed downloads as one JSON
// collection under a fixed secure-store key, newest first.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/securestore"
	"github.com/StounhandJ/vidsaver/internal/utils"
)

const storageKey = "downloaded_videos"

type Catalog struct {
	store securestore.Store
}

func New(store securestore.Store) *Catalog {
	return &Catalog{store: store}
}

// List returns the persisted downloads, newest first. A missing key or an
// undecodable payload yields an empty list, not an error: the catalog must
// stay readable across schema changes and a corrupt blob should not brick
// the app. Entries written by older versions may lack fields like fileSize;
// json decoding defaults them.
func (c *Catalog) List(ctx context.Context) ([]media.DownloadedVideo, error) {
	raw, err := c.store.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if len(raw) == 0 {
		return []media.DownloadedVideo{}, nil
	}

	var videos []media.DownloadedVideo
	if err := json.Unmarshal(raw, &videos); err != nil {
		utils.Log.Errorf("catalog payload is not decodable, treating as empty: %v", err)

		return []media.DownloadedVideo{}, nil
	}

	return videos, nil
}

// Add prepends the video and rewrites the whole collection. Atomicity of
// the write is the secure store's problem.
func (c *Catalog) Add(ctx context.Context, video media.DownloadedVideo) error {
	videos, err := c.List(ctx)
	if err != nil {
		return err
	}

	return c.persist(ctx, append([]media.DownloadedVideo{video}, videos...))
}

// Remove drops the entry with the given id. A missing id is a no-op: the
// physical asset is already gone by the time this runs (strict delete
// policy lives in the pipeline, not here).
func (c *Catalog) Remove(ctx context.Context, id string) error {
	videos, err := c.List(ctx)
	if err != nil {
		return err
	}

	kept := videos[:0]
	for _, v := range videos {
		if v.ID != id {
			kept = append(kept, v)
		}
	}

	return c.persist(ctx, kept)
}

// Find does a linear scan by id; the collection is small by design.
func (c *Catalog) Find(ctx context.Context, id string) (media.DownloadedVideo, bool, error) {
	videos, err := c.List(ctx)
	if err != nil {
		return media.DownloadedVideo{}, false, err
	}

	for _, v := range videos {
		if v.ID == id {
			return v, true, nil
		}
	}

	return media.DownloadedVideo{}, false, nil
}

func (c *Catalog) persist(ctx context.Context, videos []media.DownloadedVideo) error {
	raw, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := c.store.Set(ctx, storageKey, raw); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	return nil
}
