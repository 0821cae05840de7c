package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
	"github.com/google/uuid"
)

// Library is the gallery-style strategy: committed assets get an opaque
// generated id and live in one app-managed directory. The id, not the path,
// is the stable reference.
type Library struct {
	dir string
}

func NewLibrary(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create library dir %s: %w", dir, err)
	}

	return &Library{dir: dir}, nil
}

func (l *Library) Commit(ctx context.Context, transientPath string, md media.Metadata) (*media.DownloadedVideo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(transientPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCommitFailed, err)
	}

	id := uuid.NewString()
	target := l.assetPath(id)

	if err := copyFile(transientPath, target); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCommitFailed, err)
	}

	if err := os.Remove(transientPath); err != nil {
		utils.Log.Errorf("failed to remove transient file %s: %v", transientPath, err)
	}

	return &media.DownloadedVideo{
		ID:           id,
		Metadata:     md,
		LocalURI:     target,
		DownloadedAt: time.Now().UnixMilli(),
		FileSize:     info.Size(),
	}, nil
}

func (l *Library) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(l.assetPath(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", common.ErrDeleteFailed, err)
	}

	return nil
}

func (l *Library) assetPath(id string) string {
	return filepath.Join(l.dir, id+".mp4")
}
