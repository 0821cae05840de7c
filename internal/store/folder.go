package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/securestore"
	"github.com/StounhandJ/vidsaver/internal/utils"
)

const (
	folderTokenKey = "saf_folder_uri"

	// Name of the dedicated subfolder created inside the granted directory.
	appFolderName = "VidSaver"
)

// Folder commits downloads into a user-granted directory. The grant is a
// one-time act: once resolved, the folder path is persisted in the secure
// store and reused until a storage operation fails or the token is wiped.
// Permission state is explicit here, there is no lazy prompt hidden in a
// getter: callers see ErrPermissionRequired and decide how to obtain a
// grant.
type Folder struct {
	store securestore.Store
}

func NewFolder(store securestore.Store) *Folder {
	return &Folder{store: store}
}

// Token returns the cached folder grant, "" when none exists.
func (f *Folder) Token(ctx context.Context) (string, error) {
	raw, err := f.store.Get(ctx, folderTokenKey)
	if err != nil {
		return "", fmt.Errorf("read folder token: %w", err)
	}

	return string(raw), nil
}

// EnsurePermission resolves and persists the library folder. A cached token
// wins. Otherwise grantDir is the directory the user just granted: we try
// to create the app subfolder inside it, on failure we look for an existing
// one by name, and as a last resort use the granted directory itself. With
// no cached token and no grant the caller gets ErrPermissionRequired.
func (f *Folder) EnsurePermission(ctx context.Context, grantDir string) (string, error) {
	token, err := f.Token(ctx)
	if err != nil {
		return "", err
	}

	if token != "" {
		return token, nil
	}

	if grantDir == "" {
		return "", common.ErrPermissionRequired
	}

	final := filepath.Join(grantDir, appFolderName)

	if err := os.Mkdir(final, 0o755); err != nil {
		utils.Log.Debugf("app folder creation failed (likely exists): %v", err)

		final = findAppFolder(grantDir)
	}

	if err := f.store.Set(ctx, folderTokenKey, []byte(final)); err != nil {
		return "", fmt.Errorf("persist folder token: %w", err)
	}

	return final, nil
}

// findAppFolder scans the granted directory for an existing app subfolder,
// falling back to the granted directory itself.
func findAppFolder(grantDir string) string {
	entries, err := os.ReadDir(grantDir)
	if err != nil {
		utils.Log.Errorf("failed to search for existing app folder: %v", err)

		return grantDir
	}

	for _, e := range entries {
		if e.IsDir() && e.Name() == appFolderName {
			return filepath.Join(grantDir, appFolderName)
		}
	}

	return grantDir
}

func (f *Folder) Commit(ctx context.Context, transientPath string, md media.Metadata) (*media.DownloadedVideo, error) {
	folder, err := f.Token(ctx)
	if err != nil {
		return nil, err
	}

	if folder == "" {
		return nil, common.ErrPermissionRequired
	}

	now := time.Now()
	target := filepath.Join(folder, fmt.Sprintf("%s_%d.mp4", safeTitle(md.Title), now.UnixMilli()))

	// Size comes from the transient file before any cleanup.
	info, err := os.Stat(transientPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCommitFailed, err)
	}

	if err := copyFile(transientPath, target); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCommitFailed, err)
	}

	// Durable now; drop the transient copy so the asset is stored once.
	if err := os.Remove(transientPath); err != nil {
		utils.Log.Errorf("failed to remove transient file %s: %v", transientPath, err)
	}

	return &media.DownloadedVideo{
		ID:           target,
		Metadata:     md,
		LocalURI:     target,
		DownloadedAt: now.UnixMilli(),
		FileSize:     info.Size(),
	}, nil
}

// Delete removes the committed file. The id of this strategy is the file
// path itself; an already-missing file is fine.
func (f *Folder) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(id); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", common.ErrDeleteFailed, err)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if err := in.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)

		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)

		return err
	}

	return nil
}
