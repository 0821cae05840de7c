// Package fetcher turns a direct byte-serving URL into a transient local
// file, reporting progress along the way. The transient file lives in a
// private temp directory until the committer moves it to durable storage.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
)

// ProgressFunc receives one snapshot per chunk written. Values are
// non-decreasing in well-behaved transfers; no hard guarantee if the server
// resets totals mid-transfer.
type ProgressFunc func(media.Progress)

type Fetcher struct {
	client  *http.Client
	tempDir string
}

func New(client *http.Client, tempDir string) *Fetcher {
	if tempDir == "" {
		tempDir = filepath.Join(os.TempDir(), "vidsaver")
	}

	return &Fetcher{client: client, tempDir: tempDir}
}

// Fetch downloads directURL into the transient directory under the given
// (already suggested, not yet sanitized) filename and returns the local
// path. Any pre-existing file at the target is removed first so a retry
// never resumes a stale partial transfer.
func (f *Fetcher) Fetch(ctx context.Context, directURL, filename string, onProgress ProgressFunc) (string, error) {
	if directURL == "" {
		return "", common.ErrNoDirectURL
	}

	if err := os.MkdirAll(f.tempDir, 0o700); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}

	target := filepath.Join(f.tempDir, SanitizeFilename(filename))

	// Idempotent cleanup of an earlier attempt.
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, directURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", common.ErrDownloadFailed, resp.StatusCode)
	}

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	counter := &progressWriter{total: total, onProgress: onProgress}

	_, err = io.Copy(io.MultiWriter(out, counter), resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		os.Remove(target)

		return "", fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
	}

	utils.Log.Debugf("downloaded %s to %s", directURL, target)

	return target, nil
}

type progressWriter struct {
	total      int64
	written    int64
	onProgress ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))

	if w.onProgress != nil {
		progress := media.Progress{
			TotalBytes:      w.total,
			DownloadedBytes: w.written,
		}
		if w.total > 0 {
			progress.Percentage = float64(w.written) / float64(w.total) * 100
		}

		w.onProgress(progress)
	}

	return len(p), nil
}
