// Package securestore is the local secure storage of the app: a small
// key-value store of AES-256-GCM encrypted files. It holds the downloads
// catalog and the library folder grant.
package securestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Store is a minimal key-value secure storage. Get on a missing key returns
// (nil, nil). Set must be all-or-nothing: a reader never observes a partial
// value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var (
	ErrBadKey     = errors.New("invalid store key")
	ErrDecryption = errors.New("decryption failed")
)

var keyRe = regexp.MustCompile(`^[\w.-]+$`)

// FileStore keeps one encrypted file per key under dir. Values are sealed
// with a key derived from the passphrase (see cipher.go for the format).
type FileStore struct {
	dir        string
	passphrase string
}

func NewFileStore(dir, passphrase string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir %s: %w", dir, err)
	}

	return &FileStore{dir: dir, passphrase: passphrase}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrBadKey, key)
	}

	return filepath.Join(s.dir, key+".bin"), nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	sealed, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	value, err := decrypt(s.passphrase, sealed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return value, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	sealed, err := encrypt(s.passphrase, value)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}

	// Temp file + rename keeps the write atomic on the same filesystem.
	tmp, err := os.CreateTemp(s.dir, key+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}
