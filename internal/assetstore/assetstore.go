// Package assetstore implements the object-storage contract for project
// images: write-once uploads keyed by
// "projects/<associated-id-or-placeholder>/<timestamp>_<filename>", publicly
// resolvable URLs, and delete-by-URL.
package assetstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store defines the object-storage contract consumed by the image service
type Store interface {
	// Upload persists the content under the given key and returns its
	// publicly resolvable URL
	Upload(ctx context.Context, key string, content io.Reader) (string, error)

	// Delete removes the asset the URL points to
	Delete(ctx context.Context, url string) error

	// Owns reports whether the URL points into this store; foreign URLs
	// (data URIs, external hosts) must never be deleted through it
	Owns(url string) bool
}

// BuildKey derives the upload key for a project image. The millisecond
// timestamp avoids collisions between uploads of the same filename; it does
// not make them impossible.
func BuildKey(associatedID, filename string) string {
	if associatedID == "" {
		associatedID = "unassigned-" + uuid.New().String()[:8]
	}
	return fmt.Sprintf("projects/%s/%d_%s", associatedID, time.Now().UnixMilli(), filepath.Base(filename))
}

// DiskStore is a disk-backed implementation serving assets from a base URL
type DiskStore struct {
	baseDir string
	baseURL string
	log     zerolog.Logger
}

// NewDiskStore creates a store rooted at baseDir, with uploads resolvable
// under baseURL
func NewDiskStore(baseDir, baseURL string, log zerolog.Logger) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With().Str("component", "assetstore").Logger(),
	}
}

// Upload writes the content under the key and returns its public URL
func (s *DiskStore) Upload(ctx context.Context, key string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write asset: %w", err)
	}

	url := s.baseURL + "/" + key
	s.log.Debug().Str("key", key).Msg("Asset uploaded")
	return url, nil
}

// Delete removes the asset the URL points to
func (s *DiskStore) Delete(ctx context.Context, url string) error {
	if !s.Owns(url) {
		return fmt.Errorf("url does not belong to this store: %s", url)
	}

	key := strings.TrimPrefix(strings.TrimPrefix(url, s.baseURL), "/")
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))

	// Refuse anything that escapes the base directory
	if rel, err := filepath.Rel(s.baseDir, path); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid asset key: %s", key)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.log.Debug().Str("key", key).Msg("Asset deleted")
	return nil
}

// Owns reports whether the URL points into this store
func (s *DiskStore) Owns(url string) bool {
	return strings.HasPrefix(url, s.baseURL+"/")
}
