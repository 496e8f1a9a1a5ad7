package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/project-showcase-api/internal/apperr"
	"github.com/project-showcase-api/internal/assetstore"
	"github.com/project-showcase-api/internal/config"
	"github.com/rs/zerolog"
)

// verifyTimeout is the shorter wait budget for storage connectivity checks
const verifyTimeout = 10 * time.Second

// imageService validates and persists project images through one of two
// mutually exclusive paths: object storage (public URL) or an in-record
// base64 data URI.
type imageService struct {
	assets assetstore.Store
	cfg    *config.UploadConfig
	log    zerolog.Logger
}

func newImageService(assets assetstore.Store, cfg *config.UploadConfig, log zerolog.Logger) *imageService {
	return &imageService{
		assets: assets,
		cfg:    cfg,
		log:    log.With().Str("component", "image_service").Logger(),
	}
}

// UploadRemote validates the image and uploads it to object storage, racing
// the upload against the configured wait budget. Losing the race abandons
// the wait only; the upload itself runs to completion and may persist an
// asset nothing references.
func (s *imageService) UploadRemote(ctx context.Context, filename string, size int64, content []byte, associatedID string) (string, error) {
	if err := validateImage(filename, size, content, s.cfg.MaxRemoteSize); err != nil {
		return "", err
	}

	key := assetstore.BuildKey(associatedID, filename)

	type result struct {
		url string
		err error
	}
	done := make(chan result, 1)

	// Deliberately not the request context: a timed-out or disconnected
	// caller does not cancel the upload.
	go func() {
		url, err := s.assets.Upload(context.Background(), key, bytes.NewReader(content))
		done <- result{url: url, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", s.classifyUploadError(res.err)
		}
		s.log.Info().Str("key", key).Int64("size_bytes", size).Msg("Image uploaded")
		return res.url, nil

	case <-time.After(s.cfg.Timeout):
		go func() {
			res := <-done
			if res.err != nil {
				s.log.Warn().Err(res.err).Str("key", key).Msg("Abandoned upload failed")
				return
			}
			s.log.Warn().Str("key", key).Str("url", res.url).Msg("Abandoned upload completed, asset may be orphaned")
		}()
		return "", fmt.Errorf("upload of %s: %w", filename, apperr.ErrTimeout)
	}
}

// UploadLocal validates the image and encodes it as a base64 data URI. The
// stricter size cap bounds in-record growth; no network or storage I/O.
func (s *imageService) UploadLocal(filename string, size int64, content []byte) (string, error) {
	if err := validateImage(filename, size, content, s.cfg.MaxLocalSize); err != nil {
		return "", err
	}

	mime := mimetype.Detect(content)
	uri := "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(content)

	s.log.Debug().Str("filename", filename).Int64("size_bytes", size).Msg("Image encoded as data URI")
	return uri, nil
}

// VerifyStorage uploads and deletes a small probe object under the tighter
// connectivity-check budget
func (s *imageService) VerifyStorage(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	key := assetstore.BuildKey("", "probe.txt")
	url, err := s.assets.Upload(ctx, key, strings.NewReader("ok"))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperr.ErrTimeout
		}
		return s.classifyUploadError(err)
	}

	if err := s.assets.Delete(ctx, url); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to remove storage probe")
	}
	return nil
}

// validateImage runs the pre-I/O gates: size first (before any read of the
// content), then a content sniff for an image media type
func validateImage(filename string, size int64, content []byte, maxSize int64) error {
	if size <= 0 {
		return apperr.Validation("file", "file is empty")
	}
	if size > maxSize {
		return apperr.Validation("file", fmt.Sprintf("file exceeds %d MiB limit", maxSize/(1024*1024)))
	}

	mime := mimetype.Detect(content)
	if !strings.HasPrefix(mime.String(), "image/") {
		return apperr.Validation("file", fmt.Sprintf("%s is not an image (detected %s)", filename, mime.String()))
	}
	return nil
}

// classifyUploadError maps a storage error onto the upload failure taxonomy
func (s *imageService) classifyUploadError(err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return apperr.UploadFailed(apperr.UploadUnauthorized, err)
	case errors.Is(err, fs.ErrNotExist):
		return apperr.UploadFailed(apperr.UploadNotFound, err)
	case errors.Is(err, syscall.ENOSPC):
		return apperr.UploadFailed(apperr.UploadQuotaExceeded, err)
	default:
		return apperr.UploadFailed(apperr.UploadUnknown, err)
	}
}
