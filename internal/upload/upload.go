// Package upload stores branding files (logo, favicon) on the local disk.
//
// Files get a random name and are referenced by that name only; the reference is what
// the settings store persists.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sitesettings/sitesettings/internal/config"
)

var (
	// ErrExtension is returned for files whose extension is not an accepted image type.
	ErrExtension = errors.New("file type is not allowed")
	// ErrTooLarge is returned when a file exceeds the configured size.
	ErrTooLarge = errors.New("file is too large")
	// ErrEmpty is returned for zero byte uploads.
	ErrEmpty = errors.New("file is empty")
	// ErrInvalidReference is returned for references not produced by Save.
	ErrInvalidReference = errors.New("invalid file reference")
)

// allowedExtensions are the image types accepted for logo and favicon.
var allowedExtensions = map[string]bool{ //nolint:gochecknoglobals
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".ico":  true,
	".webp": true,
}

// Local is a file store inside one directory.
type Local struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

// NewLocal creates the upload directory if needed and returns the store.
func NewLocal(cfg config.Upload) (*Local, error) {
	if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint:mnd
		return nil, fmt.Errorf("create upload directory %s: %w", cfg.Path, err)
	}

	return &Local{
		dir:       cfg.Path,
		urlPrefix: strings.TrimRight(cfg.URLPrefix, "/"),
		maxSize:   cfg.MaxSize,
	}, nil
}

// Dir returns the directory files are stored in.
func (l *Local) Dir() string {
	return l.dir
}

// Save copies the uploaded file into the store and returns its reference "<uuid><ext>".
func (l *Local) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrExtension, ext)
	}

	if fh.Size == 0 {
		return "", ErrEmpty
	}

	if l.maxSize > 0 && fh.Size > l.maxSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, fh.Size, l.maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ref := uuid.NewString() + ext
	target := filepath.Join(l.dir, ref)

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640) //nolint:mnd
	if err != nil {
		return "", fmt.Errorf("create %s: %w", ref, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(target)

		return "", fmt.Errorf("write %s: %w", ref, err)
	}

	if err = dst.Close(); err != nil {
		_ = os.Remove(target)

		return "", fmt.Errorf("close %s: %w", ref, err)
	}

	return ref, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (l *Local) Remove(ref string) error {
	if err := checkReference(ref); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(l.dir, ref)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", ref, err)
	}

	return nil
}

// URL returns the public URL path of a reference, or "" for an empty reference.
func (l *Local) URL(ref string) string {
	if ref == "" {
		return ""
	}

	return path.Join(l.urlPrefix, ref)
}

// checkReference accepts plain file names only.
func checkReference(ref string) error {
	if ref == "" || ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	return nil
}
