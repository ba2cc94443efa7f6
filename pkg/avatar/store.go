package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/fairfinder/fair-finder/internal/errdef"
)

// Store keeps uploaded avatars by file name.
type Store interface {
	Save(ctx context.Context, filename string, body io.Reader, contentType string) error
	// Open copies the avatar to dst. cb is called with its size and content type before any bytes
	// are written.
	Open(ctx context.Context, filename string, dst io.Writer, cb func(contentLength int64, contentType string)) error
	Delete(ctx context.Context, filename string) error
}

// NewDiskStore returns a Store writing to directory. The directory is created if missing.
func NewDiskStore(logger *slog.Logger, directory string) (*DiskStore, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create avatar directory %q: %v", directory, err)
	}
	return &DiskStore{logger: logger, directory: directory}, nil
}

type DiskStore struct {
	logger    *slog.Logger
	directory string
}

func (d DiskStore) Save(ctx context.Context, filename string, body io.Reader, _ string) error {
	name := filepath.Join(d.directory, filename)
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create avatar %q: %v", filename, err)
	}

	_, err = io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("failed to write avatar %q: %v", filename, err)
	}

	d.logger.InfoContext(ctx, "Stored avatar", "file", name)
	return nil
}

func (d DiskStore) Open(_ context.Context, filename string, dst io.Writer, cb func(contentLength int64, contentType string)) error {
	file, err := os.Open(filepath.Join(d.directory, filename))
	if errors.Is(err, os.ErrNotExist) {
		return errdef.NewNotFound("avatar %q not found", filename)
	}
	if err != nil {
		return fmt.Errorf("failed to open avatar %q: %v", filename, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat avatar %q: %v", filename, err)
	}

	cb(info.Size(), mime.TypeByExtension(path.Ext(filename)))

	_, err = io.Copy(dst, file)
	return err
}

func (d DiskStore) Delete(_ context.Context, filename string) error {
	err := os.Remove(filepath.Join(d.directory, filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete avatar %q: %v", filename, err)
	}
	return nil
}

func NewS3Store(client s3Client, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

type s3Client interface {
	Upload(ctx context.Context, bucket string, key string, body io.Reader, contentType string) error
	Download(ctx context.Context, bucket string, key string, dst io.Writer, cb func(contentLength int64, contentType string)) error
	Delete(ctx context.Context, bucket string, key string) error
}

// S3Store keeps avatars in a bucket under the "avatars/" prefix.
type S3Store struct {
	client s3Client
	bucket string
}

func (s S3Store) Save(ctx context.Context, filename string, body io.Reader, contentType string) error {
	return s.client.Upload(ctx, s.bucket, key(filename), body, contentType)
}

func (s S3Store) Open(ctx context.Context, filename string, dst io.Writer, cb func(contentLength int64, contentType string)) error {
	return s.client.Download(ctx, s.bucket, key(filename), dst, cb)
}

func (s S3Store) Delete(ctx context.Context, filename string) error {
	return s.client.Delete(ctx, s.bucket, key(filename))
}

func key(filename string) string {
	return "avatars/" + filename
}

// List returns the names of all stored avatars.
func (d DiskStore) List() ([]string, error) {
	entries, err := os.ReadDir(d.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list avatars in %q: %v", d.directory, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && validName(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Copy copies every avatar of from into to, keeping names, and returns how many were copied.
func Copy(ctx context.Context, logger *slog.Logger, from *DiskStore, to Store) (int, error) {
	names, err := from.List()
	if err != nil {
		return 0, err
	}

	for i, name := range names {
		var buf bytes.Buffer
		var contentType string
		err := from.Open(ctx, name, &buf, func(_ int64, t string) {
			contentType = t
		})
		if err != nil {
			return i, err
		}

		if err := to.Save(ctx, name, &buf, contentType); err != nil {
			return i, err
		}
		logger.InfoContext(ctx, "Copied avatar", "file", name)
	}

	return len(names), nil
}
