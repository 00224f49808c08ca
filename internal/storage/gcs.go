package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// FileStore is the external file-storage collaborator: uploaded images go in,
// stored object names come back, and deletes take the stored name.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, stored string) error
}

type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

// Save streams the file into the bucket under a fresh uuid-based object name
// so uploads with the same original filename never collide.
func (s *GCSStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	stored := uuid.New().String() + strings.ToLower(filepath.Ext(filename))

	w := s.client.Bucket(s.bucket).Object(stored).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return stored, nil
}

func (s *GCSStore) Delete(ctx context.Context, stored string) error {
	err := s.client.Bucket(s.bucket).Object(stored).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}
