// Package upload stores doctor avatars through a narrow contract so the
// asset host stays swappable.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Uploader persists an image and returns its public id and URL.
type Uploader interface {
	Upload(ctx context.Context, contentType string, r io.Reader) (publicID, url string, err error)
}

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// Disk keeps avatars on the local filesystem, served under BaseURL.
type Disk struct {
	Dir     string
	BaseURL string
}

func NewDisk(dir, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	return &Disk{Dir: dir, BaseURL: baseURL}, nil
}

func (d *Disk) Upload(_ context.Context, contentType string, r io.Reader) (string, string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", "", fmt.Errorf("unsupported content type %q", contentType)
	}
	id := uuid.New().String()
	name := id + ext

	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", "", err
	}
	return id, d.BaseURL + "/" + name, nil
}
