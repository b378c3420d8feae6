package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BruksfildServices01/barbermatch/internal/config"
	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
)

// LocalStore writes photos under a directory served at /uploads. It is the
// fallback when S3 is not configured.
type LocalStore struct {
	dir     string
	baseURL string
}

var _ profile.PhotoStore = (*LocalStore)(nil)

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	clean := filepath.Clean("/" + key)
	path := filepath.Join(s.dir, clean)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("%s/uploads%s", s.baseURL, filepath.ToSlash(clean)), nil
}

// New picks S3 when it is fully configured and local disk otherwise.
func New(cfg *config.Config) profile.PhotoStore {
	if cfg.S3Enabled() {
		return NewS3Store(cfg)
	}
	return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
}
