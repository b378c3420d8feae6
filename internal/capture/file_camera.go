package capture

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
)

// FileCamera serves a still image from disk as if it were a camera. The
// tryon tool uses it on machines without a capture device.
type FileCamera struct {
	Path string
}

func (c FileCamera) Open(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(c.Path); err != nil {
		return nil, fmt.Errorf("open camera %s: %w", c.Path, err)
	}

	return &fileStream{
		path:  c.Path,
		track: &track{id: uuid.NewString(), active: true},
	}, nil
}

type fileStream struct {
	path  string
	track *track
}

func (s *fileStream) Tracks() []Track {
	return []Track{s.track}
}

func (s *fileStream) Still(ctx context.Context) (*hairstyle.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.track.Active() {
		return nil, ErrClosed
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("read frame: %s is %s, not an image", s.path, mime)
	}
	return &hairstyle.Image{MIMEType: mime, Data: data}, nil
}

type track struct {
	mu     sync.Mutex
	id     string
	active bool
}

func (t *track) ID() string { return t.id }

func (t *track) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *track) Stop() {
	t.mu.Lock()
	t.active = false
	t.mu.Unlock()
}
