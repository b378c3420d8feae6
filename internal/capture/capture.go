package capture

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
)

var ErrClosed = errors.New("capture session closed")

// Track is one media track of an open device, such as the video feed.
type Track interface {
	ID() string
	Active() bool
	Stop()
}

// Stream is an acquired device: its tracks plus a way to grab a still frame.
type Stream interface {
	Tracks() []Track
	Still(ctx context.Context) (*hairstyle.Image, error)
}

// Camera opens a device. Each Open acquires new tracks.
type Camera interface {
	Open(ctx context.Context) (Stream, error)
}

// Session holds a camera stream until a still is captured, Close is called,
// or the context given to Start is cancelled. Every one of those exits stops
// all tracks.
type Session struct {
	mu     sync.Mutex
	stream Stream
	closed bool

	stop chan struct{}
}

func Start(ctx context.Context, cam Camera) (*Session, error) {
	stream, err := cam.Open(ctx)
	if err != nil {
		return nil, err
	}

	s := &Session{
		stream: stream,
		stop:   make(chan struct{}),
	}

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.stop:
		}
	}()

	return s, nil
}

// Capture grabs one still as a data URI and releases the device, whether
// or not the grab succeeded.
func (s *Session) Capture(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}
	stream := s.stream
	s.mu.Unlock()

	defer s.Close()

	img, err := stream.Still(ctx)
	if err != nil {
		return "", err
	}
	return img.DataURI(), nil
}

// Close stops every track. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for _, t := range s.stream.Tracks() {
		t.Stop()
	}
	close(s.stop)
}

// Active reports whether any track is still running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.stream.Tracks() {
		if t.Active() {
			return true
		}
	}
	return false
}
