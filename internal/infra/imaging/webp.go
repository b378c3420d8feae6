package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
)

const (
	DefaultMaxSide = 512
	DefaultQuality = 80
)

// WebPEncoder downsizes photos to fit MaxSide and re-encodes them as WebP.
type WebPEncoder struct {
	MaxSide int
	Quality float32
}

var _ profile.PhotoEncoder = (*WebPEncoder)(nil)

func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{MaxSide: DefaultMaxSide, Quality: DefaultQuality}
}

func (e *WebPEncoder) Encode(data []byte) ([]byte, string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode photo: %w", err)
	}

	img := Fit(src, e.MaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: e.Quality}); err != nil {
		return nil, "", fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), "image/webp", nil
}

// Fit scales src down so neither side exceeds maxSide, keeping the aspect
// ratio. Smaller images are returned unchanged.
func Fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
