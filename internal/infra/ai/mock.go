package ai

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
)

// MockGenerator answers without calling any model: a fixed suggestion and a
// flat placeholder image. It is the default provider for local runs.
type MockGenerator struct{}

var _ hairstyle.Generator = MockGenerator{}

func (MockGenerator) Suggest(_ context.Context, in hairstyle.SuggestInput) (*hairstyle.Suggestion, error) {
	name := "Textured crop"
	if p := strings.TrimSpace(in.Preference); p != "" {
		name = fmt.Sprintf("Textured crop (%s)", p)
	}

	return &hairstyle.Suggestion{
		FaceShape:     "oval",
		HairstyleName: name,
		Description:   "Short tapered sides with a textured top that adds volume without length.",
		Prompt:        "Give the person a textured crop with a low taper fade, keep the face unchanged.",
	}, nil
}

func (MockGenerator) TryOn(ctx context.Context, _ hairstyle.TryOnInput) (*hairstyle.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return placeholder()
}

func placeholder() (*hairstyle.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	fill := color.RGBA{R: 0x2b, G: 0x2d, B: 0x42, A: 0xff}
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &hairstyle.Image{MIMEType: "image/png", Data: buf.Bytes()}, nil
}
