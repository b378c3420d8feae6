package hairstyle

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
)

// Suggestion is the structured answer of a style analysis.
type Suggestion struct {
	FaceShape     string `json:"face_shape"`
	HairstyleName string `json:"hairstyle_name"`
	Description   string `json:"description"`
	Prompt        string `json:"prompt"`
}

type SuggestInput struct {
	Photo      Image
	Preference string
}

type TryOnInput struct {
	Photo       Image
	Instruction string
}

// Generator is the generative-AI capability. Implementations must not retry
// and must return no_image_returned when a try-on yields no media.
type Generator interface {
	Suggest(ctx context.Context, in SuggestInput) (*Suggestion, error)
	TryOn(ctx context.Context, in TryOnInput) (*Image, error)
}

// ===============================
// Data URIs
// ===============================

// Image is decoded image content with its MIME type.
type Image struct {
	MIMEType string
	Data     []byte
}

// ParseDataURI decodes "data:image/<type>;base64,<payload>".
func ParseDataURI(uri string) (*Image, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, httperr.ErrBusiness("invalid_photo")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, httperr.ErrBusiness("invalid_photo")
	}

	mime, enc, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(mime, "image/") || enc != "base64" {
		return nil, httperr.ErrBusiness("invalid_photo")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, httperr.ErrBusiness("invalid_photo")
	}

	return &Image{MIMEType: mime, Data: data}, nil
}

func (i Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, base64.StdEncoding.EncodeToString(i.Data))
}
