package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
)

const suggestPrompt = `You are a professional barber. Look at the face in the photo and answer with a JSON object
with the keys "face_shape", "hairstyle_name", "description" and "prompt". "prompt" is an instruction
for an image editor that applies the hairstyle to this person without changing their face.`

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator calls the Gemini API once per request, without retries.
type GeminiGenerator struct {
	models     contentGenerator
	textModel  string
	imageModel string
}

var _ hairstyle.Generator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey, textModel, imageModel string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return &GeminiGenerator{
		models:     client.Models,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

func (g *GeminiGenerator) Suggest(ctx context.Context, in hairstyle.SuggestInput) (*hairstyle.Suggestion, error) {
	prompt := suggestPrompt
	if in.Preference != "" {
		prompt += "\nThe customer prefers: " + in.Preference
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(in.Photo.Data, in.Photo.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.textModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini suggest: %w", err)
	}

	var s hairstyle.Suggestion
	if err := json.Unmarshal([]byte(stripFence(resp.Text())), &s); err != nil {
		return nil, fmt.Errorf("gemini suggest: decode answer: %w", err)
	}
	return &s, nil
}

func (g *GeminiGenerator) TryOn(ctx context.Context, in hairstyle.TryOnInput) (*hairstyle.Image, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(in.Photo.Data, in.Photo.MIMEType),
			genai.NewPartFromText(in.Instruction),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini try-on: %w", err)
	}

	if img := firstImage(resp); img != nil {
		return img, nil
	}
	return nil, httperr.ErrBusiness("no_image_returned")
}

func firstImage(resp *genai.GenerateContentResponse) *hairstyle.Image {
	if resp == nil {
		return nil
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
				return &hairstyle.Image{
					MIMEType: p.InlineData.MIMEType,
					Data:     p.InlineData.Data,
				}
			}
		}
	}
	return nil
}

// stripFence removes a ```json fence some models wrap around JSON answers.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
