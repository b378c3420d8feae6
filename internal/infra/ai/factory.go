package ai

import (
	"context"

	"github.com/BruksfildServices01/barbermatch/internal/config"
	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
)

// New returns the generator selected by AI_PROVIDER.
func New(ctx context.Context, cfg *config.Config) (hairstyle.Generator, error) {
	if cfg.AIProvider == config.AIGemini {
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImageModel)
	}
	return MockGenerator{}, nil
}
