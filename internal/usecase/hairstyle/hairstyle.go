package hairstyle

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
)

// ======================================================
// SUGGEST
// ======================================================

type Suggest struct {
	generator domain.Generator
	log       *zap.Logger
}

func NewSuggest(generator domain.Generator, log *zap.Logger) *Suggest {
	return &Suggest{generator: generator, log: log}
}

func (uc *Suggest) Execute(ctx context.Context, photoURI, preference string) (*domain.Suggestion, error) {
	photo, err := domain.ParseDataURI(photoURI)
	if err != nil {
		return nil, err
	}

	s, err := uc.generator.Suggest(ctx, domain.SuggestInput{
		Photo:      *photo,
		Preference: strings.TrimSpace(preference),
	})
	if err != nil {
		return nil, generatorError(uc.log, "suggest", err)
	}
	return s, nil
}

// ======================================================
// TRY ON
// ======================================================

// DefaultInstruction is used when a try-on asks for no particular style.
const DefaultInstruction = "Give this person a fresh, well-groomed haircut"

type TryOn struct {
	generator domain.Generator
	log       *zap.Logger
}

func NewTryOn(generator domain.Generator, log *zap.Logger) *TryOn {
	return &TryOn{generator: generator, log: log}
}

// Execute returns the edited photo as a data URI.
func (uc *TryOn) Execute(ctx context.Context, photoURI, instruction string) (string, error) {
	photo, err := domain.ParseDataURI(photoURI)
	if err != nil {
		return "", err
	}

	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		instruction = DefaultInstruction
	}

	img, err := uc.generator.TryOn(ctx, domain.TryOnInput{
		Photo:       *photo,
		Instruction: instruction,
	})
	if err != nil {
		return "", generatorError(uc.log, "try-on", err)
	}
	if img == nil || len(img.Data) == 0 {
		return "", httperr.ErrBusiness("no_image_returned")
	}
	return img.DataURI(), nil
}

// generatorError keeps business codes and hides provider errors behind
// ai_unavailable.
func generatorError(log *zap.Logger, op string, err error) error {
	if httperr.CodeOf(err) != "" {
		return err
	}
	log.Error("hairstyle generator failed", zap.String("op", op), zap.Error(err))
	return httperr.ErrBusiness("ai_unavailable")
}
