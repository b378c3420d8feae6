package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
)

// Generator is a mock of hairstyle.Generator.
type Generator struct {
	mock.Mock
}

var _ hairstyle.Generator = (*Generator)(nil)

func (m *Generator) Suggest(ctx context.Context, in hairstyle.SuggestInput) (*hairstyle.Suggestion, error) {
	ret := m.Called(ctx, in)

	var s *hairstyle.Suggestion
	if v := ret.Get(0); v != nil {
		s = v.(*hairstyle.Suggestion)
	}
	return s, ret.Error(1)
}

func (m *Generator) TryOn(ctx context.Context, in hairstyle.TryOnInput) (*hairstyle.Image, error) {
	ret := m.Called(ctx, in)

	var img *hairstyle.Image
	if v := ret.Get(0); v != nil {
		img = v.(*hairstyle.Image)
	}
	return img, ret.Error(1)
}
