package review

import (
	"context"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/review"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type BarberReviews struct {
	Reviews []models.Review `json:"reviews"`
	Average float64         `json:"average_rating"`
	Count   int             `json:"count"`
}

type ListBarberReviews struct {
	reviews domain.Repository
}

func NewListBarberReviews(reviews domain.Repository) *ListBarberReviews {
	return &ListBarberReviews{reviews: reviews}
}

func (uc *ListBarberReviews) Execute(ctx context.Context, barberID string) (*BarberReviews, error) {
	list, err := uc.reviews.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Review{}
	}

	return &BarberReviews{
		Reviews: list,
		Average: domain.Average(list),
		Count:   len(list),
	}, nil
}
