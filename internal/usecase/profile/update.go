package profile

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// UpdateProfileInput carries the fields to change; nil leaves a field as is.
// Barber-only fields are ignored for customers.
type UpdateProfileInput struct {
	UserID string

	Name  *string
	Phone *string

	Bio               *string
	Specialties       []string
	YearsOfExperience *int
	Availability      *string
	Services          []models.BarberService
}

type UpdateProfile struct {
	users domain.Repository
	cache domain.DirectoryCache
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewUpdateProfile(
	users domain.Repository,
	cache domain.DirectoryCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateProfile {
	return &UpdateProfile{
		users: users,
		cache: cache,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	u, err := uc.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}

	if u.Role == domain.RoleBarber {
		if err := applyBarberFields(u, in); err != nil {
			return nil, err
		}
	}

	u.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	if u.Role == domain.RoleBarber {
		invalidate(ctx, uc.cache, uc.log)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: u.ID,
	})

	return u, nil
}

func applyBarberFields(u *models.User, in UpdateProfileInput) error {
	if in.Availability != nil {
		a, err := domain.ParseAvailability(*in.Availability)
		if err != nil {
			return err
		}
		u.Availability = a.Encode()
	}

	if in.Services != nil {
		if err := domain.ValidateServices(in.Services); err != nil {
			return err
		}
		services := make([]models.BarberService, len(in.Services))
		for i, s := range in.Services {
			s.Name = strings.TrimSpace(s.Name)
			services[i] = s
		}
		u.Services = services
	}

	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Specialties != nil {
		specialties := make([]string, 0, len(in.Specialties))
		for _, s := range in.Specialties {
			if s = strings.TrimSpace(s); s != "" {
				specialties = append(specialties, s)
			}
		}
		u.Specialties = specialties
	}
	if in.YearsOfExperience != nil {
		if *in.YearsOfExperience < 0 {
			return errInvalidRequest
		}
		u.YearsOfExperience = *in.YearsOfExperience
	}
	return nil
}
