package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

var errInvalidRequest = httperr.ErrBusiness("invalid_request")

type DirectoryQuery struct {
	Query     string
	Specialty string
}

// Directory lists barber profiles. The full listing is cached and filtered
// in memory.
type Directory struct {
	users               domain.Repository
	cache               domain.DirectoryCache
	requireSubscription bool
	log                 *zap.Logger
}

func NewDirectory(
	users domain.Repository,
	cache domain.DirectoryCache,
	requireSubscription bool,
	log *zap.Logger,
) *Directory {
	return &Directory{
		users:               users,
		cache:               cache,
		requireSubscription: requireSubscription,
		log:                 log,
	}
}

func (uc *Directory) List(ctx context.Context, q DirectoryQuery) ([]models.User, error) {
	barbers, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(q.Query))
	specialty := strings.ToLower(strings.TrimSpace(q.Specialty))

	out := make([]models.User, 0, len(barbers))
	for _, b := range barbers {
		if uc.requireSubscription && !b.SubscriptionActive {
			continue
		}
		if specialty != "" && !hasSpecialty(b, specialty) {
			continue
		}
		if query != "" && !matches(b, query) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Get returns one barber profile.
func (uc *Directory) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if u.Role != domain.RoleBarber {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return u, nil
}

func (uc *Directory) load(ctx context.Context) ([]models.User, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx)
		if err != nil {
			uc.log.Warn("directory cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	barbers, err := uc.users.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, barbers); err != nil {
			uc.log.Warn("directory cache write failed", zap.Error(err))
		}
	}
	return barbers, nil
}

func hasSpecialty(b models.User, specialty string) bool {
	for _, s := range b.Specialties {
		if strings.ToLower(s) == specialty {
			return true
		}
	}
	return false
}

func matches(b models.User, query string) bool {
	if strings.Contains(strings.ToLower(b.Name), query) ||
		strings.Contains(strings.ToLower(b.Bio), query) {
		return true
	}
	for _, s := range b.Specialties {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

func invalidate(ctx context.Context, cache domain.DirectoryCache, log *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn("directory cache invalidation failed", zap.Error(err))
	}
}
