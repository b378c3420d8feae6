package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/domain/hairstyle"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type UploadPhoto struct {
	users   domain.Repository
	store   domain.PhotoStore
	encoder domain.PhotoEncoder
	cache   domain.DirectoryCache
	audit   *audit.Dispatcher
	log     *zap.Logger
	now     func() time.Time
}

func NewUploadPhoto(
	users domain.Repository,
	store domain.PhotoStore,
	encoder domain.PhotoEncoder,
	cache domain.DirectoryCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UploadPhoto {
	return &UploadPhoto{
		users:   users,
		store:   store,
		encoder: encoder,
		cache:   cache,
		audit:   audit,
		log:     log,
		now:     time.Now,
	}
}

// Execute stores a data-URI photo and points the profile at it.
func (uc *UploadPhoto) Execute(ctx context.Context, userID, dataURI string) (*models.User, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_unavailable")
	}

	img, err := hairstyle.ParseDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, contentType, err := uc.encoder.Encode(img.Data)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_photo")
	}

	key := fmt.Sprintf("profile-photos/%s/%s.webp", u.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	u.PhotoURL = url
	u.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	if u.Role == domain.RoleBarber {
		invalidate(ctx, uc.cache, uc.log)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "profile_photo_updated",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"key": key, "bytes": len(data)},
	})

	return u, nil
}
