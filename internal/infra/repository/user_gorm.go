package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("email_already_exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserGormRepository) FindBySubscriptionID(ctx context.Context, subscriptionID string) (*models.User, error) {
	return r.first(ctx, "subscription_id = ?", subscriptionID)
}

func (r *UserGormRepository) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserGormRepository) ListBarbers(ctx context.Context) ([]models.User, error) {
	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", domain.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}
	return barbers, nil
}

func (r *UserGormRepository) SetSubscription(
	ctx context.Context,
	userID string,
	subscriptionID string,
	active bool,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"subscription_id":     subscriptionID,
			"subscription_active": active,
		})
	if res.Error != nil {
		return fmt.Errorf("set subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("user_not_found")
	}
	return nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
