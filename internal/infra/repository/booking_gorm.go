package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / Read
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) (string, error) {

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Version = 1

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	return b.ID, nil
}

func (r *BookingGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListForCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("appointment_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListForBarber(
	ctx context.Context,
	barberID string,
	status domain.Status,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var bookings []models.Booking
	if err := q.Order("appointment_at ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list barber bookings: %w", err)
	}
	return bookings, nil
}

// --------------------------------------------------
// Compare-and-swap updates
// --------------------------------------------------

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	expectedVersion int64,
	status domain.Status,
) error {

	return r.swap(ctx, id, expectedVersion, map[string]any{
		"status": string(status),
	})
}

func (r *BookingGormRepository) UpdateProposedPrice(
	ctx context.Context,
	id string,
	expectedVersion int64,
	price float64,
	status domain.Status,
) error {

	return r.swap(ctx, id, expectedVersion, map[string]any{
		"proposed_price_by_barber": price,
		"service_price":            price,
		"status":                   string(status),
	})
}

// swap writes fields in one UPDATE guarded by the version column.
func (r *BookingGormRepository) swap(
	ctx context.Context,
	id string,
	expectedVersion int64,
	fields map[string]any,
) error {

	fields["version"] = gorm.Expr("version + 1")
	fields["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update booking: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if count == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}
	return httperr.ErrBusiness("booking_conflict")
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
