package booking

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
	"github.com/BruksfildServices01/barbermatch/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor    domain.Actor
	BarberID string

	Date string
	Time string

	ServiceName string
	Style       string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	bookings domain.Repository
	users    profile.Repository
	audit    *audit.Dispatcher
	log      *zap.Logger
	tz       string
	now      func() time.Time
}

func NewCreateBooking(
	bookings domain.Repository,
	users profile.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		bookings: bookings,
		users:    users,
		audit:    audit,
		log:      log,
		tz:       tz,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Caller
	// --------------------------------------------------
	if in.Actor.Role != domain.RoleCustomer {
		return nil, httperr.ErrBusiness("forbidden")
	}

	customer, err := uc.users.FindByID(ctx, in.Actor.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Barber
	// --------------------------------------------------
	barber, err := uc.users.FindByID(ctx, in.BarberID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if barber.Role != profile.RoleBarber {
		return nil, httperr.ErrBusiness("not_a_barber")
	}

	// --------------------------------------------------
	// Date / time in the marketplace timezone
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !start.After(uc.now()) {
		return nil, httperr.ErrBusiness("appointment_in_past")
	}

	// --------------------------------------------------
	// Service snapshot or free-text style
	// --------------------------------------------------
	b := &models.Booking{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		BarberID:      barber.ID,
		BarberName:    barber.Name,
		AppointmentAt: start,
		Time:          timezone.ClockOf(uc.tz, start),
		Style:         strings.TrimSpace(in.Style),
		Notes:         strings.TrimSpace(in.Notes),
	}

	end := start.Add(30 * time.Minute)

	if name := strings.TrimSpace(in.ServiceName); name != "" {
		svc, ok := profile.FindService(barber, name)
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}

		price, duration := svc.Price, svc.DurationMinutes
		b.ServiceName = svc.Name
		b.ServicePrice = &price
		b.ServiceDuration = &duration
		end = start.Add(time.Duration(duration) * time.Minute)
	} else if b.Style == "" {
		return nil, httperr.ErrBusiness("missing_style")
	}

	// --------------------------------------------------
	// Availability (only when the barber published one)
	// --------------------------------------------------
	availability, err := profile.ParseAvailability(barber.Availability)
	if err != nil {
		return nil, err
	}
	if !availability.IsEmpty() && !availability.Covers(start, end) {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	b.Status = string(domain.InitialStatus(b.ServicePrice))

	id, err := uc.bookings.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	if b.Version == 0 {
		b.Version = 1
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   customer.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{
			"barber_id": barber.ID,
			"status":    b.Status,
		},
	})

	uc.log.Info("booking created",
		zap.String("booking_id", id),
		zap.String("barber_id", barber.ID),
		zap.String("status", b.Status),
	)

	return b, nil
}
