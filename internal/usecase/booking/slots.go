package booking

import (
	"context"
	"sort"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
	"github.com/BruksfildServices01/barbermatch/internal/timezone"
)

const defaultSlotMinutes = 30

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type FreeSlotsInput struct {
	BarberID    string
	Date        string
	ServiceName string
}

// ListFreeSlots splits a barber's published availability for one day into
// slots of the service duration and drops those overlapping a booking that
// still holds its time.
type ListFreeSlots struct {
	bookings domain.Repository
	users    profile.Repository
	tz       string
	now      func() time.Time
}

func NewListFreeSlots(bookings domain.Repository, users profile.Repository, tz string) *ListFreeSlots {
	return &ListFreeSlots{bookings: bookings, users: users, tz: tz, now: time.Now}
}

func (uc *ListFreeSlots) Execute(ctx context.Context, in FreeSlotsInput) ([]TimeSlot, error) {
	barber, err := uc.users.FindByID(ctx, in.BarberID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if barber.Role != profile.RoleBarber {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	day, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	step := defaultSlotMinutes * time.Minute
	if name := strings.TrimSpace(in.ServiceName); name != "" {
		svc, ok := profile.FindService(barber, name)
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		step = time.Duration(svc.DurationMinutes) * time.Minute
	}

	availability, err := profile.ParseAvailability(barber.Availability)
	if err != nil {
		return nil, err
	}
	windows := availability.WindowsOn(day)
	if len(windows) == 0 {
		return []TimeSlot{}, nil
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].From.Before(windows[j].From) })

	existing, err := uc.bookings.ListForBarber(ctx, barber.ID, "")
	if err != nil {
		return nil, err
	}
	taken := busyOn(existing, day)
	now := uc.now()

	slots := []TimeSlot{}
	for _, w := range windows {
		for cur := w.From; !cur.Add(step).After(w.To); cur = cur.Add(step) {
			end := cur.Add(step)
			if !cur.After(now) || overlaps(taken, cur, end) {
				continue
			}
			slots = append(slots, TimeSlot{
				Start: cur.Format("15:04"),
				End:   end.Format("15:04"),
			})
		}
	}
	return slots, nil
}

type span struct{ start, end time.Time }

func busyOn(list []models.Booking, day time.Time) []span {
	dayEnd := day.AddDate(0, 0, 1)

	var out []span
	for _, b := range list {
		if !domain.Status(b.Status).Holds() {
			continue
		}
		minutes := defaultSlotMinutes
		if b.ServiceDuration != nil && *b.ServiceDuration > 0 {
			minutes = *b.ServiceDuration
		}
		start := b.AppointmentAt
		end := start.Add(time.Duration(minutes) * time.Minute)
		if end.After(day) && start.Before(dayEnd) {
			out = append(out, span{start: start, end: end})
		}
	}
	return out
}

func overlaps(taken []span, start, end time.Time) bool {
	for _, s := range taken {
		if start.Before(s.end) && end.After(s.start) {
			return true
		}
	}
	return false
}
