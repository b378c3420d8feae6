package profile

import (
	"strings"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
)

func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleBarber
}

// ValidateServices checks names are present and unique (case-insensitive)
// and that price and duration are positive.
func ValidateServices(services []models.BarberService) error {
	seen := make(map[string]bool, len(services))
	for _, s := range services {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" || seen[name] || s.Price <= 0 || s.DurationMinutes <= 0 {
			return httperr.ErrBusiness("invalid_services")
		}
		seen[name] = true
	}
	return nil
}

// FindService looks a service up by name on a barber profile.
func FindService(barber *models.User, name string) (*models.BarberService, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range barber.Services {
		if strings.ToLower(strings.TrimSpace(barber.Services[i].Name)) == want {
			return &barber.Services[i], true
		}
	}
	return nil, false
}

// NewProfile builds the document created on first login.
func NewProfile(id, email, name, role string) *models.User {
	u := &models.User{
		ID:    id,
		Email: strings.ToLower(strings.TrimSpace(email)),
		Name:  strings.TrimSpace(name),
		Role:  role,
	}
	if role == RoleBarber {
		u.Availability = "{}"
		u.Specialties = []string{}
		u.Services = []models.BarberService{}
	}
	return u
}
