package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

func TestParseAvailability(t *testing.T) {
	a, err := ParseAvailability("")
	require.NoError(t, err)
	assert.True(t, a.IsEmpty())

	a, err = ParseAvailability(`{"monday":[{"start":"09:00","end":"13:00"},{"start":"14:00","end":"18:00"}]}`)
	require.NoError(t, err)
	assert.Len(t, a["monday"], 2)
	assert.False(t, a.IsEmpty())

	for _, bad := range []string{
		`not json`,
		`{"funday":[]}`,
		`{"monday":[{"start":"18:00","end":"09:00"}]}`,
		`{"monday":[{"start":"9am","end":"10:00"}]}`,
	} {
		_, err := ParseAvailability(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_availability"), bad)
	}
}

func TestAvailabilityCovers(t *testing.T) {
	a := Availability{"monday": {{Start: "09:00", End: "13:00"}}}
	loc := time.FixedZone("MYT", 8*3600)

	monday := time.Date(2026, 10, 19, 9, 30, 0, 0, loc)
	assert.True(t, a.Covers(monday, monday.Add(30*time.Minute)))
	assert.False(t, a.Covers(monday, monday.Add(4*time.Hour)), "runs past closing")
	assert.False(t, a.Covers(monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 1).Add(time.Hour)), "tuesday closed")
}

func TestAvailabilityEncodeRoundTrip(t *testing.T) {
	a := Availability{"friday": {{Start: "10:00", End: "12:00"}}}
	back, err := ParseAvailability(a.Encode())
	require.NoError(t, err)
	assert.Equal(t, a, back)
	assert.Equal(t, "{}", Availability(nil).Encode())
}

func TestValidateServices(t *testing.T) {
	ok := []models.BarberService{{Name: "Haircut", Price: 25, DurationMinutes: 30}}
	assert.NoError(t, ValidateServices(ok))

	dup := append(ok, models.BarberService{Name: "haircut ", Price: 30, DurationMinutes: 45})
	assert.Error(t, ValidateServices(dup))
	assert.Error(t, ValidateServices([]models.BarberService{{Name: "Shave", Price: 0, DurationMinutes: 15}}))
}

func TestFindService(t *testing.T) {
	barber := &models.User{Services: []models.BarberService{{Name: "Haircut", Price: 25, DurationMinutes: 30}}}

	s, ok := FindService(barber, " haircut")
	require.True(t, ok)
	assert.Equal(t, 25.0, s.Price)

	_, ok = FindService(barber, "Beard trim")
	assert.False(t, ok)
}

func TestNewProfileDefaultsForBarber(t *testing.T) {
	u := NewProfile("uid-1", " Ali@Example.com ", "Ali", RoleBarber)
	assert.Equal(t, "ali@example.com", u.Email)
	assert.Equal(t, "{}", u.Availability)
	assert.Equal(t, 0, u.YearsOfExperience)
	assert.Empty(t, u.Services)

	c := NewProfile("uid-2", "c@example.com", "Chen", RoleCustomer)
	assert.Empty(t, c.Availability)
}
