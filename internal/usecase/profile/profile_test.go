package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/auth"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/mocks"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

var ctx = context.Background()

func newDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	store := new(mocks.AuditStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()

	d := audit.NewDispatcher(audit.New(store), zap.NewNop())
	t.Cleanup(d.Close)
	return d
}

func strPtr(s string) *string { return &s }

// ======================================================
// ACCOUNT
// ======================================================

func TestRegister(t *testing.T) {
	users := new(mocks.ProfileRepository)
	tokens := new(mocks.TokenIssuer)

	users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ali@example.com" && u.Role == "barber" &&
			u.PasswordHash != "" && u.PasswordHash != "secret1" &&
			u.Availability == "{}"
	})).Return(nil)
	tokens.On("Issue", mock.Anything).Return("token-1", nil)

	uc := NewRegister(users, tokens, newDispatcher(t), zap.NewNop(), false)

	s, err := uc.Execute(ctx, RegisterInput{
		Name:     "Ali",
		Email:    " Ali@Example.com ",
		Password: "secret1",
		Role:     "barber",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", s.Token)
	assert.True(t, auth.CheckPassword(s.User.PasswordHash, "secret1"))
	users.AssertExpectations(t)
}

func TestRegisterValidation(t *testing.T) {
	uc := NewRegister(new(mocks.ProfileRepository), new(mocks.TokenIssuer), newDispatcher(t), zap.NewNop(), false)

	cases := map[string]RegisterInput{
		"invalid_email": {Name: "A", Email: "nope", Password: "secret1"},
		"weak_password": {Name: "A", Email: "a@example.com", Password: "123"},
		"invalid_role":  {Name: "A", Email: "a@example.com", Password: "secret1", Role: "admin"},
	}
	for code, in := range cases {
		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, code), code)
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	users := new(mocks.ProfileRepository)
	tokens := new(mocks.TokenIssuer)
	user := &models.User{ID: "u-1", Email: "ali@example.com", PasswordHash: hash}

	users.On("FindByEmail", ctx, "ali@example.com").Return(user, nil)
	users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, httperr.ErrBusiness("user_not_found"))
	tokens.On("Issue", user).Return("token-1", nil)

	uc := NewLogin(users, tokens)

	s, err := uc.Execute(ctx, "ALI@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", s.Token)

	_, err = uc.Execute(ctx, "ali@example.com", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = uc.Execute(ctx, "ghost@example.com", "secret1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestEnsureProfileCreatesOnFirstSight(t *testing.T) {
	users := new(mocks.ProfileRepository)
	users.On("FindByID", ctx, "fb-1").Return(nil, httperr.ErrBusiness("user_not_found"))
	users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == "fb-1" && u.Role == "customer" && u.Name == "chen"
	})).Return(nil)

	u, err := NewEnsureProfile(users, zap.NewNop()).Execute(ctx, &auth.Identity{UID: "fb-1", Email: "chen@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "chen@example.com", u.Email)
	users.AssertExpectations(t)
}

func TestEnsureProfileReturnsExisting(t *testing.T) {
	users := new(mocks.ProfileRepository)
	users.On("FindByID", ctx, "u-1").Return(&models.User{ID: "u-1", Role: "barber"}, nil)

	u, err := NewEnsureProfile(users, zap.NewNop()).Execute(ctx, &auth.Identity{UID: "u-1", Role: "customer"})
	require.NoError(t, err)
	assert.Equal(t, "barber", u.Role)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ======================================================
// UPDATE PROFILE
// ======================================================

func TestUpdateBarberProfile(t *testing.T) {
	users := new(mocks.ProfileRepository)
	cache := new(mocks.DirectoryCache)

	users.On("FindByID", ctx, "b-1").Return(&models.User{ID: "b-1", Name: "Ali", Role: "barber", Availability: "{}"}, nil)
	users.On("Update", ctx, mock.Anything).Return(nil)
	cache.On("Invalidate", ctx).Return(nil).Once()

	years := 7
	u, err := NewUpdateProfile(users, cache, newDispatcher(t), zap.NewNop()).Execute(ctx, UpdateProfileInput{
		UserID:            "b-1",
		Bio:               strPtr("Fades and beards"),
		Specialties:       []string{" fades ", ""},
		YearsOfExperience: &years,
		Availability:      strPtr(`{"monday":[{"start":"09:00","end":"17:00"}]}`),
		Services:          []models.BarberService{{Name: " Haircut ", Price: 25, DurationMinutes: 30}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"fades"}, u.Specialties)
	assert.Equal(t, 7, u.YearsOfExperience)
	assert.Equal(t, "Haircut", u.Services[0].Name)
	assert.JSONEq(t, `{"monday":[{"start":"09:00","end":"17:00"}]}`, u.Availability)
	cache.AssertExpectations(t)
}

func TestUpdateProfileRejectsBadAvailability(t *testing.T) {
	users := new(mocks.ProfileRepository)
	users.On("FindByID", ctx, "b-1").Return(&models.User{ID: "b-1", Role: "barber"}, nil)

	_, err := NewUpdateProfile(users, nil, newDispatcher(t), zap.NewNop()).Execute(ctx, UpdateProfileInput{
		UserID:       "b-1",
		Availability: strPtr(`{"funday":[]}`),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_availability"))
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomerIgnoresBarberFields(t *testing.T) {
	users := new(mocks.ProfileRepository)
	users.On("FindByID", ctx, "c-1").Return(&models.User{ID: "c-1", Name: "Chen", Role: "customer"}, nil)
	users.On("Update", ctx, mock.Anything).Return(nil)

	u, err := NewUpdateProfile(users, nil, newDispatcher(t), zap.NewNop()).Execute(ctx, UpdateProfileInput{
		UserID: "c-1",
		Phone:  strPtr("+60 12-345 6789"),
		Bio:    strPtr("ignored"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+60 12-345 6789", u.Phone)
	assert.Empty(t, u.Bio)
}

// ======================================================
// DIRECTORY
// ======================================================

func barbers() []models.User {
	return []models.User{
		{ID: "1", Name: "Ali", Role: "barber", Specialties: []string{"Fades"}, SubscriptionActive: true},
		{ID: "2", Name: "Siti", Role: "barber", Bio: "Beard sculpting"},
	}
}

func TestDirectoryFillsCacheOnMiss(t *testing.T) {
	users := new(mocks.ProfileRepository)
	cache := new(mocks.DirectoryCache)

	cache.On("Get", ctx).Return(nil, false, nil)
	users.On("ListBarbers", ctx).Return(barbers(), nil).Once()
	cache.On("Set", ctx, barbers()).Return(nil)

	list, err := NewDirectory(users, cache, false, zap.NewNop()).List(ctx, DirectoryQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	cache.AssertExpectations(t)
}

func TestDirectoryServesCacheAndFilters(t *testing.T) {
	users := new(mocks.ProfileRepository)
	cache := new(mocks.DirectoryCache)
	cache.On("Get", ctx).Return(barbers(), true, nil)

	uc := NewDirectory(users, cache, false, zap.NewNop())

	list, err := uc.List(ctx, DirectoryQuery{Query: "beard"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Siti", list[0].Name)

	list, err = uc.List(ctx, DirectoryQuery{Specialty: "fades"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ali", list[0].Name)

	users.AssertNotCalled(t, "ListBarbers", mock.Anything)
}

func TestDirectorySubscriptionFilter(t *testing.T) {
	users := new(mocks.ProfileRepository)
	users.On("ListBarbers", ctx).Return(barbers(), nil)

	list, err := NewDirectory(users, nil, true, zap.NewNop()).List(ctx, DirectoryQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ali", list[0].Name)
}

func TestDirectoryGetOnlyBarbers(t *testing.T) {
	users := new(mocks.ProfileRepository)
	users.On("FindByID", ctx, "c-1").Return(&models.User{ID: "c-1", Role: "customer"}, nil)
	users.On("FindByID", ctx, "x").Return(nil, httperr.ErrBusiness("user_not_found"))

	uc := NewDirectory(users, nil, false, zap.NewNop())

	_, err := uc.Get(ctx, "c-1")
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	_, err = uc.Get(ctx, "x")
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

// ======================================================
// PHOTO
// ======================================================

func TestUploadPhoto(t *testing.T) {
	users := new(mocks.ProfileRepository)
	store := new(mocks.PhotoStore)
	encoder := new(mocks.PhotoEncoder)

	users.On("FindByID", ctx, "c-1").Return(&models.User{ID: "c-1", Role: "customer"}, nil)
	users.On("Update", ctx, mock.Anything).Return(nil)
	encoder.On("Encode", []byte("raw")).Return([]byte("webp"), "image/webp", nil)
	store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return len(key) > len("profile-photos/c-1/")
	}), "image/webp", []byte("webp")).Return("https://cdn.example.com/p.webp", nil)

	uc := NewUploadPhoto(users, store, encoder, nil, newDispatcher(t), zap.NewNop())

	u, err := uc.Execute(ctx, "c-1", "data:image/jpeg;base64,cmF3")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/p.webp", u.PhotoURL)

	_, err = uc.Execute(ctx, "c-1", "not a data uri")
	assert.True(t, httperr.IsBusiness(err, "invalid_photo"))
}

func TestUploadPhotoWithoutStorage(t *testing.T) {
	uc := NewUploadPhoto(new(mocks.ProfileRepository), nil, new(mocks.PhotoEncoder), nil, newDispatcher(t), zap.NewNop())

	_, err := uc.Execute(ctx, "c-1", "data:image/jpeg;base64,cmF3")
	assert.True(t, httperr.IsBusiness(err, "storage_unavailable"))
}

// ======================================================
// SUBSCRIPTION
// ======================================================

func TestStartSubscription(t *testing.T) {
	users := new(mocks.ProfileRepository)
	billing := new(mocks.Billing)

	users.On("FindByID", ctx, "b-1").Return(&models.User{ID: "b-1", Email: "ali@example.com", Role: "barber"}, nil)
	billing.On("StartSubscription", ctx, mock.MatchedBy(func(r domain.SubscriptionRequest) bool {
		return r.UserID == "b-1" && r.Email == "ali@example.com"
	})).Return(&domain.Checkout{SubscriptionID: "pre-1", URL: "https://mp.example/checkout", Status: "pending"}, nil)
	users.On("SetSubscription", ctx, "b-1", "pre-1", false).Return(nil)

	checkout, err := NewStartSubscription(users, billing, newDispatcher(t), zap.NewNop()).Execute(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "https://mp.example/checkout", checkout.URL)
	users.AssertExpectations(t)
}

func TestStartSubscriptionGuards(t *testing.T) {
	_, err := NewStartSubscription(new(mocks.ProfileRepository), nil, newDispatcher(t), zap.NewNop()).Execute(ctx, "b-1")
	assert.True(t, httperr.IsBusiness(err, "payments_unavailable"))

	users := new(mocks.ProfileRepository)
	users.On("FindByID", ctx, "c-1").Return(&models.User{ID: "c-1", Role: "customer"}, nil)
	_, err = NewStartSubscription(users, new(mocks.Billing), newDispatcher(t), zap.NewNop()).Execute(ctx, "c-1")
	assert.True(t, httperr.IsBusiness(err, "not_a_barber"))
}

func TestSyncSubscriptionActivates(t *testing.T) {
	users := new(mocks.ProfileRepository)
	billing := new(mocks.Billing)
	cache := new(mocks.DirectoryCache)

	billing.On("SubscriptionStatus", ctx, "pre-1").Return("authorized", nil)
	users.On("FindBySubscriptionID", ctx, "pre-1").Return(&models.User{ID: "b-1", SubscriptionID: "pre-1"}, nil)
	users.On("SetSubscription", ctx, "b-1", "pre-1", true).Return(nil)
	cache.On("Invalidate", ctx).Return(nil)

	err := NewSyncSubscription(users, billing, cache, newDispatcher(t), zap.NewNop()).Execute(ctx, "pre-1")
	require.NoError(t, err)
	users.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSyncSubscriptionUnknownID(t *testing.T) {
	users := new(mocks.ProfileRepository)
	billing := new(mocks.Billing)

	billing.On("SubscriptionStatus", ctx, "pre-9").Return("cancelled", nil)
	users.On("FindBySubscriptionID", ctx, "pre-9").Return(nil, httperr.ErrBusiness("user_not_found"))

	err := NewSyncSubscription(users, billing, nil, newDispatcher(t), zap.NewNop()).Execute(ctx, "pre-9")
	assert.True(t, httperr.IsBusiness(err, "subscription_not_found"))
}
