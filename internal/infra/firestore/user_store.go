package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// UserStore keeps profiles in the "users" collection keyed by uid.
type UserStore struct {
	client *firestore.Client
	now    func() time.Time
}

var _ domain.Repository = (*UserStore)(nil)

func NewUserStore(client *firestore.Client) *UserStore {
	return &UserStore{client: client, now: time.Now}
}

func (s *UserStore) col() *firestore.CollectionRef {
	return s.client.Collection(usersCollection)
}

var errEmailTaken = httperr.ErrBusiness("email_already_exists")

// Create checks email uniqueness inside the same transaction as the write.
func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now

	ref := s.col().Doc(u.ID)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taken, err := tx.Documents(s.col().Where("email", "==", u.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return errEmailTaken
		}
		return tx.Create(ref, u)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errEmailTaken), isAlreadyExists(err):
		return errEmailTaken
	}
	return fmt.Errorf("create user: %w", err)
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	snap, err := s.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return decodeUser(snap)
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.first(ctx, s.col().Where("email", "==", email))
}

func (s *UserStore) FindBySubscriptionID(ctx context.Context, subscriptionID string) (*models.User, error) {
	return s.first(ctx, s.col().Where("subscriptionId", "==", subscriptionID))
}

func (s *UserStore) first(ctx context.Context, q firestore.Query) (*models.User, error) {
	snaps, err := q.Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(snaps) == 0 {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return decodeUser(snaps[0])
}

func (s *UserStore) Update(ctx context.Context, u *models.User) error {
	if _, err := s.col().Doc(u.ID).Set(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (s *UserStore) ListBarbers(ctx context.Context) ([]models.User, error) {
	snaps, err := s.col().
		Where("role", "==", domain.RoleBarber).
		OrderBy("name", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}

	out := make([]models.User, 0, len(snaps))
	for _, snap := range snaps {
		u, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

func (s *UserStore) SetSubscription(ctx context.Context, userID, subscriptionID string, active bool) error {
	_, err := s.col().Doc(userID).Update(ctx, []firestore.Update{
		{Path: "subscriptionId", Value: subscriptionID},
		{Path: "subscriptionActive", Value: active},
		{Path: "updatedAt", Value: s.now()},
	})
	if err != nil {
		if isNotFound(err) {
			return httperr.ErrBusiness("user_not_found")
		}
		return fmt.Errorf("set subscription: %w", err)
	}
	return nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (*models.User, error) {
	var u models.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
	}
	u.ID = snap.Ref.ID
	return &u, nil
}
