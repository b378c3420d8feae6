package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/models"
)

func TestLocalTokensRoundTrip(t *testing.T) {
	tokens := NewLocalTokens("secret")
	user := &models.User{ID: "u-1", Email: "ali@example.com", Name: "Ali", Role: "barber"}

	raw, err := tokens.Issue(user)
	require.NoError(t, err)

	id, err := tokens.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, &Identity{UID: "u-1", Email: "ali@example.com", Name: "Ali", Role: "barber"}, id)
}

func TestLocalTokensRejectsForeignAndExpired(t *testing.T) {
	user := &models.User{ID: "u-1", Role: "customer"}

	raw, err := NewLocalTokens("other").Issue(user)
	require.NoError(t, err)
	_, err = NewLocalTokens("secret").Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	issuer := NewLocalTokens("secret")
	issuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	raw, err = issuer.Issue(user)
	require.NoError(t, err)
	_, err = NewLocalTokens("secret").Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewLocalTokens("secret").Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

type stubIDTokens struct {
	token *fbauth.Token
	err   error
}

func (s stubIDTokens) VerifyIDToken(context.Context, string) (*fbauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier(t *testing.T) {
	v := &FirebaseVerifier{client: stubIDTokens{token: &fbauth.Token{
		UID:    "fb-uid",
		Claims: map[string]interface{}{"email": "chen@example.com", "name": "Chen"},
	}}}

	id, err := v.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", id.UID)
	assert.Equal(t, "chen@example.com", id.Email)
	assert.Empty(t, id.Role)

	v = &FirebaseVerifier{client: stubIDTokens{err: errors.New("expired")}}
	_, err = v.Verify(context.Background(), "id-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
