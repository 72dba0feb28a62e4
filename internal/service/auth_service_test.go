package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, "test-secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")

	token, logged, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	id, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestSignupDuplicateUsername(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, "test-secret", time.Hour)

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := NewAuthService(f.users, "secret-a", time.Hour)
	b := NewAuthService(f.users, "secret-b", time.Hour)

	_, err := a.Signup(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	token, _, err := a.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = b.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
