package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	user, err := svc.Signup(ctx, "  alice ", "Alice@Example.COM", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username, "username should be trimmed")
	assert.Equal(t, "alice@example.com", user.Email, "email should be lowercased")
	assert.NotEqual(t, "secret1", user.PasswordHash, "password must not be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.False(t, user.CreatedAt.IsZero())
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "a@x.com", "secret1"},
		{"missing email", "alice", "", "secret1"},
		{"missing password", "alice", "a@x.com", ""},
		{"short password", "alice", "a@x.com", "12345"},
		{"username too short", "al", "a@x.com", "secret1"},
		{"multibyte username too short", "ял", "a@x.com", "secret1"},
		{"username too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "a@x.com", "secret1"},
		{"bad email", "alice", "not-an-email", "secret1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Signup_MultibyteUsername(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	// 30 Cyrillic letters are 60 bytes but still within the 30-character cap
	user, err := svc.Signup(ctx, strings.Repeat("я", 30), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("я", 30), user.Username)
}

func TestAuthService_Signup_Conflict(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// username collision, case-insensitive, other fields fresh
	_, err = svc.Signup(ctx, "ALICE", "new@example.com", "another1")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username")

	// email collision, case-insensitive
	_, err = svc.Signup(ctx, "bob", "ALICE@example.com", "another1")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email")
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	created, err := svc.Signup(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// login works with username or email, case-insensitively
	for _, login := range []string{"alice", "Alice", "alice@example.com", "ALICE@EXAMPLE.COM"} {
		user, err := svc.Login(ctx, login, "secret1")
		require.NoError(t, err, "login %q", login)
		assert.Equal(t, created.ID, user.ID)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// unknown user and wrong password produce the same error
	_, errUnknown := svc.Login(ctx, "nobody", "secret1")
	_, errWrongPass := svc.Login(ctx, "alice", "wrong-password")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error(),
		"error message must not reveal whether the user exists")
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(NewMockUserRepository())
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "secret1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}
