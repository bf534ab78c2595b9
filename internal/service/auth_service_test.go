package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/challenge75/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewAuthService(users, "test-secret", time.Hour, fixedClock("2024-03-01")), users
}

func TestRegisterCreatesUserAndToken(t *testing.T) {
	svc, users := newTestAuthService()
	ctx := context.Background()

	token, user, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, mustDay("2024-03-01"), user.StartDate, "start date defaults to today")

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestRegisterExplicitStartDate(t *testing.T) {
	svc, _ := newTestAuthService()
	start := time.Date(2024, 2, 10, 18, 30, 0, 0, time.UTC)

	_, user, err := svc.Register(context.Background(), RegisterInput{Name: "Ada", Email: "a@b.c", Password: "secret1", StartDate: &start})
	require.NoError(t, err)
	assert.Equal(t, mustDay("2024-02-10"), user.StartDate)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Name: "Other", Email: "ADA@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "12345"})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Register(ctx, RegisterInput{Name: "  ", Email: "ada@example.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()
	_, registered, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()
	_, user, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{
		Name:           ptr("Ada L."),
		LeetCodeHandle: ptr("ada_lc"),
		TargetWeight:   ptr(72.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "ada_lc", updated.LeetCodeHandle)
	require.NotNil(t, updated.TargetWeight)
	assert.Equal(t, 72.5, *updated.TargetWeight)

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", profile.Name)

	_, err = svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{TargetWeight: ptr(10.0)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.GetProfile(context.Background(), newFakeUserRepo().seedUser(time.Now()).ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewAuthServicePanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { NewAuthService(newFakeUserRepo(), "", time.Hour, Clock{}) })
}
