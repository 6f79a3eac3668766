package service

import (
	"context"
	"testing"

	"github.com/atriumhq/atrium/internal/auth/domain"
	"github.com/atriumhq/atrium/internal/auth/repository"
	"github.com/atriumhq/atrium/internal/config"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.User{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Cfg:      config.Config{SessionTTLHours: 1},
		Log:      zap.NewNop(),
		GenID:    node,
		Users:    repository.Provide(conn),
		Sessions: repository.ProvideSessions(conn),
	})
}

func TestCreateUserAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:       "Jordan@Example.com",
		Password:    "a-long-password",
		DisplayName: "Jordan",
	})
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", user.Email)

	result, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "jordan@example.com",
		Password: "a-long-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.RawToken)
	assert.Equal(t, user.ID, result.User.ID)

	session, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:    "sam@example.com",
		Password: "a-long-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "sam@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "not-an-email", Password: "a-long-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.CreateUser(ctx, domain.CreateUserRequest{Email: "ok@example.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "dup@example.com", Password: "a-long-password"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, domain.CreateUserRequest{Email: "dup@example.com", Password: "a-long-password"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{Email: "kai@example.com", Password: "a-long-password"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "kai@example.com", Password: "a-long-password"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RawToken))

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}
