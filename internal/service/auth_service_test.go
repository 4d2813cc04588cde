package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-support-be/internal/apperror"
	"ai-support-be/internal/config"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest() (IAuthService, *fakeFactory) {
	uowFactory := newFakeFactory()
	svc := NewAuthService(uowFactory, config.AuthConfig{
		JWTSecret:        "test-secret",
		TokenExpiryHours: 24,
	})
	return svc, uowFactory
}

func seedCredentialedUser(store *fakeStore, email, password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	hashStr := string(hash)
	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		CreatedAt:    time.Now(),
	}
	store.users = append(store.users, user)
	return user
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	svc, uowFactory := newAuthServiceForTest()
	user := seedCredentialedUser(uowFactory.store, "alice@example.com", "super-secret-pw")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "super-secret-pw",
	})
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Equal(t, user.Id, res.User.Id)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, entity.UserRoleUser, claims["role"])
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	svc, uowFactory := newAuthServiceForTest()
	seedCredentialedUser(uowFactory.store, "alice@example.com", "super-secret-pw")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestLoginUnknownEmailUnauthorized(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

// A repository failure must surface as an infrastructure error, not be
// mistaken for bad credentials.
func TestLoginRepositoryFailureIsNotUnauthorized(t *testing.T) {
	svc, uowFactory := newAuthServiceForTest()
	dbErr := errors.New("connection reset by peer")
	uowFactory.store.userFindErr = dbErr

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "super-secret-pw",
	})
	require.Error(t, err)
	assert.NotEqual(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.ErrorIs(t, err, dbErr)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	svc, uowFactory := newAuthServiceForTest()
	seedCredentialedUser(uowFactory.store, "alice@example.com", "super-secret-pw")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Alice Again",
		Email:    "alice@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Len(t, uowFactory.store.users, 1)
}
