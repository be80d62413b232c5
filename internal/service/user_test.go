package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/repository"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()

	return NewUserService(repository.NewUserRepository(dao.NewUserDAO(newTestDB(t))))
}

func TestUserService_Login(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(context.Background(), domain.User{
		Username: "admin",
		Password: "admin123",
		Role:     "manager",
		Name:     "Store Manager",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "manager", user.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(context.Background(), domain.User{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestUserService_CreateUser_DefaultRole(t *testing.T) {
	svc := newUserService(t)

	created, err := svc.CreateUser(context.Background(), domain.User{
		Username: "jamie",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "cashier", created.Role)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(context.Background(), domain.User{Username: "jamie", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), domain.User{Username: "jamie", Password: "other"})
	assert.ErrorIs(t, err, ErrUserUsernameExists)
}

func TestUserService_UpdateUser_KeepsEmptyFields(t *testing.T) {
	svc := newUserService(t)

	created, err := svc.CreateUser(context.Background(), domain.User{
		Username: "jamie",
		Password: "pw",
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), domain.User{
		ID:       created.ID,
		Name:     "Jamie D.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jamie D.", updated.Name)
	assert.Equal(t, "jamie@example.com", updated.Email)
	assert.Equal(t, "jamie", updated.Username)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc := newUserService(t)

	created, err := svc.CreateUser(context.Background(), domain.User{Username: "jamie", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))

	_, err = svc.GetUser(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
