package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params RegisterParams, hashedPassword, role string) (User, error) {
	args := m.Called(ctx, params, hashedPassword, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything, mock.AnythingOfType("string"), "USER").
			Return(User{ID: 1, Email: "a@b.c", Role: RoleUser}, nil)

		token, u, err := svc.Register(ctx, RegisterParams{
			Name: "A", Email: "a@b.c", Password: "pw",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, _, err := svc.Register(ctx, RegisterParams{Email: "a@b.c", Password: "pw"})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		repo := new(MockRepository)
		svc := NewService(repo)

		hash, _ := HashPassword("pw")
		repo.On("FindByEmail", ctx, "a@b.c").
			Return(User{ID: 1, Email: "a@b.c", Password: hash, Role: RoleUser}, nil)

		token, _, err := svc.Login(ctx, "a@b.c", "pw")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		hash, _ := HashPassword("pw")
		repo.On("FindByEmail", ctx, "a@b.c").
			Return(User{Password: hash}, nil)

		_, _, err := svc.Login(ctx, "a@b.c", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmailIsInvalidCredentials", func(t *testing.T) {
		// Same error as a wrong password; no account enumeration
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "ghost@b.c").Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "ghost@b.c", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
