package users

import (
	"context"
	"testing"

	"foodgram/internal/domain"
	"foodgram/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) UpdateAvatar(ctx context.Context, id int64, avatar string) error {
	return m.Called(ctx, id, avatar).Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Email:     "ivan@example.com",
		Username:  "ivan",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Password:  "secret123",
	}
}

func TestService_Register_RaceOnUsername(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByEmail", mock.Anything, "ivan@example.com").Return(false, nil)
	users.On("ExistsByUsername", mock.Anything, "ivan").Return(false, nil).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
	users.On("ExistsByUsername", mock.Anything, "ivan").Return(true, nil).Once()

	_, err := NewService(users, nil, nil).Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertExpectations(t)
}

func TestService_Register_RaceOnEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByEmail", mock.Anything, "ivan@example.com").Return(false, nil)
	users.On("ExistsByUsername", mock.Anything, "ivan").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := NewService(users, nil, nil).Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrEmailTaken)
}
