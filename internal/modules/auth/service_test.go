package auth

import (
	"context"
	"errors"
	"testing"

	"foodgram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenIssuer)
	users.On("GetByEmail", mock.Anything, "ivan@example.com").
		Return(&domain.User{ID: 7, PasswordHash: hashed(t, "secret123")}, nil)
	tokens.On("GenerateToken", int64(7)).Return("signed-token", nil)

	svc := NewService(users, tokens)
	token, err := svc.Login(context.Background(), LoginRequest{Email: " Ivan@Example.com ", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenIssuer)
	users.On("GetByEmail", mock.Anything, "ivan@example.com").
		Return(&domain.User{ID: 7, PasswordHash: hashed(t, "secret123")}, nil)

	svc := NewService(users, tokens)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ivan@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, new(mockTokenIssuer))
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_StorageError(t *testing.T) {
	users := new(mockUserRepo)
	boom := errors.New("connection refused")
	users.On("GetByEmail", mock.Anything, "ivan@example.com").Return(nil, boom)

	svc := NewService(users, new(mockTokenIssuer))
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ivan@example.com", Password: "x"})

	assert.ErrorIs(t, err, boom)
}
