package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"storeapi/internal/models"
	"storeapi/internal/repositories"
	"storeapi/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Minute)

	// Test successful registration
	mockRepo.On("GetByUsername", ctx, "test").Return(nil, notFound("user test")).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.RegisterUser(ctx, "test", "1234")
	require.NoError(t, err)
	assert.Equal(t, "test", user.Username)
	assert.NotEqual(t, "1234", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("1234")))
	mockRepo.AssertExpectations(t)

	// Test username already taken
	mockRepo.On("GetByUsername", ctx, "test").Return(&models.User{ID: 1, Username: "test"}, nil).Once()
	_, err = authService.RegisterUser(ctx, "test", "1234")
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertExpectations(t)

	// Test storage failure during lookup
	mockRepo.On("GetByUsername", ctx, "broken").Return(nil, fmt.Errorf("connection refused")).Once()
	_, err = authService.RegisterUser(ctx, "broken", "1234")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Minute)

	mockRepo.On("GetByUsername", ctx, "test").Return(nil, notFound("user test")).Once()

	_, err := authService.RegisterUser(ctx, "test", strings.Repeat("p", 73))
	assert.ErrorIs(t, err, services.ErrPasswordTooLong)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterUser_ConcurrentDuplicate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Minute)

	// The lookup misses, but another request inserts the same username first.
	mockRepo.On("GetByUsername", ctx, "test").Return(nil, notFound("user test")).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("failed to create user test: %w", repositories.ErrDuplicate)).Once()

	_, err := authService.RegisterUser(ctx, "test", "1234")
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Minute)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Username: "test", Password: string(hashedPassword)}

	// Test successful login
	mockRepo.On("GetByUsername", ctx, "test").Return(user, nil).Once()
	token, err := authService.LoginUser(ctx, "test", "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["identity"])
	assert.Contains(t, claims, "exp")
	assert.Contains(t, claims, "jti")
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByUsername", ctx, "test").Return(user, nil).Once()
	_, err = authService.LoginUser(ctx, "test", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, notFound("user nobody")).Once()
	_, err = authService.LoginUser(ctx, "nobody", "1234")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, time.Minute)

	valid := signed(t, jwt.MapClaims{"identity": 1, "exp": jwt.TimeFunc().Add(time.Hour).Unix()}, testJWTSecret)
	claims, err := authService.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, float64(1), claims["identity"])

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid.token.string"},
		{"wrong secret", signed(t, jwt.MapClaims{"identity": 1, "exp": jwt.TimeFunc().Add(time.Hour).Unix()}, "other")},
		{"expired", signed(t, jwt.MapClaims{"identity": 1, "exp": jwt.TimeFunc().Add(-time.Hour).Unix()}, testJWTSecret)},
		{"not yet valid", signed(t, jwt.MapClaims{"identity": 1, "nbf": jwt.TimeFunc().Add(time.Hour).Unix()}, testJWTSecret)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.ValidateToken(tt.token)
			assert.ErrorIs(t, err, services.ErrInvalidToken)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Minute)
	exp := jwt.TimeFunc().Add(time.Hour).Unix()

	mockRepo.On("GetByID", ctx, uint(3)).Return(&models.User{ID: 3, Username: "test"}, nil).Once()
	user, err := authService.Authenticate(ctx, signed(t, jwt.MapClaims{"identity": 3, "exp": exp}, testJWTSecret))
	require.NoError(t, err)
	assert.Equal(t, "test", user.Username)

	mockRepo.On("GetByID", ctx, uint(4)).Return(nil, notFound("user 4")).Once()
	_, err = authService.Authenticate(ctx, signed(t, jwt.MapClaims{"identity": 4, "exp": exp}, testJWTSecret))
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	_, err = authService.Authenticate(ctx, signed(t, jwt.MapClaims{"exp": exp}, testJWTSecret))
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	mockRepo.AssertExpectations(t)
}
