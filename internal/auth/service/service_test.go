package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/auth/models"
	"github.com/sreekarnv/mint/internal/auth/models/dto"
	"github.com/sreekarnv/mint/internal/auth/service"
	"github.com/sreekarnv/mint/internal/auth/service/mocks"
	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestSignup(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	authService := service.NewAuthService(mockRepo, mockPublisher, newTokenManager())

	ctx := context.Background()
	req := &dto.Signup{
		Email:     "A@Mint.dev ",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	mockRepo.EXPECT().
		GetBy(ctx, "email = ?", "a@mint.dev").
		Return(nil, nil).
		Once()

	mockRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *models.User) bool {
			// The password is stored hashed, never verbatim.
			return user.Email == "a@mint.dev" &&
				user.Password != "supersecret" &&
				bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")) == nil
		})).
		Run(func(_ context.Context, user *models.User) {
			user.ID = "user-123"
		}).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, fabric.ExchangeAuthEvents, fabric.KeyUserRegistered, mock.MatchedBy(func(evt events.UserRegisteredEvent) bool {
			return evt.ID == "user-123" && evt.Email == "a@mint.dev"
		})).
		Return(nil).
		Once()

	user, token, err := authService.Signup(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestSignup_EmailTaken(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	authService := service.NewAuthService(mockRepo, mockPublisher, newTokenManager())

	ctx := context.Background()
	req := &dto.Signup{
		Email:     "taken@mint.dev",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	mockRepo.EXPECT().
		GetBy(ctx, "email = ?", "taken@mint.dev").
		Return(&[]models.User{{ID: "user-existing", Email: "taken@mint.dev"}}, nil).
		Once()

	user, token, err := authService.Signup(ctx, req)

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, service.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	authService := service.NewAuthService(mockRepo, mockPublisher, newTokenManager())

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetBy(ctx, "email = ?", "a@mint.dev").
		Return(&[]models.User{{ID: "user-123", Email: "a@mint.dev", Password: string(hash)}}, nil).
		Once()

	user, token, err := authService.Login(ctx, &dto.Login{Email: "a@mint.dev", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	authService := service.NewAuthService(mockRepo, mockPublisher, newTokenManager())

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetBy(ctx, "email = ?", "a@mint.dev").
		Return(&[]models.User{{ID: "user-123", Email: "a@mint.dev", Password: string(hash)}}, nil).
		Once()

	user, token, err := authService.Login(ctx, &dto.Login{Email: "a@mint.dev", Password: "wrong-password"})

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	authService := service.NewAuthService(mockRepo, mockPublisher, newTokenManager())

	ctx := context.Background()

	mockRepo.EXPECT().
		GetBy(ctx, "email = ?", "ghost@mint.dev").
		Return(nil, nil).
		Once()

	user, token, err := authService.Login(ctx, &dto.Login{Email: "ghost@mint.dev", Password: "whatever"})

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
