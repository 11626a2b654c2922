package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sreekarnv/mint/internal/auth"
	"github.com/sreekarnv/mint/internal/auth/models"
	"github.com/sreekarnv/mint/internal/auth/models/dto"
	"github.com/sreekarnv/mint/internal/events"
	"github.com/sreekarnv/mint/internal/fabric"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.User, error)
}

// Publisher defines the interface for publishing events to the fabric.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, message interface{}) error
}

type AuthService struct {
	Repo      UserRepo
	Publisher Publisher
	Tokens    *auth.TokenManager
}

func NewAuthService(repo UserRepo, publisher Publisher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		Repo:      repo,
		Publisher: publisher,
		Tokens:    tokens,
	}
}

// Signup registers a user and announces it on the fabric so the wallet
// service can provision a wallet and the notifications service can send
// the welcome email.
func (s *AuthService) Signup(ctx context.Context, req *dto.Signup) (*models.User, string, error) {
	req.Sanitize()

	existing, err := s.Repo.GetBy(ctx, "email = ?", req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil && len(*existing) > 0 {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	event := events.UserRegisteredEvent{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if err := s.Publisher.Publish(ctx, fabric.ExchangeAuthEvents, fabric.KeyUserRegistered, event); err != nil {
		return nil, "", err
	}

	token, _, err := s.Tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.Login) (*models.User, string, error) {
	req.Sanitize()

	users, err := s.Repo.GetBy(ctx, "email = ?", req.Email)
	if err != nil {
		return nil, "", err
	}
	if users == nil || len(*users) == 0 {
		return nil, "", ErrInvalidCredentials
	}

	user := (*users)[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
