package services

import (
	"context"
	"errors"
	"strings"

	"agrodoc/models"
	"agrodoc/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles dashboard user credentials. Token minting lives in the
// middleware package; this only deals with users.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, *ServiceError)
	Signup(ctx context.Context, email, password string) (*models.User, *ServiceError)
	Confirm(ctx context.Context, token string) *ServiceError
}

type authServiceImpl struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, logger *zap.Logger) AuthService {
	return &authServiceImpl{users: users, logger: logger}
}

// Login verifies credentials. Wrong email and wrong password return the same
// message.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, *ServiceError) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, &ServiceError{StatusCode: 400, Message: "email and password are required"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 401, Message: "invalid credentials"}
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "login failed"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "invalid credentials"}
	}

	return user, nil
}

// Signup creates an unconfirmed user with a fresh confirmation token.
func (s *authServiceImpl) Signup(ctx context.Context, email, password string) (*models.User, *ServiceError) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, &ServiceError{StatusCode: 400, Message: "email and a password of at least 8 characters are required"}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, &ServiceError{StatusCode: 409, Message: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "signup failed"}
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		ConfirmToken: uuid.NewString(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "signup failed"}
	}

	s.logger.Info("User signed up", zap.String("email", email))
	return user, nil
}

// Confirm marks the user matching the token as email-confirmed.
func (s *authServiceImpl) Confirm(ctx context.Context, token string) *ServiceError {
	if token == "" {
		return &ServiceError{StatusCode: 400, Message: "confirmation token is required"}
	}

	user, err := s.users.FindByConfirmToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "unknown confirmation token"}
		}
		s.logger.Error("Failed to look up confirmation token", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "confirmation failed"}
	}

	user.EmailConfirmed = true
	user.ConfirmToken = ""
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Failed to confirm user", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "confirmation failed"}
	}

	return nil
}
