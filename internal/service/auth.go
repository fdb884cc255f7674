// Package service contains the business rules of the blog service.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goblog/blog-service/internal/models"
	"github.com/goblog/blog-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnknownEmail is returned when logging in with an email that has no
	// account.
	ErrUnknownEmail = errors.New("no account associated with email")
	// ErrIncorrectPassword is returned when the password does not match the
	// stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
)

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash. A duplicate email aborts before any row is written.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index is the authority; a concurrent registration for
		// the same email loses here even after the lookup above passed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password are distinct
// outcomes so the caller can show distinct messages.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return user, nil
}

// UserByID resolves a stored session identifier back to a User.
func (s *authService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
