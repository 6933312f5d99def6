// Package service holds the application logic between the HTTP handlers and
// the repositories.
package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"sharebnb/internal/mailer"
	"sharebnb/internal/models"
	"sharebnb/internal/repository"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username taken")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SignupInput carries the fields a new account needs.
type SignupInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// AuthService implements signup and credential verification.
type AuthService struct {
	users  repository.UserRepository
	mailer *mailer.Mailer
}

func NewAuthService(users repository.UserRepository, m *mailer.Mailer) *AuthService {
	return &AuthService{users: users, mailer: m}
}

// Signup creates a user with a bcrypt-hashed password. Duplicate email or
// username yield ErrEmailTaken / ErrUsernameTaken without touching the
// database.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
	})
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendWelcome(context.Background(), user); err != nil {
			slog.Warn("welcome mail failed", "user_id", user.ID, "error", err)
		}
	}()

	return user, nil
}

// Authenticate returns the user matching username whose bcrypt hash matches
// password. Any mismatch returns ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
