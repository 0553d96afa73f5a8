package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("invalid username or password")

// AuthService checks manager logins against the configured accounts.
type AuthService struct {
	managers map[string]model.Manager
}

func NewAuthService(managers []model.Manager) *AuthService {
	m := make(map[string]model.Manager, len(managers))
	for _, mgr := range managers {
		m[mgr.Username] = mgr
	}
	return &AuthService{managers: m}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Manager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, ok := s.managers[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrBadCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &m, nil
}

// HashPassword returns the bcrypt hash stored in auth.managers.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
