package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sportszone/internal/auth"
	"sportszone/internal/errors"
)

// AuthService issues bearer tokens for identities verified by the client's
// identity provider.
type AuthService interface {
	IssueToken(ctx context.Context, email, name string) (string, error)
}

type authService struct {
	jwtService *auth.JWTService
	log        *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(jwtService *auth.JWTService, log *zap.Logger) AuthService {
	return &authService{jwtService: jwtService, log: orNop(log)}
}

// IssueToken signs a token carrying email and name.
func (s *authService) IssueToken(ctx context.Context, email, name string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", errors.ErrValidation)
	}

	token, err := s.jwtService.GenerateToken(email, name)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.log.Debug("token issued", zap.String("email", email))
	return token, nil
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
