package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportszone/internal/auth"
	"sportszone/internal/errors"
)

func TestAuthService_IssueToken(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		userName      string
		expectedError error
	}{
		{name: "valid identity", email: "student@example.com", userName: "Student"},
		{name: "name is optional", email: "student@example.com"},
		{name: "surrounding space trimmed", email: "  student@example.com "},
		{name: "missing email", email: "   ", expectedError: errors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := auth.NewJWTService("test-secret", 0)
			service := NewAuthService(jwtService, nil)

			token, err := service.IssueToken(context.Background(), tt.email, tt.userName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "student@example.com", claims.Email)
			assert.Equal(t, tt.userName, claims.Name)
		})
	}
}
