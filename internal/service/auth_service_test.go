package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_IssueToken(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("bot-secret"), bcrypt.MinCost)

	tests := []struct {
		name        string
		hash        string
		req         models.TokenRequest
		wantRole    string
		expectedErr error
	}{
		{
			name:     "токен обменника",
			hash:     string(hashed),
			req:      models.TokenRequest{Secret: "bot-secret", UserID: "123", Role: "exchanger"},
			wantRole: "exchanger",
		},
		{
			name:     "роль по умолчанию",
			hash:     string(hashed),
			req:      models.TokenRequest{Secret: "bot-secret", UserID: "456"},
			wantRole: "client",
		},
		{
			name:        "неправильный секрет",
			hash:        string(hashed),
			req:         models.TokenRequest{Secret: "wrong", UserID: "123"},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "секрет не настроен",
			hash:        "",
			req:         models.TokenRequest{Secret: "bot-secret", UserID: "123"},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "неизвестная роль",
			hash:        string(hashed),
			req:         models.TokenRequest{Secret: "bot-secret", UserID: "123", Role: "root"},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "пустой пользователь",
			hash:        string(hashed),
			req:         models.TokenRequest{Secret: "bot-secret"},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(tt.hash, "signing-key")
			token, err := service.IssueToken(context.Background(), tt.req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}

			claims := jwt.MapClaims{}
			if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
				return []byte("signing-key"), nil
			}); err != nil {
				t.Fatalf("token does not verify: %v", err)
			}
			if claims[models.ClaimUserID] != tt.req.UserID {
				t.Errorf("user_id = %v, want %s", claims[models.ClaimUserID], tt.req.UserID)
			}
			if claims[models.ClaimRole] != tt.wantRole {
				t.Errorf("role = %v, want %s", claims[models.ClaimRole], tt.wantRole)
			}
		})
	}
}
