package service

import (
	"context"
	"fmt"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	IssueToken(ctx context.Context, req models.TokenRequest) (string, error)
}

type authService struct {
	botSecretHash []byte
	secretKey     []byte
}

// NewAuthService checks the bot secret against a bcrypt hash and signs
// tokens with secretKey.
func NewAuthService(botSecretHash, secretKey string) AuthService {
	return &authService{
		botSecretHash: []byte(botSecretHash),
		secretKey:     []byte(secretKey),
	}
}

func (s *authService) IssueToken(_ context.Context, req models.TokenRequest) (string, error) {
	if len(s.botSecretHash) == 0 || req.UserID == "" {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.botSecretHash, []byte(req.Secret)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		models.ClaimUserID: req.UserID,
		models.ClaimRole:   string(role),
		"exp":              time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}
	return signed, nil
}
