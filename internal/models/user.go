package models

import (
	"fmt"

	"github.com/a2sh3r/holdengine/internal/apperrors"
)

type Role string

const (
	RoleClient    Role = "client"
	RoleExchanger Role = "exchanger"
	RoleAdmin     Role = "admin"
)

const (
	ClaimUserID = "user_id"
	ClaimRole   = "role"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleClient, RoleExchanger, RoleAdmin:
		return r, nil
	case "":
		return RoleClient, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidCredentials, s)
	}
}

// TokenRequest is sent by the bot to act on behalf of a Discord user.
type TokenRequest struct {
	Secret string `json:"secret"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
