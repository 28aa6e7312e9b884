package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/a2sh3r/holdengine/internal/apperrors"
)

const HeaderName = "HashSHA256"

// CalculateHash returns the hex HMAC-SHA256 of data, or "" when key is empty.
func CalculateHash(data, key string) string {
	if key == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHash accepts anything when key is empty.
func VerifyHash(data, key, hash string) error {
	if key == "" {
		return nil
	}
	want := CalculateHash(data, key)
	if !hmac.Equal([]byte(want), []byte(hash)) {
		return fmt.Errorf("%w: body hash mismatch", apperrors.ErrInvalidSignature)
	}
	return nil
}
