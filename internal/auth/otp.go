package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOtpCode генерирует криптостойкий 6-значный числовой код
func GenerateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
