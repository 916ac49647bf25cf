package utils

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"

	"github.com/google/uuid"
)

const slugSuffixBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewPublicID kayıtların dışarıya açılan opak kimliği
func NewPublicID() string {
	return uuid.NewString()
}

// RandSuffix slug çakışmalarında sona eklenen kısa rastgele ek üretir
func RandSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(slugSuffixBytes))))
		if err != nil {
			b[i] = slugSuffixBytes[0]
			continue
		}
		b[i] = slugSuffixBytes[idx.Int64()]
	}
	return string(b)
}

// NewStateToken OAuth akışındaki CSRF koruması için rastgele state üretir
func NewStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
