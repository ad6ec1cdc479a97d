package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transaction code prefixes
const (
	CodePrefixInvestment = "INV"
	CodePrefixDeposit    = "DEP"
	CodePrefixWithdrawal = "WIT"
	CodePrefixReturn     = "RET"
)

// GenerateTransactionCode builds a ledger code like INV20260828A1B2C3:
// prefix + current date + 6-char random suffix
func GenerateTransactionCode(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return prefix + time.Now().Format("20060102") + suffix
}

// GenerateToken returns a random hex token of the given byte length.
// 32 bytes gives the 256-bit remember token.
func GenerateToken(bytes int) (string, error) {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateUsername derives a login name from the display name plus a random
// numeric tail to keep it unique enough for the insert to succeed
func GenerateUsername(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	base := b.String()
	if len(base) > 15 {
		base = base[:15]
	}
	if base == "" {
		base = "user"
	}
	return base + fmt.Sprintf("%03d", mrand.Intn(1000))
}
