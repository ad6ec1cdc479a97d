package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransactionCode(t *testing.T) {
	code := GenerateTransactionCode(CodePrefixInvestment)

	assert.Len(t, code, 17)
	assert.Regexp(t, regexp.MustCompile(`^INV\d{8}[0-9A-F]{6}$`), code)
	assert.Contains(t, code, time.Now().Format("20060102"))

	// Codes are unique enough not to collide in a small batch
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := GenerateTransactionCode(CodePrefixDeposit)
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
	}
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), token)

	short, err := GenerateToken(16)
	require.NoError(t, err)
	assert.Len(t, short, 32)
	assert.NotEqual(t, token, short)
}

func TestGenerateUsername(t *testing.T) {
	name := GenerateUsername("Ana Souza")
	assert.Regexp(t, regexp.MustCompile(`^anasouza\d{3}$`), name)

	long := GenerateUsername("A Very Long Display Name Indeed")
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{15}\d{3}$`), long)

	empty := GenerateUsername("!!! ???")
	assert.Regexp(t, regexp.MustCompile(`^user\d{3}$`), empty)
}
