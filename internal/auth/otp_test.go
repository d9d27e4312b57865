package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOtpCode(t *testing.T) {
	t.Parallel()

	// Коды вида "042137" должны сохранять ведущие нули
	for i := 0; i < 100; i++ {
		code, err := GenerateOtpCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in code %s", r, code)
		}
	}
}
