package utils_test

import (
	"regexp"
	"strconv"
	"testing"

	"tapgas/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLoginCode_SixDigitRange(t *testing.T) {
	for range 1000 {
		code, err := utils.GenerateLoginCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestNewOrderID_ShortHex(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]{8}$`)
	seen := make(map[string]bool)
	for range 1000 {
		id, err := utils.NewOrderID()
		require.NoError(t, err)
		assert.True(t, hexRe.MatchString(id), "unexpected order id %q", id)
		assert.False(t, seen[id], "order id collision in a small sample")
		seen[id] = true
	}
}
