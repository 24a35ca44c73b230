package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetCodeFormat(t *testing.T) {
	for i := 0; i < 32; i++ {
		code, err := NewResetCode()
		require.NoError(t, err)
		// 定长补零，不足 6 位的数值也得是 6 个字符
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', code)
		}
	}
}
