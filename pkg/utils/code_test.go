package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestHashOTPIsDeterministic(t *testing.T) {
	assert.Equal(t, HashOTP("123456"), HashOTP("123456"))
	assert.NotEqual(t, HashOTP("123456"), HashOTP("654321"))
}

func TestGenerateUploadID(t *testing.T) {
	id := GenerateUploadID()
	assert.True(t, strings.HasPrefix(id, "UPL-"))
	assert.Len(t, id, 12)
	assert.NotEqual(t, id, GenerateUploadID())
}
