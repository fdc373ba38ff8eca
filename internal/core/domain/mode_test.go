package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/core/domain"
)

func TestParseLockMode(t *testing.T) {
	tests := []struct {
		input string
		want  domain.LockMode
	}{
		{input: "", want: domain.LockModeDefault},
		{input: "default", want: domain.LockModeDefault},
		{input: "strict", want: domain.LockModeStrict},
		{input: "lenient", want: domain.LockModeLenient},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			mode, err := domain.ParseLockMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestParseLockMode_Invalid(t *testing.T) {
	_, err := domain.ParseLockMode("paranoid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid lock mode")
}
