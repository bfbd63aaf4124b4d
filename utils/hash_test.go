package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalletHash(t *testing.T) {
	t.Parallel()

	first, err := NewWalletHash()
	require.NoError(t, err)
	assert.Len(t, first, 64)

	_, err = hex.DecodeString(first)
	assert.NoError(t, err)

	second, err := NewWalletHash()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
