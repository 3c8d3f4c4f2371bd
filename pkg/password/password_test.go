package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123", hash)
	assert.NoError(t, Check("Secret123", hash))
	assert.Error(t, Check("secret123", hash))
}
