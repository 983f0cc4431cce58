package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
	assert.False(t, Verify("", hash))
}

func TestHashIsSaltedAndOpaque(t *testing.T) {
	h1, err := Hash("same input")
	require.NoError(t, err)
	h2, err := Hash("same input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NotContains(t, h1, "same input")
	assert.True(t, strings.Contains(h1, ":"))
}

func TestVerifyMalformedCredential(t *testing.T) {
	assert.False(t, Verify("pw", ""))
	assert.False(t, Verify("pw", "no-separator"))
	assert.False(t, Verify("pw", "!!!not-base64:alsonot"))
}
