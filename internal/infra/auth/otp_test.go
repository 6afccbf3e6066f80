package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOTPGenerator_RequiresKey(t *testing.T) {
	_, err := NewOTPGenerator("")
	require.Error(t, err)
}

func TestOTPGenerator_Generate_ProducesSixDigitCode(t *testing.T) {
	gen, err := NewOTPGenerator("test-key")
	require.NoError(t, err)

	for range 50 {
		code, hash, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^\d{6}$`, code)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, code, hash)
	}
}

func TestOTPGenerator_Verify(t *testing.T) {
	gen, err := NewOTPGenerator("test-key")
	require.NoError(t, err)

	code, hash, err := gen.Generate()
	require.NoError(t, err)

	assert.True(t, gen.Verify(hash, code))
	assert.False(t, gen.Verify(hash, "000000"), "a different code must not verify")
	assert.False(t, gen.Verify("", code), "empty hash means no live challenge")
	assert.False(t, gen.Verify(hash, ""))
}

func TestOTPGenerator_Verify_DifferentKeyRejects(t *testing.T) {
	genA, err := NewOTPGenerator("key-a")
	require.NoError(t, err)
	genB, err := NewOTPGenerator("key-b")
	require.NoError(t, err)

	code, hash, err := genA.Generate()
	require.NoError(t, err)

	assert.True(t, genA.Verify(hash, code))
	assert.False(t, genB.Verify(hash, code), "hashes are keyed, a different key must not verify")
}
