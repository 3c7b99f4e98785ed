package provider_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Token counting loads BPE data through tiktoken-go, which may fetch encoding
// files on first use. Gate it the same way as other network-touching tests:
// set RUN_INTEGRATION_TESTS=true to run.
func TestCountTokens(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping token counting test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	p := newTestProvider(t)

	t.Run("known model name", func(t *testing.T) {
		handle, err := p.ChatModel("gpt-4o", nil)
		require.NoError(t, err)

		count, err := handle.CountTokens("hello world")
		require.NoError(t, err)
		assert.Greater(t, count, 0)
	})

	t.Run("unknown deployment falls back", func(t *testing.T) {
		handle, err := p.ChatModel("my-custom-deployment", nil)
		require.NoError(t, err)

		count, err := handle.CountTokens("hello world")
		require.NoError(t, err)
		assert.Greater(t, count, 0)
	})

	t.Run("image handles report zero", func(t *testing.T) {
		handle, err := p.ImageModel("imgdep", nil)
		require.NoError(t, err)

		count, err := handle.CountTokens("a watercolor fox")
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
