package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailability(t *testing.T) {
	t.Run("reports installed tool", func(t *testing.T) {
		result := CheckAvailability("ls")

		require.Contains(t, result, "ls")
		assert.True(t, result["ls"])
	})

	t.Run("reports missing tool", func(t *testing.T) {
		result := CheckAvailability("no-such-validation-tool-12345")

		require.Contains(t, result, "no-such-validation-tool-12345")
		assert.False(t, result["no-such-validation-tool-12345"])
	})

	t.Run("handles multiple tools in one call", func(t *testing.T) {
		result := CheckAvailability("ls", "cat", "no-such-tool-xyz")

		assert.Len(t, result, 3)
		assert.True(t, result["ls"])
		assert.True(t, result["cat"])
		assert.False(t, result["no-such-tool-xyz"])
	})

	t.Run("empty call returns empty map", func(t *testing.T) {
		result := CheckAvailability()
		assert.Empty(t, result)
	})
}
