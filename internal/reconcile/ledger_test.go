package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueID(t *testing.T) {
	t.Run("deterministic for the same method and hash", func(t *testing.T) {
		first := UniqueID("eth-native", "0xabc")
		second := UniqueID("eth-native", "0xabc")

		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("differs across transaction hashes", func(t *testing.T) {
		assert.NotEqual(t, UniqueID("eth-native", "0xabc"), UniqueID("eth-native", "0xdef"))
	})

	t.Run("differs across deposit methods", func(t *testing.T) {
		assert.NotEqual(t, UniqueID("eth-native", "0xabc"), UniqueID("matic-native", "0xabc"))
	})
}
