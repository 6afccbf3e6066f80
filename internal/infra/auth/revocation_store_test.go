package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore_RevokeAndCheck(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	store.Revoke("token-a", time.Minute)

	assert.True(t, store.IsRevoked("token-a"))
	assert.False(t, store.IsRevoked("token-b"))
}

func TestMemoryRevocationStore_ExpiredEntryNoLongerRevoked(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	store.Revoke("token-a", 10*time.Millisecond)
	assert.True(t, store.IsRevoked("token-a"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.IsRevoked("token-a"), "the natural expiry check takes over once the TTL passes")
}

func TestMemoryRevocationStore_NonPositiveTTLIsNoop(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	store.Revoke("token-a", 0)
	store.Revoke("token-b", -time.Minute)

	assert.False(t, store.IsRevoked("token-a"))
	assert.False(t, store.IsRevoked("token-b"))
}

func TestMemoryRevocationStore_PruneRemovesExpiredEntries(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	mem, ok := store.(*memoryRevocationStore)
	require.True(t, ok)

	store.Revoke("live", time.Hour)
	store.Revoke("dead", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	mem.prune(time.Now())

	mem.mu.RLock()
	defer mem.mu.RUnlock()
	assert.Contains(t, mem.entries, "live")
	assert.NotContains(t, mem.entries, "dead")
}
