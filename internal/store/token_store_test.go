package store

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_SeededTokens(t *testing.T) {
	s := NewTokenStore([]string{"alpha", "beta", ""}, logger.Nop())

	assert.True(t, s.Contains("alpha"))
	assert.True(t, s.Contains("beta"))
	assert.False(t, s.Contains(""))
	assert.False(t, s.Contains("gamma"))
}

func TestTokenStore_AddIsIdempotent(t *testing.T) {
	s := NewTokenStore(nil, logger.Nop())

	assert.Equal(t, "tok", s.Add("tok"))
	assert.Equal(t, "tok", s.Add("tok"))
	assert.True(t, s.Contains("tok"))
}

func TestTokenStore_FirstOrDefault(t *testing.T) {
	empty := NewTokenStore(nil, logger.Nop())
	_, ok := empty.FirstOrDefault()
	assert.False(t, ok)

	seeded := NewTokenStore([]string{"only-token"}, logger.Nop())
	token, ok := seeded.FirstOrDefault()
	require.True(t, ok)
	assert.Equal(t, "only-token", token)
}

// TestTokenStore_ConcurrentAccess exercises all three operations from many
// goroutines; run with -race to verify mutual exclusion.
func TestTokenStore_ConcurrentAccess(t *testing.T) {
	s := NewTokenStore([]string{"seed"}, logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add("shared-token")
			s.Contains("seed")
			s.FirstOrDefault()
		}()
	}
	wg.Wait()

	assert.True(t, s.Contains("shared-token"))
}
