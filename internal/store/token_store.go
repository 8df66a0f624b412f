package store

import (
	"sync"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
)

// tokenStore is the mutex-guarded implementation of [TokenStore].
// The underlying set is a map keyed by the token string; all three
// operations hold the same mutex, so no caller can observe a partial
// mutation from another goroutine.
type tokenStore struct {
	logger *logger.Logger

	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewTokenStore constructs a [TokenStore] seeded with initialTokens.
// Empty strings in the seed list are ignored.
func NewTokenStore(initialTokens []string, logger *logger.Logger) TokenStore {
	logger.Debug().Int("seed_tokens", len(initialTokens)).Msg("creating token store")

	tokens := make(map[string]struct{}, len(initialTokens))
	for _, token := range initialTokens {
		if token != "" {
			tokens[token] = struct{}{}
		}
	}

	return &tokenStore{
		logger: logger,
		tokens: tokens,
	}
}

func (s *tokenStore) Contains(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tokens[token]
	return ok
}

func (s *tokenStore) Add(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = struct{}{}
	return token
}

func (s *tokenStore) FirstOrDefault() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token := range s.tokens {
		return token, true
	}

	return "", false
}
