// Package memory ofrece adaptadores en memoria para despliegues de un solo
// nodo y para tests. No sobreviven reinicios del proceso.
package memory

import (
	"sync"
	"time"

	"github.com/tu-usuario/projectflow/internal/application/auth"
)

var _ auth.TokenStore = (*TokenStore)(nil)

// TokenStore conjunto revocable de refresh tokens guardado en un mapa.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

// NewTokenStore construye el store vacío.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]time.Time)}
}

// Add registra un token con su vencimiento.
func (s *TokenStore) Add(token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = expiresAt
	return nil
}

// Has indica si el token existe y no ha vencido. Los vencidos se purgan al paso.
func (s *TokenStore) Has(token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(s.tokens, token)
		return false, nil
	}
	return true, nil
}

// Remove revoca un token; quitar uno inexistente no es error.
func (s *TokenStore) Remove(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
