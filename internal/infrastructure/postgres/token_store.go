package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/projectflow/internal/application/auth"
)

var _ auth.TokenStore = (*TokenStore)(nil)

// TokenStore conjunto de refresh tokens vigentes respaldado por PostgreSQL.
// Sobrevive reinicios del proceso, a diferencia del de memoria.
type TokenStore struct {
	q Querier
}

// NewTokenStore construye el store sobre el pool.
func NewTokenStore(q Querier) *TokenStore {
	return &TokenStore{q: q}
}

// Add registra un refresh token con su vencimiento. Re-registrar el mismo
// token solo actualiza el vencimiento.
func (s *TokenStore) Add(token string, expiresAt time.Time) error {
	_, err := s.q.Exec(context.Background(), `
		INSERT INTO refresh_tokens (token, expires_at, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (token) DO UPDATE SET expires_at = EXCLUDED.expires_at`,
		token, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// Has indica si el token sigue vigente. Las filas vencidas cuentan como
// ausentes aunque todavía no se hayan purgado.
func (s *TokenStore) Has(token string) (bool, error) {
	var exists bool
	err := s.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = $1 AND expires_at > now())`,
		token,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check refresh token: %w", err)
	}
	return exists, nil
}

// Remove revoca un token. Quitar uno inexistente no es error (logout idempotente).
func (s *TokenStore) Remove(token string) error {
	_, err := s.q.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// PurgeExpired elimina filas vencidas; pensado para invocarse periódicamente
// o desde cmd/migrate.
func (s *TokenStore) PurgeExpired() error {
	_, err := s.q.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE expires_at <= now()`)
	if err != nil {
		return fmt.Errorf("purge refresh tokens: %w", err)
	}
	return nil
}
