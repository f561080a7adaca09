package auth

import "time"

// TokenStore conjunto revocable de refresh tokens vigentes. Es una dependencia
// inyectada del caso de uso (no un singleton): en producción lo respalda una
// tabla de PostgreSQL; en tests, un mapa en memoria.
type TokenStore interface {
	Add(token string, expiresAt time.Time) error
	Has(token string) (bool, error)
	Remove(token string) error
}
