package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/projectflow/internal/application/auth"
	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria, suficiente para los flujos de auth.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*entity.User{},
		byEmail: map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) List(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
	return nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, memory.NewTokenStore(), auth.JWTConfig{
		Secret:        "access-secret-de-test",
		RefreshSecret: "refresh-secret-de-test",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "projectflow-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYDevuelveTokens(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	out, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "Pérez",
		Email:     "ANA@Example.com",
		Password:  "secreto123",
		Role:      entity.RoleProjectManager,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", out.User.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleProjectManager, out.User.Role)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRegister_RolNoPermitidoCaeA_TeamMember(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	out, err := uc.Register(dto.RegisterRequest{
		FirstName: "Eva",
		LastName:  "López",
		Email:     "eva@example.com",
		Password:  "secreto123",
		Role:      entity.RoleAdmin, // el autoregistro no permite admin
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTeamMember, out.User.Role)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	casos := []struct {
		nombre string
		req    dto.RegisterRequest
	}{
		{"vacío total", dto.RegisterRequest{}},
		{"sin nombre", dto.RegisterRequest{LastName: "Pérez", Email: "ana@example.com", Password: "secreto123"}},
		{"sin apellido", dto.RegisterRequest{FirstName: "Ana", Email: "ana@example.com", Password: "secreto123"}},
		{"sin email", dto.RegisterRequest{FirstName: "Ana", LastName: "Pérez", Password: "secreto123"}},
		{"email sin arroba", dto.RegisterRequest{FirstName: "Ana", LastName: "Pérez", Email: "ana.example.com", Password: "secreto123"}},
		{"password corto", dto.RegisterRequest{FirstName: "Ana", LastName: "Pérez", Email: "ana@example.com", Password: "abc"}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			out, err := uc.Register(c.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, out, "una entrada inválida no debe emitir tokens")
		})
	}
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	req := dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreto123",
	}
	_, err := uc.Register(req)
	require.NoError(t, err)

	_, err = uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogin_MismoErrorParaEmailYPasswordIncorrectos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "no-existe@example.com", Password: "secreto123"})
	_, errPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized,
		"email inexistente y password incorrecto devuelven el mismo error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotaElToken_YRechazaElViejo(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	reg, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	pair, err := uc.Refresh(reg.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, pair.RefreshToken)

	// El token viejo quedó fuera del store: un replay debe fallar.
	_, err = uc.Refresh(reg.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// El nuevo sí rota.
	_, err = uc.Refresh(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_TokenDesconocido(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Refresh("token-que-nunca-se-emitio")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = uc.Refresh("")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_Idempotente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	reg, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(reg.RefreshToken))
	require.NoError(t, uc.Logout(reg.RefreshToken), "repetir logout no es un error")
	require.NoError(t, uc.Logout(""))

	// Tras el logout el refresh queda revocado.
	_, err = uc.Refresh(reg.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Me("id-inexistente")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
