package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/auth"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	pkgjwt "github.com/AiXTwilight/Inventory-Sales-Management-System/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "retaildash-test"}

// fakeAdminRepo implementación en memoria del puerto de admins.
type fakeAdminRepo struct {
	byEmail map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*entity.Admin)}
}

func (r *fakeAdminRepo) Create(a *entity.Admin) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[a.Email] = a
	return nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*entity.Admin, error) {
	return r.byEmail[email], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaElPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg)

	out, err := uc.Register(dto.RegisterRequest{Email: "admin@tienda.com", Password: "super-secreta"})

	require.NoError(t, err)
	assert.Equal(t, "admin@tienda.com", out.Email)
	assert.NotEmpty(t, out.ID)

	stored := repo.byEmail["admin@tienda.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("super-secreta")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "admin@tienda.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "admin@tienda.com", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeAdminRepo(), jwtCfg)

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 8 caracteres")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GeneraTokenConElAdminID(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg)
	reg, err := uc.Register(dto.RegisterRequest{Email: "admin@tienda.com", Password: "super-secreta"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@tienda.com", Password: "super-secreta"})

	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.Admin.ID)

	adminID, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, adminID, "el token debe llevar el ID del admin")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := auth.NewAuthUseCase(repo, jwtCfg)
	_, err := uc.Register(dto.RegisterRequest{Email: "admin@tienda.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@tienda.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeAdminRepo(), jwtCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.com", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
