package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID     map[string]*entity.User
	byEmail  map[string]*entity.User
	maxCode  string
	emailErr error // si está seteado, FindByEmail falla con él
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.emailErr != nil {
		return nil, r.emailErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

func (r *fakeUserRepo) MaxCodeForPrefix(prefix string) (string, error) { return r.maxCode, nil }

type fakeRoleRepo struct{}

func (fakeRoleRepo) Exists(id string) (bool, error) {
	return id == entity.RoleAdmin || id == entity.RoleStaff, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Alta básica: primer miembro recibe ST001, rol por defecto staff y el hash
// bcrypt verifica contra la contraseña original.
func TestUserCreate_PrimerMiembro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, fakeRoleRepo{})

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Ana Gómez",
		Email:    "ana@almacen.local",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ST001", out.Code)
	assert.Equal(t, entity.RoleStaff, out.Role, "sin rol explícito debe quedar staff")

	stored := repo.byID[out.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash almacenado debe verificar contra la contraseña")
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
}

// El código se genera como sucesor del mayor existente, no por conteo.
func TestUserCreate_CodigoSucesorDelMaximo(t *testing.T) {
	repo := newFakeUserRepo()
	repo.maxCode = "ST009"
	uc := usecase.NewUserUseCase(repo, fakeRoleRepo{})

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Luis Rojas",
		Email:    "luis@almacen.local",
		Password: "secreta123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "ST010", out.Code)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

// Email duplicado rechaza el alta con el sentinel correspondiente.
func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, fakeRoleRepo{})

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@almacen.local", Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{
		Name: "Otra Ana", Email: "ana@almacen.local", Password: "distinta456",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Rol fuera de la tabla sembrada rechaza el alta.
func TestUserCreate_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), fakeRoleRepo{})

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@almacen.local", Password: "secreta123",
		Role: "superuser",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un fallo real del store en la verificación de email se propaga, no se
// interpreta como "email libre".
func TestUserCreate_FalloDeStoreSePropaga(t *testing.T) {
	repo := newFakeUserRepo()
	repo.emailErr = errors.New("conexión perdida")
	uc := usecase.NewUserUseCase(repo, fakeRoleRepo{})

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@almacen.local", Password: "secreta123",
	})
	require.EqualError(t, err, "conexión perdida")
	assert.Empty(t, repo.byID, "no debe quedar usuario creado")
}

// Baja de un id inexistente: not found nombrando el id.
func TestUserDelete_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), fakeRoleRepo{})

	const missing = "00000000-0000-0000-0000-00000000dead"
	err := uc.Delete(missing)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, err.Error(), missing, "el mensaje debe nombrar el id faltante")
}
