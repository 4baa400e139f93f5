package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El runner trabaja sobre una copia y solo la aplica si el
// callback no falla, imitando el Commit/Rollback del TxRunner real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products map[string]*entity.Product
	headers  []*entity.WarehouseTransaction
	items    []*entity.TransactionItem
	users    map[string]*entity.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		users:    map[string]*entity.User{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, u := range s.users {
		cu := *u
		c.users[id] = &cu
	}
	c.headers = append(c.headers, s.headers...)
	c.items = append(c.items, s.items...)
	return c
}

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.TransactionRepository) error) error {
	work := r.store.clone()
	if err := fn(&fakeProductRepo{store: work}, &fakeTxRepo{store: work}); err != nil {
		return err
	}
	*r.store = *work
	return nil
}

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, quantity int64, statusID string) error {
	p := r.store.products[id]
	p.Quantity = quantity
	p.StatusID = statusID
	return nil
}
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }
func (r *fakeProductRepo) MaxCodeForPrefix(string) (string, error)  { return "", nil }

type fakeTxRepo struct {
	store *fakeStore
}

func (r *fakeTxRepo) CreateHeader(tx *entity.WarehouseTransaction) error {
	r.store.headers = append(r.store.headers, tx)
	return nil
}
func (r *fakeTxRepo) CreateItem(item *entity.TransactionItem) error {
	r.store.items = append(r.store.items, item)
	return nil
}
func (r *fakeTxRepo) GetByID(string) (*entity.WarehouseTransaction, error) { return nil, nil }
func (r *fakeTxRepo) List(int, int) ([]*entity.WarehouseTransaction, error) {
	return nil, nil
}
func (r *fakeTxRepo) ItemsByTransactionIDs([]string) (map[string][]*entity.TransactionItem, error) {
	return nil, nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(u *entity.User) error              { r.store.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)  { return r.store.users[id], nil }
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) Delete(string) error                      { return nil }
func (r *fakeUserRepo) MaxCodeForPrefix(string) (string, error)  { return "", nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	userID    = "10000000-0000-0000-0000-000000000001"
	productA  = "20000000-0000-0000-0000-00000000000a"
	productB  = "20000000-0000-0000-0000-00000000000b"
	missingID = "20000000-0000-0000-0000-0000000000ff"
)

func buildUseCase(t *testing.T, products ...*entity.Product) (*ledger.RecordTransactionUseCase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.users[userID] = &entity.User{ID: userID, Name: "Ana", Role: entity.RoleAdmin}
	for _, p := range products {
		store.products[p.ID] = p
	}
	uc := ledger.NewRecordTransactionUseCase(&fakeTxRunner{store: store}, &fakeUserRepo{store: store})
	return uc, store
}

func product(id string, quantity, threshold int64) *entity.Product {
	return &entity.Product{
		ID:             id,
		Code:           "AB001",
		Name:           "café molido",
		Quantity:       quantity,
		AlertThreshold: threshold,
		StatusID:       entity.StatusFine,
		CreatedAt:      time.Now(),
	}
}

func input(items ...ledger.ItemInput) ledger.TransactionInput {
	return ledger.TransactionInput{
		Title:     "reposición semanal",
		Type:      entity.TransactionTypeImport,
		CreatedBy: userID,
		Items:     items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación tras el movimiento (escenarios de borde)
// ──────────────────────────────────────────────────────────────────────────────

// Salida exacta a cero: el estado queda out, no low.
func TestRecordTransaction_SalidaACero(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 5, 5))

	txID, err := uc.RecordTransaction(context.Background(), input(ledger.ItemInput{ProductID: productA, QuantityChange: -5}))
	require.NoError(t, err)
	require.NotEmpty(t, txID)

	p := store.products[productA]
	assert.Equal(t, int64(0), p.Quantity)
	assert.Equal(t, entity.StatusOut, p.StatusID)
}

// Caída por debajo del umbral: low.
func TestRecordTransaction_BajoUmbral(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 10, 5))

	_, err := uc.RecordTransaction(context.Background(), input(ledger.ItemInput{ProductID: productA, QuantityChange: -6}))
	require.NoError(t, err)

	p := store.products[productA]
	assert.Equal(t, int64(4), p.Quantity)
	assert.Equal(t, entity.StatusLow, p.StatusID)
}

// Entrada que repone por encima del umbral: fine.
func TestRecordTransaction_Reposicion(t *testing.T) {
	prod := product(productA, 0, 3)
	prod.StatusID = entity.StatusOut
	uc, store := buildUseCase(t, prod)

	_, err := uc.RecordTransaction(context.Background(), input(ledger.ItemInput{ProductID: productA, QuantityChange: 10}))
	require.NoError(t, err)

	p := store.products[productA]
	assert.Equal(t, int64(10), p.Quantity)
	assert.Equal(t, entity.StatusFine, p.StatusID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Items y propiedades del libro
// ──────────────────────────────────────────────────────────────────────────────

// Cada item cumple before + change == after, y la suma de deltas iguala la
// variación total de stock.
func TestRecordTransaction_InvarianteDeItems(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 10, 3), product(productB, 7, 2))
	beforeTotal := store.products[productA].Quantity + store.products[productB].Quantity

	_, err := uc.RecordTransaction(context.Background(), input(
		ledger.ItemInput{ProductID: productA, QuantityChange: -4},
		ledger.ItemInput{ProductID: productB, QuantityChange: 9},
	))
	require.NoError(t, err)
	require.Len(t, store.items, 2)

	var sumDeltas int64
	for _, item := range store.items {
		assert.Equal(t, item.AfterQuantity, item.BeforeQuantity+item.QuantityChange)
		sumDeltas += item.QuantityChange
	}
	afterTotal := store.products[productA].Quantity + store.products[productB].Quantity
	assert.Equal(t, afterTotal-beforeTotal, sumDeltas)

	// El orden de los items es el del caller.
	assert.Equal(t, 0, store.items[0].Position)
	assert.Equal(t, productA, store.items[0].ProductID)
	assert.Equal(t, 1, store.items[1].Position)
	assert.Equal(t, productB, store.items[1].ProductID)
}

// Dos items sobre el mismo producto se acumulan en secuencia.
func TestRecordTransaction_ItemsRepetidosSeAcumulan(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 10, 3))

	_, err := uc.RecordTransaction(context.Background(), input(
		ledger.ItemInput{ProductID: productA, QuantityChange: -4},
		ledger.ItemInput{ProductID: productA, QuantityChange: -2},
	))
	require.NoError(t, err)
	require.Len(t, store.items, 2)

	assert.Equal(t, int64(10), store.items[0].BeforeQuantity)
	assert.Equal(t, int64(6), store.items[0].AfterQuantity)
	assert.Equal(t, int64(6), store.items[1].BeforeQuantity)
	assert.Equal(t, int64(4), store.items[1].AfterQuantity)
	assert.Equal(t, int64(4), store.products[productA].Quantity)
}

// La cabecera se persiste con los datos de entrada y el mismo id devuelto.
func TestRecordTransaction_Cabecera(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 10, 3))

	in := input(ledger.ItemInput{ProductID: productA, QuantityChange: 1})
	in.Note = "conteo físico"
	txID, err := uc.RecordTransaction(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, store.headers, 1)
	header := store.headers[0]
	assert.Equal(t, txID, header.ID)
	assert.Equal(t, "reposición semanal", header.Title)
	assert.Equal(t, entity.TransactionTypeImport, header.Type)
	assert.Equal(t, "conteo físico", header.Note)
	assert.Equal(t, userID, header.CreatedBy)
	assert.False(t, header.CreatedAt.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordTransaction_Validacion(t *testing.T) {
	uc, _ := buildUseCase(t, product(productA, 10, 3))
	valid := input(ledger.ItemInput{ProductID: productA, QuantityChange: 1})

	cases := []struct {
		name   string
		mutate func(*ledger.TransactionInput)
	}{
		{"sin título", func(in *ledger.TransactionInput) { in.Title = "" }},
		{"sin creador", func(in *ledger.TransactionInput) { in.CreatedBy = "" }},
		{"tipo desconocido", func(in *ledger.TransactionInput) { in.Type = "TRANSFER" }},
		{"sin items", func(in *ledger.TransactionInput) { in.Items = nil }},
		{"delta cero", func(in *ledger.TransactionInput) {
			in.Items = []ledger.ItemInput{{ProductID: productA, QuantityChange: 0}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			in.Items = append([]ledger.ItemInput(nil), valid.Items...)
			tc.mutate(&in)
			_, err := uc.RecordTransaction(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Un product_id inexistente aborta la transacción completa: sin cabecera,
// sin items y sin tocar los productos válidos que la acompañaban.
func TestRecordTransaction_ProductoInexistenteNoMutaNada(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 10, 3))

	_, err := uc.RecordTransaction(context.Background(), input(
		ledger.ItemInput{ProductID: productA, QuantityChange: -4},
		ledger.ItemInput{ProductID: missingID, QuantityChange: 2},
	))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), missingID, "el error debe nombrar el id faltante")

	assert.Empty(t, store.headers)
	assert.Empty(t, store.items)
	assert.Equal(t, int64(10), store.products[productA].Quantity)
	assert.Equal(t, entity.StatusFine, store.products[productA].StatusID)
}

// Un creador inexistente también falla nombrando el id, antes de cualquier escritura.
func TestRecordTransaction_CreadorInexistente(t *testing.T) {
	uc, store := buildUseCase(t, product(productA, 10, 3))

	in := input(ledger.ItemInput{ProductID: productA, QuantityChange: 1})
	in.CreatedBy = missingID
	_, err := uc.RecordTransaction(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), missingID)
	assert.Empty(t, store.headers)
}
