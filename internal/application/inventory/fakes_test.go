package inventory_test

import (
	"context"
	"sync"

	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByUserAndID(userID, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByUserAndBarcode(userID, barcode string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.UserID == userID && p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetForUpdate en el fake equivale a GetByUserAndID: la exclusión la da el
// mutex del fakeTxRunner, igual que el row lock la da la tx real.
func (r *fakeProductRepo) GetForUpdate(userID, id string) (*entity.Product, error) {
	return r.GetByUserAndID(userID, id)
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.CurrentStock = stock
	}
	return nil
}

func (r *fakeProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok && p.UserID == userID {
		delete(r.products, id)
	}
	return nil
}

func (r *fakeProductRepo) stockOf(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		return p.CurrentStock
	}
	return -1
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{}
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByUser(userID, productID string) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	// Orden de inserción invertido: los más recientes primero, como el adaptador real.
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.UserID != userID {
			continue
		}
		if productID != "" && m.ProductID != productID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByType(userID, movementType string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.movements {
		if m.UserID == userID && m.Type == movementType {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}

// fakeTxRunner emula la transacción real: un mutex serializa los movimientos
// (como el row lock) y en caso de error se restaura el estado previo (rollback).
type fakeTxRunner struct {
	mu        sync.Mutex
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func newFakeTxRunner(products *fakeProductRepo, movements *fakeMovementRepo) *fakeTxRunner {
	return &fakeTxRunner{products: products, movements: movements}
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	productsSnap := snapshotProducts(r.products)
	movementsSnap := snapshotMovements(r.movements)

	if err := fn(r.products, r.movements); err != nil {
		restoreProducts(r.products, productsSnap)
		restoreMovements(r.movements, movementsSnap)
		return err
	}
	return nil
}

func snapshotProducts(r *fakeProductRepo) map[string]*entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

func restoreProducts(r *fakeProductRepo, snap map[string]*entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = snap
}

func snapshotMovements(r *fakeMovementRepo) []*entity.StockMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make([]*entity.StockMovement, len(r.movements))
	copy(snap, r.movements)
	return snap
}

func restoreMovements(r *fakeMovementRepo, snap []*entity.StockMovement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = snap
}
