package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) sobre el producto y Commit/Rollback.
// Dos movimientos concurrentes sobre el mismo producto se serializan en el
// lock: nunca dos salidas pueden consumir el mismo stock.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Register valida la petición y aplica el movimiento dentro de una transacción:
//
//  1. Bloquea la fila del producto (GetForUpdate).
//  2. Calcula delta = +quantity (entry) o -quantity (exit).
//  3. Si el stock resultante sería negativo, ErrInsufficientStock y rollback.
//  4. Persiste el movimiento y el nuevo stock como una sola unidad.
//
// Devuelve ErrInvalidInput si el tipo no es entry/exit o quantity <= 0,
// ErrNotFound si el producto no existe o no pertenece al usuario.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if userID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.StockMovement{
		ID:        entity.NewID("mov"),
		UserID:    userID,
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Note:      in.Note,
		Date:      time.Now().UTC(),
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(userID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newStock := product.CurrentStock + movement.Delta()
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(movement), nil
}

// MovementQueryUseCase lecturas del libro de movimientos.
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso de consulta.
func NewMovementQueryUseCase(movementRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// List devuelve los movimientos del usuario por fecha descendente,
// opcionalmente filtrados por producto. Incluye historial de productos borrados.
func (uc *MovementQueryUseCase) List(userID, productID string) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListByUser(userID, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		MovementID: m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Note:       m.Note,
		Date:       m.Date,
	}
}
