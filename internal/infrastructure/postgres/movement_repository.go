package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// Sin Update ni Delete: el libro es append-only y sobrevive al borrado del producto.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, user_id, product_id, type, quantity, note, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.ProductID,
		movement.Type, movement.Quantity, note, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByUser lista movimientos del usuario por fecha descendente.
// productID vacío devuelve todos.
func (r *MovementRepo) ListByUser(userID, productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, user_id, product_id, type, quantity, note, date
		FROM stock_movements WHERE user_id = $1`
	args := []any{userID}
	if productID != "" {
		query += ` AND product_id = $2`
		args = append(args, productID)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var note *string
		if err := rows.Scan(&m.ID, &m.UserID, &m.ProductID, &m.Type, &m.Quantity, &note, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByType cuenta movimientos del usuario por tipo (entry/exit).
func (r *MovementRepo) CountByType(userID, movementType string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE user_id = $1 AND type = $2`,
		userID, movementType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}
