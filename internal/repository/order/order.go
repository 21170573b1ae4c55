package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

const orderColumns = `id, pharmacy_id, status, payment_mode, delivery_code,
		delivery_fee, total_amount, delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository lock error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status entities.OrderStatusType, deliveredAt *time.Time) error {
	query := `
		UPDATE orders
		SET status = $2,
			delivered_at = COALESCE($3, delivered_at),
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, status.String(), deliveredAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository set status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.PharmacyID,
		&orderDB.Status,
		&orderDB.PaymentMode,
		&orderDB.DeliveryCode,
		&orderDB.DeliveryFee,
		&orderDB.TotalAmount,
		&orderDB.DeliveredAt,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}
