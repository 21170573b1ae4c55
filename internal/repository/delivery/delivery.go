package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, order_id, courier_id, status, pickup_lat, pickup_lon,
		dropoff_lat, dropoff_lon, estimated_distance_m, delivery_fee,
		waiting_started_at, picked_up_at, delivered_at, customer_rating,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, status, pickup_lat, pickup_lon,
			dropoff_lat, dropoff_lon, estimated_distance_m, delivery_fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + deliveryColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		deliveryEntity.OrderID,
		deliveryEntity.Status.String(),
		deliveryEntity.PickupLat,
		deliveryEntity.PickupLon,
		deliveryEntity.DropoffLat,
		deliveryEntity.DropoffLon,
		deliveryEntity.EstimatedDistanceM,
		deliveryEntity.DeliveryFee,
	)

	deliveryDB, err := scanDelivery(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.
		Update("deliveries")

	if deliveryModifyDB.CourierID != nil {
		builder = builder.Set("courier_id", deliveryModifyDB.CourierID)
	}
	if deliveryModifyDB.Status != nil {
		builder = builder.Set("status", deliveryModifyDB.Status)
	}
	if deliveryModifyDB.WaitingStartedAt != nil {
		builder = builder.Set("waiting_started_at", deliveryModifyDB.WaitingStartedAt)
	}
	if deliveryModifyDB.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", deliveryModifyDB.PickedUpAt)
	}
	if deliveryModifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", deliveryModifyDB.DeliveredAt)
	}
	if deliveryModifyDB.CustomerRating != nil {
		builder = builder.Set("customer_rating", deliveryModifyDB.CustomerRating)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1
		FOR UPDATE`

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetForUpdateByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1
		FOR UPDATE`

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get by order error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// ListForUpdate locks the requested deliveries in ascending id order. Rows
// that do not exist are simply absent from the result.
func (r *Repository) ListForUpdate(ctx context.Context, ids []int64) ([]entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, len(ids))
	for rows.Next() {
		deliveryDB, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveryModels = append(deliveryModels, *deliveryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) CountActiveByCourier(ctx context.Context, courierID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE courier_id = $1
		AND status IN ('assigned', 'accepted', 'picked_up', 'in_transit')`

	var count int64
	err := r.querier.QueryRow(ctx, query, courierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count active error: %w", err)
	}

	return count, nil
}

func (r *Repository) ListExpiredWaiting(ctx context.Context, timeoutMinutes int64) ([]entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE waiting_started_at IS NOT NULL
		AND waiting_started_at + make_interval(mins => $1::int) <= NOW()
		AND status NOT IN ('delivered', 'cancelled')
		ORDER BY waiting_started_at`

	rows, err := r.querier.Query(ctx, query, timeoutMinutes)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list expired error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		deliveryDB, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list expired error: %w", err)
		}
		deliveryModels = append(deliveryModels, *deliveryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list expired error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) InsertRejection(ctx context.Context, deliveryID, courierID int64) error {
	query := `
		INSERT INTO delivery_rejections (delivery_id, courier_id)
		VALUES ($1, $2)
		ON CONFLICT (delivery_id, courier_id) DO NOTHING`

	_, err := r.querier.Exec(ctx, query, deliveryID, courierID)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository insert rejection error: %w", err)
	}

	return nil
}

func (r *Repository) HasRejection(ctx context.Context, deliveryID, courierID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM delivery_rejections
			WHERE delivery_id = $1 AND courier_id = $2
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, deliveryID, courierID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository has rejection error: %w", err)
	}

	return exists, nil
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryDB DeliveryDB
	err := row.Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.CourierID,
		&deliveryDB.Status,
		&deliveryDB.PickupLat,
		&deliveryDB.PickupLon,
		&deliveryDB.DropoffLat,
		&deliveryDB.DropoffLon,
		&deliveryDB.EstimatedDistanceM,
		&deliveryDB.DeliveryFee,
		&deliveryDB.WaitingStartedAt,
		&deliveryDB.PickedUpAt,
		&deliveryDB.DeliveredAt,
		&deliveryDB.CustomerRating,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryDB, nil
}
