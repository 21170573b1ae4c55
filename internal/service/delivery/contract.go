//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)

	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
	GetForUpdateByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error)
	ListForUpdate(ctx context.Context, ids []int64) ([]entities.Delivery, error)

	CountActiveByCourier(ctx context.Context, courierID int64) (int64, error)
	ListExpiredWaiting(ctx context.Context, timeoutMinutes int64) ([]entities.Delivery, error)
	InsertRejection(ctx context.Context, deliveryID, courierID int64) error
	HasRejection(ctx context.Context, deliveryID, courierID int64) (bool, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	SetStatus(ctx context.Context, id int64, status entities.OrderStatusType, deliveredAt *time.Time) error
}

type WaitingInfoFactory interface {
	Compute(startedAt, now time.Time, s entities.WaitingSettings) entities.WaitingInfo
}

type Notifier interface {
	Arrived(ctx context.Context, delivery *entities.Delivery) error
	TimeoutCancelled(ctx context.Context, delivery *entities.Delivery) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
