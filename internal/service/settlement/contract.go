//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type DeliveryRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	SetStatus(ctx context.Context, id int64, status entities.OrderStatusType, deliveredAt *time.Time) error
}

type Ledger interface {
	Credit(ctx context.Context, m entities.WalletMutation) (*entities.WalletTransaction, error)
	Debit(ctx context.Context, m entities.WalletMutation) (*entities.WalletTransaction, error)
	CanAfford(ctx context.Context, owner entities.WalletOwner, amount int64) (bool, error)
}

type CommissionService interface {
	CalculateAndDistribute(ctx context.Context, order *entities.Order, skipCourier bool) error
}

type Notifier interface {
	Delivered(ctx context.Context, order *entities.Order, delivery *entities.Delivery) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
