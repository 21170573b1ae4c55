//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_test
package commission

import (
	"context"

	"dispatch/internal/entities"
)

type Ledger interface {
	Credit(ctx context.Context, m entities.WalletMutation) (*entities.WalletTransaction, error)
	Debit(ctx context.Context, m entities.WalletMutation) (*entities.WalletTransaction, error)
}

type DeliveryRepository interface {
	GetForUpdateByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
