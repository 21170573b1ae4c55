//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type DeliveryService interface {
	CreateForOrder(ctx context.Context, order *entities.Order) (*entities.Delivery, error)
	CancelForOrder(ctx context.Context, orderID int64) error
}

type (
	ExecuteFn      func(ctx context.Context, order *entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
