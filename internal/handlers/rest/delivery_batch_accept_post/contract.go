//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_batch_accept_post_test
package delivery_batch_accept_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	BatchAccept(ctx context.Context, deliveryIDs []int64, courierID int64) (*entities.BatchAcceptResult, error)
}
