//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_rate_post_test
package delivery_rate_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Rate(ctx context.Context, deliveryID int64, rating int16) error
}
