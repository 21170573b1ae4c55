//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_arrive_post_test
package delivery_arrive_post

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
	ReportArrival(ctx context.Context, deliveryID, courierID int64) (*entities.WaitingInfo, error)
}
