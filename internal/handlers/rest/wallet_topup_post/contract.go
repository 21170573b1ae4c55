//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_topup_post_test
package wallet_topup_post

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
	Topup(ctx context.Context, owner entities.WalletOwner, amount int64, reference string) (*entities.WalletTransaction, error)
}
