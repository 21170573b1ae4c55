//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByOwner(ctx context.Context, owner entities.WalletOwner) (*entities.Wallet, error)
	GetForUpdate(ctx context.Context, owner entities.WalletOwner) (*entities.Wallet, error)
	UpdateBalance(ctx context.Context, walletID, balance int64) error
	InsertTransaction(ctx context.Context, txn entities.WalletTransaction) (*entities.WalletTransaction, error)
	ListTransactions(ctx context.Context, walletID, limit int64) ([]entities.WalletTransaction, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
