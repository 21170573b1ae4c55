package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/wallet"
)

const (
	walletColumns      = `id, owner_kind, owner_id, balance, currency, created_at, updated_at`
	transactionColumns = `id, wallet_id, type, category, amount, balance_after,
		reference, delivery_id, status, created_at`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByOwner(ctx context.Context, owner entities.WalletOwner) (*entities.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE owner_kind = $1 AND owner_id = $2`

	walletDB, err := scanWallet(r.querier.QueryRow(ctx, query, owner.Kind.String(), owner.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get error: %w", err)
	}

	return ToDomain(walletDB), nil
}

func (r *Repository) GetForUpdate(ctx context.Context, owner entities.WalletOwner) (*entities.Wallet, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE owner_kind = $1 AND owner_id = $2
		FOR UPDATE`

	walletDB, err := scanWallet(r.querier.QueryRow(ctx, query, owner.Kind.String(), owner.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository lock error: %w", err)
	}

	return ToDomain(walletDB), nil
}

func (r *Repository) UpdateBalance(ctx context.Context, walletID, balance int64) error {
	query := `
		UPDATE wallets
		SET balance = $2,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, walletID, balance)
	if err != nil {
		return fmt.Errorf("unexpected wallet repository update balance error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return wallet.ErrWalletNotFound
	}

	return nil
}

func (r *Repository) InsertTransaction(ctx context.Context, txn entities.WalletTransaction) (*entities.WalletTransaction, error) {
	query := `
		INSERT INTO wallet_transactions (wallet_id, type, category, amount,
			balance_after, reference, delivery_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + transactionColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		txn.WalletID,
		txn.Type.String(),
		txn.Category.String(),
		txn.Amount,
		txn.BalanceAfter,
		txn.Reference,
		txn.DeliveryID,
		string(txn.Status),
	)

	transactionDB, err := scanTransaction(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, wallet.ErrDuplicateReference
		}
		return nil, fmt.Errorf("unexpected wallet repository insert transaction error: %w", err)
	}

	return ToTransactionDomain(transactionDB), nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID, limit int64) ([]entities.WalletTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY id DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}
	defer rows.Close()

	transactionModels := make([]TransactionDB, 0, limit)
	for rows.Next() {
		transactionDB, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
		}
		transactionModels = append(transactionModels, *transactionDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected wallet repository list transactions error: %w", err)
	}

	return ToTransactionDomainList(transactionModels), nil
}

// SumLedger returns the credit and debit totals over a wallet's transaction
// log. Balance must equal credits minus debits at all times.
func (r *Repository) SumLedger(ctx context.Context, walletID int64) (credits, debits int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0)
		FROM wallet_transactions
		WHERE wallet_id = $1`

	err = r.querier.QueryRow(ctx, query, walletID).Scan(&credits, &debits)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected wallet repository sum ledger error: %w", err)
	}

	return credits, debits, nil
}

func scanWallet(row pgx.Row) (*WalletDB, error) {
	var walletDB WalletDB
	err := row.Scan(
		&walletDB.ID,
		&walletDB.OwnerKind,
		&walletDB.OwnerID,
		&walletDB.Balance,
		&walletDB.Currency,
		&walletDB.CreatedAt,
		&walletDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &walletDB, nil
}

func scanTransaction(row pgx.Row) (*TransactionDB, error) {
	var transactionDB TransactionDB
	err := row.Scan(
		&transactionDB.ID,
		&transactionDB.WalletID,
		&transactionDB.Type,
		&transactionDB.Category,
		&transactionDB.Amount,
		&transactionDB.BalanceAfter,
		&transactionDB.Reference,
		&transactionDB.DeliveryID,
		&transactionDB.Status,
		&transactionDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transactionDB, nil
}
