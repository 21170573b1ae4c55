package wallet

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Ledger keeps per-owner balances with an append-only transaction log.
// Every mutation runs under a per-wallet row lock inside one transaction, so
// concurrent credits and debits on the same wallet serialize. The balance
// always equals the sum of credits minus the sum of debits over the log.
type Ledger struct {
	repository     Repository
	txManager      TxManager
	minimumBalance int64
}

func New(repository Repository, txManager TxManager, minimumBalance int64) *Ledger {
	return &Ledger{
		repository:     repository,
		txManager:      txManager,
		minimumBalance: minimumBalance,
	}
}

func (l *Ledger) Balance(ctx context.Context, owner entities.WalletOwner) (*entities.Wallet, error) {
	if !isValidOwner(owner) {
		return nil, ErrInvalidOwner
	}

	w, err := l.repository.GetByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// CanAfford reports whether the owner could cover a debit of amount right
// now. Read-only; the authoritative check is re-done under lock by Debit.
func (l *Ledger) CanAfford(ctx context.Context, owner entities.WalletOwner, amount int64) (bool, error) {
	if !isValidOwner(owner) {
		return false, ErrInvalidOwner
	}
	if amount <= 0 {
		return false, ErrInvalidAmount
	}

	w, err := l.repository.GetByOwner(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("get wallet: %w", err)
	}
	return w.Balance >= amount, nil
}

func (l *Ledger) Transactions(ctx context.Context, owner entities.WalletOwner, limit int64) ([]entities.WalletTransaction, error) {
	if !isValidOwner(owner) {
		return nil, ErrInvalidOwner
	}

	w, err := l.repository.GetByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	txns, err := l.repository.ListTransactions(ctx, w.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// Credit appends a credit entry and increments the balance atomically.
func (l *Ledger) Credit(ctx context.Context, m entities.WalletMutation) (*entities.WalletTransaction, error) {
	if err := validateMutation(m); err != nil {
		return nil, err
	}

	var txn *entities.WalletTransaction
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		w, err := l.repository.GetForUpdate(ctx, m.Owner)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}

		newBalance := w.Balance + m.Amount
		if err := l.repository.UpdateBalance(ctx, w.ID, newBalance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		txn, err = l.repository.InsertTransaction(ctx, entities.WalletTransaction{
			WalletID:     w.ID,
			Type:         entities.TransactionCredit,
			Category:     m.Category,
			Amount:       m.Amount,
			BalanceAfter: newBalance,
			Reference:    m.Reference,
			DeliveryID:   m.DeliveryID,
			Status:       entities.TransactionCompleted,
		})
		if err != nil {
			return fmt.Errorf("append credit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Debit appends a debit entry and decrements the balance atomically. The
// balance precondition is evaluated under the wallet row lock, so the balance
// can never go negative.
func (l *Ledger) Debit(ctx context.Context, m entities.WalletMutation) (*entities.WalletTransaction, error) {
	if err := validateMutation(m); err != nil {
		return nil, err
	}

	var txn *entities.WalletTransaction
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		w, err := l.repository.GetForUpdate(ctx, m.Owner)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}

		if w.Balance < m.Amount {
			return ErrInsufficientBalance
		}

		newBalance := w.Balance - m.Amount
		if err := l.repository.UpdateBalance(ctx, w.ID, newBalance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		txn, err = l.repository.InsertTransaction(ctx, entities.WalletTransaction{
			WalletID:     w.ID,
			Type:         entities.TransactionDebit,
			Category:     m.Category,
			Amount:       m.Amount,
			BalanceAfter: newBalance,
			Reference:    m.Reference,
			DeliveryID:   m.DeliveryID,
			Status:       entities.TransactionCompleted,
		})
		if err != nil {
			return fmt.Errorf("append debit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Topup credits an owner from an external payment.
func (l *Ledger) Topup(ctx context.Context, owner entities.WalletOwner, amount int64, reference string) (*entities.WalletTransaction, error) {
	return l.Credit(ctx, entities.WalletMutation{
		Owner:     owner,
		Amount:    amount,
		Category:  entities.CategoryTopup,
		Reference: reference,
	})
}

// Withdraw debits an owner towards an external payout, keeping the configured
// minimum balance in the wallet.
func (l *Ledger) Withdraw(ctx context.Context, owner entities.WalletOwner, amount int64, reference string) (*entities.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var txn *entities.WalletTransaction
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		w, err := l.repository.GetForUpdate(ctx, owner)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}

		if w.Balance-amount < l.minimumBalance {
			return ErrInsufficientBalance
		}

		var debitErr error
		txn, debitErr = l.Debit(ctx, entities.WalletMutation{
			Owner:     owner,
			Amount:    amount,
			Category:  entities.CategoryWithdrawal,
			Reference: reference,
		})
		return debitErr
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func validateMutation(m entities.WalletMutation) error {
	if !isValidOwner(m.Owner) {
		return ErrInvalidOwner
	}
	if m.Amount <= 0 {
		return ErrInvalidAmount
	}
	if m.Reference == "" {
		return ErrMissingReference
	}
	return nil
}
