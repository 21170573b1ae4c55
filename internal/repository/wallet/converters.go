package wallet

import "dispatch/internal/entities"

func ToDomain(w *WalletDB) *entities.Wallet {
	if w == nil {
		return nil
	}
	return &entities.Wallet{
		ID: w.ID,
		Owner: entities.WalletOwner{
			Kind: entities.OwnerKindType(w.OwnerKind),
			ID:   w.OwnerID,
		},
		Balance:   w.Balance,
		Currency:  w.Currency,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func ToTransactionDomain(t *TransactionDB) *entities.WalletTransaction {
	if t == nil {
		return nil
	}
	return &entities.WalletTransaction{
		ID:           t.ID,
		WalletID:     t.WalletID,
		Type:         entities.TransactionType(t.Type),
		Category:     entities.TransactionCategory(t.Category),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Reference:    t.Reference,
		DeliveryID:   t.DeliveryID,
		Status:       entities.TransactionStatusType(t.Status),
		CreatedAt:    t.CreatedAt,
	}
}

func ToTransactionDomainList(models []TransactionDB) []entities.WalletTransaction {
	transactions := make([]entities.WalletTransaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, *ToTransactionDomain(&models[i]))
	}
	return transactions
}
