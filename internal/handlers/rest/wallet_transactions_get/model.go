package wallet_transactions_get

import (
	"time"

	"dispatch/internal/entities"
)

type transactionDTO struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Amount       int64  `json:"amount"`
	BalanceAfter int64  `json:"balance_after"`
	Reference    string `json:"reference"`
	DeliveryID   *int64 `json:"delivery_id,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type transactionsResponse struct {
	Transactions []transactionDTO `json:"transactions"`
}

func newTransactionsResponse(transactions []entities.WalletTransaction) transactionsResponse {
	dtos := make([]transactionDTO, 0, len(transactions))
	for _, t := range transactions {
		dtos = append(dtos, transactionDTO{
			ID:           t.ID,
			Type:         t.Type.String(),
			Category:     t.Category.String(),
			Amount:       t.Amount,
			BalanceAfter: t.BalanceAfter,
			Reference:    t.Reference,
			DeliveryID:   t.DeliveryID,
			CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		})
	}

	return transactionsResponse{Transactions: dtos}
}
