package wallet

import "time"

type WalletDB struct {
	ID        int64
	OwnerKind string
	OwnerID   int64
	Balance   int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransactionDB struct {
	ID           int64
	WalletID     int64
	Type         string
	Category     string
	Amount       int64
	BalanceAfter int64
	Reference    string
	DeliveryID   *int64
	Status       string
	CreatedAt    time.Time
}
