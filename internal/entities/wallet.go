package entities

import "time"

// OwnerKindType discriminates who a wallet belongs to. The two kinds share
// one wallets table, resolved by (kind, id) rather than reflection.
type OwnerKindType string

const (
	OwnerCourier  OwnerKindType = "courier"
	OwnerPharmacy OwnerKindType = "pharmacy"
)

func (k OwnerKindType) String() string {
	return string(k)
}

// ParseOwnerKind maps an external string to a known owner kind.
func ParseOwnerKind(s string) (OwnerKindType, bool) {
	switch OwnerKindType(s) {
	case OwnerCourier:
		return OwnerCourier, true
	case OwnerPharmacy:
		return OwnerPharmacy, true
	default:
		return "", false
	}
}

type WalletOwner struct {
	Kind OwnerKindType
	ID   int64
}

// Wallet balance is stored in minor currency units and must never be
// observed negative.
type Wallet struct {
	ID        int64
	Owner     WalletOwner
	Balance   int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionCategory string

const (
	CategoryDeliveryEarning TransactionCategory = "delivery_earning"
	CategoryCommission      TransactionCategory = "commission"
	CategoryTopup           TransactionCategory = "topup"
	CategoryWithdrawal      TransactionCategory = "withdrawal"
	CategoryBonus           TransactionCategory = "bonus"
	CategoryDeduction       TransactionCategory = "deduction"
)

func (c TransactionCategory) String() string {
	return string(c)
}

type TransactionStatusType string

const (
	TransactionCompleted TransactionStatusType = "completed"
	TransactionReversed  TransactionStatusType = "reversed"
)

// WalletTransaction is an immutable ledger entry. BalanceAfter snapshots the
// wallet balance at append time; the sum of credits minus debits over the log
// must always equal the wallet balance.
type WalletTransaction struct {
	ID           int64
	WalletID     int64
	Type         TransactionType
	Category     TransactionCategory
	Amount       int64
	BalanceAfter int64
	Reference    string
	DeliveryID   *int64
	Status       TransactionStatusType
	CreatedAt    time.Time
}

// WalletMutation describes one requested credit or debit.
type WalletMutation struct {
	Owner      WalletOwner
	Amount     int64
	Category   TransactionCategory
	Reference  string
	DeliveryID *int64
}
