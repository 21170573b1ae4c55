package wallet_balance_get

type balanceResponse struct {
	WalletID  int64  `json:"wallet_id"`
	OwnerKind string `json:"owner_kind"`
	OwnerID   int64  `json:"owner_id"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
}
