package wallet_topup_post

type topupRequest struct {
	OwnerKind string `json:"owner_kind"`
	OwnerID   int64  `json:"owner_id"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

type topupResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Type          string `json:"type"`
	Amount        int64  `json:"amount"`
	BalanceAfter  int64  `json:"balance_after"`
	Reference     string `json:"reference"`
}
