package wallet_withdraw_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/wallet"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var withdrawDTO withdrawRequest
	err := json.NewDecoder(r.Body).Decode(&withdrawDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	kind, ok := entities.ParseOwnerKind(withdrawDTO.OwnerKind)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	owner := entities.WalletOwner{Kind: kind, ID: withdrawDTO.OwnerID}
	transaction, err := h.service.Withdraw(r.Context(), owner, withdrawDTO.Amount, withdrawDTO.Reference)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidOwner),
			errors.Is(err, wallet.ErrInvalidAmount),
			errors.Is(err, wallet.ErrMissingReference):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, wallet.ErrWalletNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, wallet.ErrInsufficientBalance):
			w.WriteHeader(http.StatusPaymentRequired)
		case errors.Is(err, wallet.ErrDuplicateReference):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := withdrawResponse{
		TransactionID: transaction.ID,
		Type:          transaction.Type.String(),
		Amount:        transaction.Amount,
		BalanceAfter:  transaction.BalanceAfter,
		Reference:     transaction.Reference,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
