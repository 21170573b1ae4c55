package wallet_balance_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	vars := mux.Vars(r)
	kind, ok := entities.ParseOwnerKind(vars["kind"])
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ownerID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	walletEntity, err := h.service.Balance(r.Context(), entities.WalletOwner{Kind: kind, ID: ownerID})
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidOwner):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, wallet.ErrWalletNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := balanceResponse{
		WalletID:  walletEntity.ID,
		OwnerKind: walletEntity.Owner.Kind.String(),
		OwnerID:   walletEntity.Owner.ID,
		Balance:   walletEntity.Balance,
		Currency:  walletEntity.Currency,
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
