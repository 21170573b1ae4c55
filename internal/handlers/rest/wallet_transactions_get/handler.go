package wallet_transactions_get

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

const defaultLimit = 50

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

	limit := int64(defaultLimit)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.ParseInt(limitStr, 10, 64)
		if err != nil || limit <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	transactions, err := h.service.Transactions(r.Context(), entities.WalletOwner{Kind: kind, ID: ownerID}, limit)
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(newTransactionsResponse(transactions))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
