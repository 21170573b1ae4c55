package delivery_deliver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/service/delivery"
	"dispatch/internal/service/settlement"
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
	var deliverDTO deliverRequest
	err := json.NewDecoder(r.Body).Decode(&deliverDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settled, err := h.service.Deliver(r.Context(), deliverDTO.DeliveryID, deliverDTO.CourierID, deliverDTO.ConfirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidDeliveryID),
			errors.Is(err, settlement.ErrInvalidCourierID),
			errors.Is(err, settlement.ErrEmptyCode),
			errors.Is(err, settlement.ErrInvalidCode),
			errors.Is(err, settlement.ErrInvalidState):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, settlement.ErrAlreadyCompleted):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, settlement.ErrInsufficientBalance):
			w.WriteHeader(http.StatusPaymentRequired)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := deliverResponse{
		DeliveryID:       settled.DeliveryID,
		OrderID:          settled.OrderID,
		CourierID:        settled.CourierID,
		EarningAmount:    settled.EarningAmount,
		CommissionAmount: settled.CommissionAmount,
		NetEarning:       settled.NetEarning,
		NewBalance:       settled.NewBalance,
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
