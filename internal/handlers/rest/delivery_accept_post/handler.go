package delivery_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/service/delivery"
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
	var acceptDTO acceptRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accepted, err := h.service.Accept(r.Context(), acceptDTO.DeliveryID, acceptDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNotAvailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := acceptResponse{
		DeliveryID: accepted.ID,
		OrderID:    accepted.OrderID,
		CourierID:  acceptDTO.CourierID,
		Status:     accepted.Status.String(),
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
