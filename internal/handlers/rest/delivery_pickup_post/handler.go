package delivery_pickup_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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
	var pickupDTO pickupRequest
	err := json.NewDecoder(r.Body).Decode(&pickupDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pickedUp, err := h.service.Pickup(r.Context(), pickupDTO.DeliveryID, pickupDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidState):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := pickupResponse{
		DeliveryID: pickedUp.ID,
		OrderID:    pickedUp.OrderID,
		Status:     pickedUp.Status.String(),
	}
	if pickedUp.PickedUpAt != nil {
		response.PickedUpAt = pickedUp.PickedUpAt.Format(time.RFC3339)
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
