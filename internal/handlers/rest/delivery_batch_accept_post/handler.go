package delivery_batch_accept_post

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
	var batchDTO batchAcceptRequest
	err := json.NewDecoder(r.Body).Decode(&batchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.BatchAccept(r.Context(), batchDTO.DeliveryIDs, batchDTO.CourierID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := batchAcceptResponse{
		CourierID:   result.CourierID,
		DeliveryIDs: result.DeliveryIDs,
		AcceptedAt:  result.AcceptedAt,
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

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var partial *delivery.PartiallyUnavailableError
	if errors.As(err, &partial) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(batchAcceptErrorResponse{
			Error:                  "some requested deliveries are unavailable",
			UnavailableDeliveryIDs: partial.DeliveryIDs,
		})
		if encodeErr != nil {
			h.log.With(
				logger.NewField("error", encodeErr),
			).Error("encode JSON response")
		}
		return
	}

	switch {
	case errors.Is(err, delivery.ErrInvalidDeliveryID),
		errors.Is(err, delivery.ErrInvalidCourierID),
		errors.Is(err, delivery.ErrEmptyBatch),
		errors.Is(err, delivery.ErrCapacityExceeded):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
