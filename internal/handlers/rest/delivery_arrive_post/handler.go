package delivery_arrive_post

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
	var arriveDTO arriveRequest
	err := json.NewDecoder(r.Body).Decode(&arriveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	info, err := h.service.ReportArrival(r.Context(), arriveDTO.DeliveryID, arriveDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidState),
			errors.Is(err, delivery.ErrWaitingAlreadyStarted):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(newWaitingResponse(info))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
