package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ridermatch/internal/dto"
	"ridermatch/internal/entities"
	"ridermatch/internal/service/rider"
	"ridermatch/pkg/logger"
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
	var riderCreateDTO dto.RiderCreate
	err := json.NewDecoder(r.Body).Decode(&riderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transportType := entities.RiderTransportType(riderCreateDTO.TransportType)
	riderModifyEntity := entities.RiderModify{
		Name:          &riderCreateDTO.Name,
		Phone:         &riderCreateDTO.Phone,
		TelegramID:    &riderCreateDTO.TelegramID,
		TransportType: &transportType,
		MaxDistanceKm: riderCreateDTO.MaxDistanceKm,
		Rating:        riderCreateDTO.Rating,
	}

	id, err := h.service.CreateRider(r.Context(), riderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidName),
			errors.Is(err, rider.ErrInvalidPhone),
			errors.Is(err, rider.ErrInvalidTransport),
			errors.Is(err, rider.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RiderCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
