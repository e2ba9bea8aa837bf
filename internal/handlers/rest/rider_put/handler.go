package rider_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var riderUpdateDTO dto.RiderUpdate
	err = json.NewDecoder(r.Body).Decode(&riderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderModifyEntity := entities.RiderModify{
		ID:            &id,
		Name:          riderUpdateDTO.Name,
		Phone:         riderUpdateDTO.Phone,
		MaxDistanceKm: riderUpdateDTO.MaxDistanceKm,
		Active:        riderUpdateDTO.Active,
		Rating:        riderUpdateDTO.Rating,
	}
	if riderUpdateDTO.TransportType != nil {
		transportType := entities.RiderTransportType(*riderUpdateDTO.TransportType)
		riderModifyEntity.TransportType = &transportType
	}

	riderEntity, err := h.service.UpdateRider(r.Context(), riderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidName),
			errors.Is(err, rider.ErrInvalidPhone),
			errors.Is(err, rider.ErrInvalidTransport),
			errors.Is(err, rider.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	riderDTO := dto.Rider{
		ID:            riderEntity.ID,
		Name:          riderEntity.Name,
		Phone:         riderEntity.Phone,
		TelegramID:    riderEntity.TelegramID,
		TransportType: riderEntity.TransportType.String(),
		MaxDistanceKm: riderEntity.MaxDistanceKm,
		Active:        riderEntity.Active,
		Rating:        riderEntity.Rating,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
