package rider_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"ridermatch/internal/dto"
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

	riderEntity, err := h.service.GetRider(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
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
