package riders_get

import (
	"encoding/json"
	"net/http"

	"ridermatch/internal/dto"
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
	riders, err := h.service.GetRiders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Rider, 0, len(riders))
	for _, riderEntity := range riders {
		response = append(response, dto.Rider{
			ID:            riderEntity.ID,
			Name:          riderEntity.Name,
			Phone:         riderEntity.Phone,
			TelegramID:    riderEntity.TelegramID,
			TransportType: riderEntity.TransportType.String(),
			MaxDistanceKm: riderEntity.MaxDistanceKm,
			Active:        riderEntity.Active,
			Rating:        riderEntity.Rating,
		})
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
