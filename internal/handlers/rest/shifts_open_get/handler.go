package shifts_open_get

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
	shifts, err := h.service.GetOpenShifts(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ShiftList{
		Shifts: make([]dto.Shift, 0, len(shifts)),
	}
	for _, shiftEntity := range shifts {
		response.Shifts = append(response.Shifts, dto.Shift{
			ID:          shiftEntity.ID,
			PizzeriaID:  shiftEntity.PizzeriaID,
			Date:        shiftEntity.Date.Format("2006-01-02"),
			Start:       shiftEntity.Start.String(),
			End:         shiftEntity.End.String(),
			HourlyRate:  shiftEntity.HourlyRate,
			Description: shiftEntity.Description,
			Status:      shiftEntity.Status.String(),
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
