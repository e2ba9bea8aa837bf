package shift_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"ridermatch/internal/dto"
	"ridermatch/internal/service/shift"
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

	shiftEntity, err := h.service.GetShift(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrShiftNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shift.ErrInvalidShiftID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shiftDTO := dto.Shift{
		ID:          shiftEntity.ID,
		PizzeriaID:  shiftEntity.PizzeriaID,
		Date:        shiftEntity.Date.Format("2006-01-02"),
		Start:       shiftEntity.Start.String(),
		End:         shiftEntity.End.String(),
		HourlyRate:  shiftEntity.HourlyRate,
		Description: shiftEntity.Description,
		Status:      shiftEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shiftDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
