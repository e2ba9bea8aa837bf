package shift_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ridermatch/internal/dto"
	"ridermatch/internal/entities"
	"ridermatch/internal/service/shift"
	"ridermatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	matcher Matcher
}

func New(log handlerLogger, service Service, matcher Matcher) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		matcher: matcher,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var shiftCreateDTO dto.ShiftCreate
	err := json.NewDecoder(r.Body).Decode(&shiftCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", shiftCreateDTO.Date, time.UTC)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	start, err := entities.ParseTimeOfDay(shiftCreateDTO.Start)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	end, err := entities.ParseTimeOfDay(shiftCreateDTO.End)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shiftModifyEntity := entities.ShiftModify{
		PizzeriaID:  &shiftCreateDTO.PizzeriaID,
		Date:        &date,
		Start:       &start,
		End:         &end,
		HourlyRate:  &shiftCreateDTO.HourlyRate,
		Description: &shiftCreateDTO.Description,
	}

	created, err := h.service.CreateShift(r.Context(), shiftModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrMissingRequiredFields),
			errors.Is(err, shift.ErrInvalidPizzeriaID),
			errors.Is(err, shift.ErrInvalidInterval),
			errors.Is(err, shift.ErrInvalidHourlyRate),
			errors.Is(err, shift.ErrPizzeriaInactive):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shift.ErrPizzeriaNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if _, err := h.matcher.RunBatch(r.Context()); err != nil {
		h.log.With(
			logger.NewField("shift_id", created.ID),
			logger.NewField("error", err),
		).Warn("match run after shift creation failed")
	}

	shiftDTO := dto.Shift{
		ID:          created.ID,
		PizzeriaID:  created.PizzeriaID,
		Date:        created.Date.Format("2006-01-02"),
		Start:       created.Start.String(),
		End:         created.End.String(),
		HourlyRate:  created.HourlyRate,
		Description: created.Description,
		Status:      created.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(shiftDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
