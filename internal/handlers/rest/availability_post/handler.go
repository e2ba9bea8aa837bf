package availability_post

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
	idStr := mux.Vars(r)["id"]
	riderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var availabilityDTO dto.AvailabilityCreate
	err = json.NewDecoder(r.Body).Decode(&availabilityDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	start, err := entities.ParseTimeOfDay(availabilityDTO.Start)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	end, err := entities.ParseTimeOfDay(availabilityDTO.End)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	window := entities.AvailabilityWindow{
		RiderID:   riderID,
		DayOfWeek: availabilityDTO.DayOfWeek,
		Start:     start,
		End:       end,
		Preferred: availabilityDTO.Preferred,
	}

	id, err := h.service.AddAvailability(r.Context(), window)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidDayOfWeek),
			errors.Is(err, rider.ErrInvalidWindow):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrAvailabilityExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if _, err := h.matcher.RunBatch(r.Context()); err != nil {
		h.log.With(
			logger.NewField("rider_id", riderID),
			logger.NewField("error", err),
		).Warn("match run after availability change failed")
	}

	response := dto.AvailabilityCreateResponse{
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
