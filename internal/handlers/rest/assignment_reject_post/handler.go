package assignment_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"ridermatch/internal/dto"
	"ridermatch/internal/service/lifecycle"
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
	assignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var actionDTO dto.AssignmentAction
	err = json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Reject(r.Context(), assignmentID, actionDTO.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidAssignmentID),
			errors.Is(err, lifecycle.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrShiftStateChanged):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if _, err := h.matcher.RunBatch(r.Context()); err != nil {
		h.log.With(
			logger.NewField("assignment_id", assignmentID),
			logger.NewField("error", err),
		).Warn("match run after rejection failed")
	}

	w.WriteHeader(http.StatusNoContent)
}
