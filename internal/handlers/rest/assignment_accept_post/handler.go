package assignment_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"ridermatch/internal/dto"
	"ridermatch/internal/service/lifecycle"
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

	err = h.service.Accept(r.Context(), assignmentID, actionDTO.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidAssignmentID),
			errors.Is(err, lifecycle.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrAssignmentNotFound):
			// Назначение успело истечь или было отозвано.
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrShiftStateChanged):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
