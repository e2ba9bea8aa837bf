package assignment_confirm_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	err = h.service.ConfirmByPizzeria(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidAssignmentID):
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

	w.WriteHeader(http.StatusNoContent)
}
