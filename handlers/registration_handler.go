package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/opencourt/tournament-api/services"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
}

func NewRegistrationHandler(rs services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: rs,
	}
}

// CreateHandler обрабатывает POST /inscricoes
func (h *RegistrationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateRegistrationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	registration, err := h.registrationService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"inscricao": registration}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByTournamentHandler обрабатывает GET /torneios/{torneioID}/inscricoes
func (h *RegistrationHandler) ListByTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "torneioID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var categoryID *int
	if categoriaIDStr := r.URL.Query().Get("categoria_id"); categoriaIDStr != "" {
		id, err := strconv.Atoi(categoriaIDStr)
		if err != nil || id <= 0 {
			badRequestResponse(w, r, errors.New("invalid categoria_id query parameter"))
			return
		}
		categoryID = &id
	}

	registrations, err := h.registrationService.ListByTournament(r.Context(), tournamentID, categoryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"inscricoes": registrations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
