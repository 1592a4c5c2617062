package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: ms,
	}
}

// SubmitResultHandler обрабатывает POST /jogos/{jogoID}/resultado
func (h *MatchHandler) SubmitResultHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "jogoID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.SubmitResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.SubmitResult(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogo": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByTournamentHandler обрабатывает GET /torneios/{torneioID}/jogos
func (h *MatchHandler) ListByTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "torneioID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	query := r.URL.Query()

	var categoryID *int
	if categoriaIDStr := query.Get("categoria_id"); categoriaIDStr != "" {
		id, err := strconv.Atoi(categoriaIDStr)
		if err != nil || id <= 0 {
			badRequestResponse(w, r, errors.New("invalid categoria_id query parameter"))
			return
		}
		categoryID = &id
	}

	var status *models.MatchStatus
	if statusStr := query.Get("status"); statusStr != "" {
		s := models.MatchStatus(statusStr)
		status = &s
	}

	matches, err := h.matchService.ListByTournament(r.Context(), tournamentID, categoryID, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogos": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
