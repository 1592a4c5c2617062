package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/opencourt/tournament-api/services"
)

type AthleteHandler struct {
	athleteService services.AthleteService
}

func NewAthleteHandler(as services.AthleteService) *AthleteHandler {
	return &AthleteHandler{
		athleteService: as,
	}
}

// ListHandler обрабатывает GET /atletas
func (h *AthleteHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	var input services.ListAthletesInput
	query := r.URL.Query()

	if categoria := query.Get("categoria"); categoria != "" {
		input.Category = &categoria
	}
	if pais := query.Get("pais"); pais != "" {
		input.Country = &pais
	}

	page, perPage, err := parsePageParams(query.Get("page"), query.Get("per_page"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.Page = page
	input.PerPage = perPage

	result, err := h.athleteService.List(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"atletas":      result.Athletes,
		"total":        result.Total,
		"pages":        result.Pages,
		"current_page": result.CurrentPage,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /atletas/{atletaID}
func (h *AthleteHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	athleteID, err := getIDFromURL(r, "atletaID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.athleteService.GetDetail(r.Context(), athleteID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"atleta":              detail.Athlete,
		"resultados_recentes": detail.RecentResults,
		"proximos_jogos":      detail.UpcomingMatches,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateHandler обрабатывает POST /atletas
func (h *AthleteHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateAthleteInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	athlete, err := h.athleteService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"atleta": athlete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RankingHandler обрабатывает GET /ranking
func (h *AthleteHandler) RankingHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var category *string
	if categoria := query.Get("categoria"); categoria != "" {
		category = &categoria
	}

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			badRequestResponse(w, r, errors.New("invalid limit query parameter"))
			return
		}
		limit = parsed
	}

	result, err := h.athleteService.Ranking(r.Context(), category, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"ranking":   result.Athletes,
		"categoria": result.Category,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadPhotoHandler обрабатывает POST /atletas/{atletaID}/foto
func (h *AthleteHandler) UploadPhotoHandler(w http.ResponseWriter, r *http.Request) {
	athleteID, err := getIDFromURL(r, "atletaID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("foto")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get photo file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for photo"))
		return
	}

	athlete, err := h.athleteService.UploadPhoto(r.Context(), athleteID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"atleta": athlete}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func parsePageParams(pageStr, perPageStr string) (int, int, error) {
	page := 0
	perPage := 0

	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid page query parameter")
		}
		page = parsed
	}
	if perPageStr != "" {
		parsed, err := strconv.Atoi(perPageStr)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid per_page query parameter")
		}
		perPage = parsed
	}

	return page, perPage, nil
}
