package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentListEnvelope(t *testing.T) {
	svc := &stubTournamentService{
		listFn: func(ctx context.Context, input services.ListTournamentsInput) (*services.TournamentListResult, error) {
			require.NotNil(t, input.Status)
			assert.Equal(t, models.TournamentStatusScheduled, *input.Status)
			return &services.TournamentListResult{
				Tournaments: []models.Tournament{{ID: 1, Name: "Open de Verão"}},
				Total:       1,
				Pages:       1,
				CurrentPage: 1,
			}, nil
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/torneios?status=scheduled", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "torneios")
	assert.EqualValues(t, 1, body["total"])
}

func TestTournamentGetByIDEnvelope(t *testing.T) {
	svc := &stubTournamentService{
		getDetailFn: func(ctx context.Context, id int) (*services.TournamentDetail, error) {
			count := 8
			return &services.TournamentDetail{
				Tournament: &models.Tournament{ID: id, Name: "Open de Verão"},
				Categories: []models.Category{{ID: 4, TournamentID: id, Name: "Masculino A", TotalRegistrations: &count}},
			}, nil
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/torneios/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "torneio")
	require.Contains(t, body, "categorias")
	categories := body["categorias"].([]interface{})
	require.Len(t, categories, 1)
	assert.EqualValues(t, 8, categories[0].(map[string]interface{})["total_registrations"])
}

func TestTournamentGetByIDNotFound(t *testing.T) {
	svc := &stubTournamentService{
		getDetailFn: func(ctx context.Context, id int) (*services.TournamentDetail, error) {
			return nil, services.ErrTournamentNotFound
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/torneios/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTournamentCreateReturns201(t *testing.T) {
	svc := &stubTournamentService{
		createFn: func(ctx context.Context, input services.CreateTournamentInput) (*models.Tournament, error) {
			return &models.Tournament{
				ID:        3,
				Name:      input.Name,
				StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
				Status:    models.TournamentStatusScheduled,
			}, nil
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	payload := `{"name": "Open de Verão", "start_date": "2026-09-01", "end_date": "2026-09-05"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/torneios", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "torneio")
}

func TestTournamentCreateBadDateReturns400(t *testing.T) {
	svc := &stubTournamentService{
		createFn: func(ctx context.Context, input services.CreateTournamentInput) (*models.Tournament, error) {
			return nil, services.ErrInvalidDateFormat
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	payload := `{"name": "Open", "start_date": "01/09/2026", "end_date": "2026-09-05"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/torneios", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")
}

func TestCreateCategoryReturns201(t *testing.T) {
	svc := &stubTournamentService{
		createCategoryFn: func(ctx context.Context, tournamentID int, input services.CreateCategoryInput) (*models.Category, error) {
			assert.Equal(t, 2, tournamentID)
			return &models.Category{ID: 15, TournamentID: tournamentID, Name: input.Name}, nil
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/torneios/2/categorias", strings.NewReader(`{"name": "Mista B"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "categoria")
}

func TestCreateCategoryUnknownTournamentReturns404(t *testing.T) {
	svc := &stubTournamentService{
		createCategoryFn: func(ctx context.Context, tournamentID int, input services.CreateCategoryInput) (*models.Category, error) {
			return nil, services.ErrTournamentNotFound
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(svc), nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/torneios/77/categorias", strings.NewReader(`{"name": "Mista B"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
