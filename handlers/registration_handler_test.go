package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationCreateReturns201(t *testing.T) {
	svc := &stubRegistrationService{
		createFn: func(ctx context.Context, input services.CreateRegistrationInput) (*models.Registration, error) {
			assert.Equal(t, 1, input.TournamentID)
			assert.Equal(t, 2, input.CategoryID)
			assert.Equal(t, 3, input.AthleteID)
			return &models.Registration{
				ID:           9,
				TournamentID: input.TournamentID,
				CategoryID:   input.CategoryID,
				AthleteID:    input.AthleteID,
				Status:       models.RegistrationStatusConfirmed,
			}, nil
		},
	}
	router := newTestRouter(nil, nil, nil, nil, NewRegistrationHandler(svc))

	payload := `{"tournament_id": 1, "category_id": 2, "athlete_id": 3}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inscricoes", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Contains(t, body, "inscricao")
	registration := body["inscricao"].(map[string]interface{})
	assert.Equal(t, "confirmed", registration["status"])
}

func TestRegistrationCreateDuplicateReturns409(t *testing.T) {
	svc := &stubRegistrationService{
		createFn: func(ctx context.Context, input services.CreateRegistrationInput) (*models.Registration, error) {
			return nil, services.ErrRegistrationConflict
		},
	}
	router := newTestRouter(nil, nil, nil, nil, NewRegistrationHandler(svc))

	payload := `{"tournament_id": 1, "category_id": 2, "athlete_id": 3}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inscricoes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")
}

func TestRegistrationCreateMissingIDsReturns400(t *testing.T) {
	svc := &stubRegistrationService{
		createFn: func(ctx context.Context, input services.CreateRegistrationInput) (*models.Registration, error) {
			return nil, services.ErrRegistrationIDsRequired
		},
	}
	router := newTestRouter(nil, nil, nil, nil, NewRegistrationHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inscricoes", strings.NewReader(`{"tournament_id": 1}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationListByTournamentEnvelope(t *testing.T) {
	svc := &stubRegistrationService{
		listByTournamentFn: func(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error) {
			assert.Equal(t, 1, tournamentID)
			assert.Nil(t, categoryID)
			return []models.Registration{{ID: 5, TournamentID: tournamentID}}, nil
		},
	}
	router := newTestRouter(nil, NewTournamentHandler(&stubTournamentService{}), nil, nil, NewRegistrationHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/torneios/1/inscricoes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Contains(t, body, "inscricoes")
	assert.Len(t, body["inscricoes"].([]interface{}), 1)
}
