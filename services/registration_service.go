package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/repositories"
)

type CreateRegistrationInput struct {
	TournamentID int     `json:"tournament_id"`
	CategoryID   int     `json:"category_id"`
	AthleteID    int     `json:"athlete_id"`
	PartnerID    *int    `json:"partner_id"`
	TeamName     *string `json:"team_name"`
}

type RegistrationService interface {
	Create(ctx context.Context, input CreateRegistrationInput) (*models.Registration, error)
	ListByTournament(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error)
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
}

func NewRegistrationService(registrationRepo repositories.RegistrationRepository) RegistrationService {
	return &registrationService{registrationRepo: registrationRepo}
}

func (s *registrationService) Create(ctx context.Context, input CreateRegistrationInput) (*models.Registration, error) {
	if input.TournamentID <= 0 || input.CategoryID <= 0 || input.AthleteID <= 0 {
		return nil, ErrRegistrationIDsRequired
	}

	// Предварительная проверка дубликата; уникальный индекс в БД закрывает
	// гонку между проверкой и вставкой.
	existing, err := s.registrationRepo.FindByTournamentCategoryAthlete(ctx, input.TournamentID, input.CategoryID, input.AthleteID)
	if err != nil && !errors.Is(err, repositories.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return nil, ErrRegistrationConflict
	}

	registration := &models.Registration{
		TournamentID: input.TournamentID,
		CategoryID:   input.CategoryID,
		AthleteID:    input.AthleteID,
		PartnerID:    input.PartnerID,
		TeamName:     input.TeamName,
		Status:       models.RegistrationStatusConfirmed,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRegistrationConflict):
			return nil, ErrRegistrationConflict
		case errors.Is(err, repositories.ErrRegistrationReferenceInvalid):
			return nil, ErrRegistrationInvalidRef
		default:
			return nil, fmt.Errorf("failed to create registration: %w", err)
		}
	}

	return registration, nil
}

func (s *registrationService) ListByTournament(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error) {
	registrations, err := s.registrationRepo.ListByTournament(ctx, tournamentID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations for tournament %d: %w", tournamentID, err)
	}
	if registrations == nil {
		return []models.Registration{}, nil
	}
	return registrations, nil
}
