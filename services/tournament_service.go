package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/repositories"
)

const defaultTournamentsPerPage = 10

type ListTournamentsInput struct {
	Status  *models.TournamentStatus
	Page    int
	PerPage int
}

type TournamentListResult struct {
	Tournaments []models.Tournament
	Total       int
	Pages       int
	CurrentPage int
}

type CreateTournamentInput struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Venue           *string  `json:"venue"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	BracketType     *string  `json:"bracket_type"`
	MaxParticipants *int     `json:"max_participants"`
	TotalPrize      *float64 `json:"total_prize"`
	OrganizerID     *int     `json:"organizer_id"`
}

type CreateCategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// TournamentDetail — турнир с категориями; у каждой категории проставлено
// число подтверждённых заявок.
type TournamentDetail struct {
	Tournament *models.Tournament
	Categories []models.Category
}

type TournamentService interface {
	List(ctx context.Context, input ListTournamentsInput) (*TournamentListResult, error)
	GetDetail(ctx context.Context, id int) (*TournamentDetail, error)
	Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	CreateCategory(ctx context.Context, tournamentID int, input CreateCategoryInput) (*models.Category, error)
}

type tournamentService struct {
	tournamentRepo   repositories.TournamentRepository
	categoryRepo     repositories.CategoryRepository
	registrationRepo repositories.RegistrationRepository
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	categoryRepo repositories.CategoryRepository,
	registrationRepo repositories.RegistrationRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo:   tournamentRepo,
		categoryRepo:     categoryRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *tournamentService) List(ctx context.Context, input ListTournamentsInput) (*TournamentListResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultTournamentsPerPage
	}

	filter := repositories.ListTournamentsFilter{
		Status: input.Status,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	total, err := s.tournamentRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count tournaments: %w", err)
	}

	return &TournamentListResult{
		Tournaments: tournaments,
		Total:       total,
		Pages:       computePages(total, perPage),
		CurrentPage: page,
	}, nil
}

func (s *tournamentService) GetDetail(ctx context.Context, id int) (*TournamentDetail, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	categories, err := s.categoryRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for tournament %d: %w", id, err)
	}

	for i := range categories {
		count, countErr := s.registrationRepo.CountConfirmedByCategory(ctx, categories[i].ID)
		if countErr != nil {
			return nil, countErr
		}
		categories[i].TotalRegistrations = &count
	}

	return &TournamentDetail{Tournament: tournament, Categories: categories}, nil
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.StartDate == "" || input.EndDate == "" {
		return nil, ErrTournamentDatesRequired
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrTournamentInvalidDateRange
	}

	bracketType := models.DefaultBracketType
	if input.BracketType != nil && *input.BracketType != "" {
		bracketType = *input.BracketType
	}

	tournament := &models.Tournament{
		Name:            name,
		Description:     input.Description,
		Venue:           input.Venue,
		StartDate:       startDate,
		EndDate:         endDate,
		BracketType:     bracketType,
		MaxParticipants: input.MaxParticipants,
		TotalPrize:      input.TotalPrize,
		OrganizerID:     input.OrganizerID,
		Status:          models.TournamentStatusScheduled,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) CreateCategory(ctx context.Context, tournamentID int, input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}

	category := &models.Category{
		TournamentID: tournamentID,
		Name:         name,
		Description:  input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryTournamentInvalid) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
