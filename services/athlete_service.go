package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/repositories"
	"github.com/opencourt/tournament-api/storage"
	"golang.org/x/sync/errgroup"
)

const (
	defaultAthletesPerPage = 20
	defaultRankingLimit    = 50
	recentResultsLimit     = 10
	upcomingMatchesLimit   = 5
)

type ListAthletesInput struct {
	Category *string
	Country  *string
	Page     int
	PerPage  int
}

type AthleteListResult struct {
	Athletes    []models.Athlete
	Total       int
	Pages       int
	CurrentPage int
}

type CreateAthleteInput struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	BirthDate *string  `json:"birth_date"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	Country   *string  `json:"country"`
	Category  *string  `json:"category"`
}

// AthleteDetail — карточка атлета: последние результаты и ближайшие матчи.
type AthleteDetail struct {
	Athlete         *models.Athlete
	RecentResults   []models.Result
	UpcomingMatches []models.Match
}

type RankingResult struct {
	Athletes []models.Athlete
	Category string
}

type AthleteService interface {
	List(ctx context.Context, input ListAthletesInput) (*AthleteListResult, error)
	GetDetail(ctx context.Context, id int) (*AthleteDetail, error)
	Create(ctx context.Context, input CreateAthleteInput) (*models.Athlete, error)
	Ranking(ctx context.Context, category *string, limit int) (*RankingResult, error)
	UploadPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Athlete, error)
}

type athleteService struct {
	athleteRepo repositories.AthleteRepository
	resultRepo  repositories.ResultRepository
	matchRepo   repositories.MatchRepository
	uploader    storage.FileUploader
}

func NewAthleteService(
	athleteRepo repositories.AthleteRepository,
	resultRepo repositories.ResultRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) AthleteService {
	return &athleteService{
		athleteRepo: athleteRepo,
		resultRepo:  resultRepo,
		matchRepo:   matchRepo,
		uploader:    uploader,
	}
}

func (s *athleteService) List(ctx context.Context, input ListAthletesInput) (*AthleteListResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultAthletesPerPage
	}

	filter := repositories.ListAthletesFilter{
		Category: input.Category,
		Country:  input.Country,
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}

	athletes, err := s.athleteRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	total, err := s.athleteRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count athletes: %w", err)
	}

	for i := range athletes {
		populateAthletePhotoURL(&athletes[i], s.uploader)
	}

	return &AthleteListResult{
		Athletes:    athletes,
		Total:       total,
		Pages:       computePages(total, perPage),
		CurrentPage: page,
	}, nil
}

func (s *athleteService) GetDetail(ctx context.Context, id int) (*AthleteDetail, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAthleteNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to get athlete %d: %w", id, err)
	}
	populateAthletePhotoURL(athlete, s.uploader)

	detail := &AthleteDetail{Athlete: athlete}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := s.resultRepo.ListRecentByAthlete(gctx, id, recentResultsLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent results for athlete %d: %w", id, err)
		}
		detail.RecentResults = results
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.ListUpcomingByAthlete(gctx, id, upcomingMatchesLimit)
		if err != nil {
			return fmt.Errorf("failed to list upcoming matches for athlete %d: %w", id, err)
		}
		detail.UpcomingMatches = matches
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *athleteService) Create(ctx context.Context, input CreateAthleteInput) (*models.Athlete, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrAthleteNameRequired
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrAthleteEmailRequired
	}

	// Предварительная проверка дубликата; уникальный индекс в БД закрывает
	// гонку между проверкой и вставкой.
	existing, err := s.athleteRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrAthleteNotFound) {
		return nil, fmt.Errorf("failed to check athlete email: %w", err)
	}
	if existing != nil {
		return nil, ErrAthleteEmailConflict
	}

	athlete := &models.Athlete{
		Name:     name,
		Email:    email,
		Height:   input.Height,
		Weight:   input.Weight,
		Country:  input.Country,
		Category: input.Category,
		Active:   true,
	}

	if input.BirthDate != nil && *input.BirthDate != "" {
		birthDate, err := parseDate(*input.BirthDate)
		if err != nil {
			return nil, err
		}
		athlete.BirthDate = &birthDate
	}

	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		if errors.Is(err, repositories.ErrAthleteEmailConflict) {
			return nil, ErrAthleteEmailConflict
		}
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}

	return athlete, nil
}

func (s *athleteService) Ranking(ctx context.Context, category *string, limit int) (*RankingResult, error) {
	if limit < 1 {
		limit = defaultRankingLimit
	}

	athletes, err := s.athleteRepo.ListRanked(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranking: %w", err)
	}

	for i := range athletes {
		populateAthletePhotoURL(&athletes[i], s.uploader)
	}

	categoryName := "Geral"
	if category != nil && *category != "" {
		categoryName = *category
	}

	return &RankingResult{Athletes: athletes, Category: categoryName}, nil
}

func (s *athleteService) UploadPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Athlete, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAthleteNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to get athlete %d: %w", id, err)
	}

	key := fmt.Sprintf("athletes/%d/%s", id, uuid.NewString())
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload athlete photo: %w", err)
	}

	oldKey := athlete.PhotoKey
	if err := s.athleteRepo.UpdatePhotoKey(ctx, id, &key); err != nil {
		return nil, fmt.Errorf("failed to persist athlete photo key: %w", err)
	}

	// Старый объект больше не нужен; неудача удаления не фатальна.
	if oldKey != nil && *oldKey != "" {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	athlete.PhotoKey = &key
	populateAthletePhotoURL(athlete, s.uploader)
	return athlete, nil
}
