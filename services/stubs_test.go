package services

import (
	"context"
	"io"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/repositories"
	"github.com/opencourt/tournament-api/storage"
)

// Стабы репозиториев для юнит-тестов сервисов. Поля-функции позволяют
// подменять поведение по месту; незаданные методы возвращают нулевые значения.

type stubAthleteRepo struct {
	createFn         func(ctx context.Context, athlete *models.Athlete) error
	getByIDFn        func(ctx context.Context, id int) (*models.Athlete, error)
	getByEmailFn     func(ctx context.Context, email string) (*models.Athlete, error)
	listFn           func(ctx context.Context, filter repositories.ListAthletesFilter) ([]models.Athlete, error)
	countFn          func(ctx context.Context, filter repositories.ListAthletesFilter) (int, error)
	listRankedFn     func(ctx context.Context, category *string, limit int) ([]models.Athlete, error)
	updatePhotoKeyFn func(ctx context.Context, id int, photoKey *string) error
}

func (s *stubAthleteRepo) Create(ctx context.Context, athlete *models.Athlete) error {
	if s.createFn != nil {
		return s.createFn(ctx, athlete)
	}
	return nil
}

func (s *stubAthleteRepo) GetByID(ctx context.Context, id int) (*models.Athlete, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrAthleteNotFound
}

func (s *stubAthleteRepo) GetByEmail(ctx context.Context, email string) (*models.Athlete, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, repositories.ErrAthleteNotFound
}

func (s *stubAthleteRepo) List(ctx context.Context, filter repositories.ListAthletesFilter) ([]models.Athlete, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return []models.Athlete{}, nil
}

func (s *stubAthleteRepo) Count(ctx context.Context, filter repositories.ListAthletesFilter) (int, error) {
	if s.countFn != nil {
		return s.countFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubAthleteRepo) ListRanked(ctx context.Context, category *string, limit int) ([]models.Athlete, error) {
	if s.listRankedFn != nil {
		return s.listRankedFn(ctx, category, limit)
	}
	return []models.Athlete{}, nil
}

func (s *stubAthleteRepo) UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error {
	if s.updatePhotoKeyFn != nil {
		return s.updatePhotoKeyFn(ctx, id, photoKey)
	}
	return nil
}

type stubResultRepo struct {
	listRecentFn func(ctx context.Context, athleteID, limit int) ([]models.Result, error)
}

func (s *stubResultRepo) ListRecentByAthlete(ctx context.Context, athleteID, limit int) ([]models.Result, error) {
	if s.listRecentFn != nil {
		return s.listRecentFn(ctx, athleteID, limit)
	}
	return []models.Result{}, nil
}

type stubMatchRepo struct {
	createFn                      func(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error
	getByIDFn                     func(ctx context.Context, id int) (*models.Match, error)
	listByTournamentFn            func(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error)
	listByTournamentAndCategoryFn func(ctx context.Context, tournamentID, categoryID int) ([]models.Match, error)
	listUpcomingByAthleteFn       func(ctx context.Context, athleteID, limit int) ([]models.Match, error)
	updateResultFn                func(ctx context.Context, id int, team1Score, team2Score int, status models.MatchStatus, notes *string) error
}

func (s *stubMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	if s.createFn != nil {
		return s.createFn(ctx, exec, match)
	}
	return nil
}

func (s *stubMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrMatchNotFound
}

func (s *stubMatchRepo) ListByTournament(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error) {
	if s.listByTournamentFn != nil {
		return s.listByTournamentFn(ctx, tournamentID, categoryID, status)
	}
	return []models.Match{}, nil
}

func (s *stubMatchRepo) ListByTournamentAndCategory(ctx context.Context, tournamentID, categoryID int) ([]models.Match, error) {
	if s.listByTournamentAndCategoryFn != nil {
		return s.listByTournamentAndCategoryFn(ctx, tournamentID, categoryID)
	}
	return []models.Match{}, nil
}

func (s *stubMatchRepo) ListUpcomingByAthlete(ctx context.Context, athleteID, limit int) ([]models.Match, error) {
	if s.listUpcomingByAthleteFn != nil {
		return s.listUpcomingByAthleteFn(ctx, athleteID, limit)
	}
	return []models.Match{}, nil
}

func (s *stubMatchRepo) UpdateResult(ctx context.Context, id int, team1Score, team2Score int, status models.MatchStatus, notes *string) error {
	if s.updateResultFn != nil {
		return s.updateResultFn(ctx, id, team1Score, team2Score, status, notes)
	}
	return nil
}

type stubRegistrationRepo struct {
	createFn                          func(ctx context.Context, registration *models.Registration) error
	findByTournamentCategoryAthleteFn func(ctx context.Context, tournamentID, categoryID, athleteID int) (*models.Registration, error)
	listByTournamentFn                func(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error)
	listConfirmedFn                   func(ctx context.Context, tournamentID, categoryID int) ([]models.Registration, error)
	countConfirmedByCategoryFn        func(ctx context.Context, categoryID int) (int, error)
}

func (s *stubRegistrationRepo) Create(ctx context.Context, registration *models.Registration) error {
	if s.createFn != nil {
		return s.createFn(ctx, registration)
	}
	return nil
}

func (s *stubRegistrationRepo) FindByTournamentCategoryAthlete(ctx context.Context, tournamentID, categoryID, athleteID int) (*models.Registration, error) {
	if s.findByTournamentCategoryAthleteFn != nil {
		return s.findByTournamentCategoryAthleteFn(ctx, tournamentID, categoryID, athleteID)
	}
	return nil, repositories.ErrRegistrationNotFound
}

func (s *stubRegistrationRepo) ListByTournament(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error) {
	if s.listByTournamentFn != nil {
		return s.listByTournamentFn(ctx, tournamentID, categoryID)
	}
	return []models.Registration{}, nil
}

func (s *stubRegistrationRepo) ListConfirmed(ctx context.Context, tournamentID, categoryID int) ([]models.Registration, error) {
	if s.listConfirmedFn != nil {
		return s.listConfirmedFn(ctx, tournamentID, categoryID)
	}
	return []models.Registration{}, nil
}

func (s *stubRegistrationRepo) CountConfirmedByCategory(ctx context.Context, categoryID int) (int, error) {
	if s.countConfirmedByCategoryFn != nil {
		return s.countConfirmedByCategoryFn(ctx, categoryID)
	}
	return 0, nil
}

type stubTournamentRepo struct {
	createFn  func(ctx context.Context, tournament *models.Tournament) error
	getByIDFn func(ctx context.Context, id int) (*models.Tournament, error)
	listFn    func(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	countFn   func(ctx context.Context, filter repositories.ListTournamentsFilter) (int, error)
}

func (s *stubTournamentRepo) Create(ctx context.Context, tournament *models.Tournament) error {
	if s.createFn != nil {
		return s.createFn(ctx, tournament)
	}
	return nil
}

func (s *stubTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrTournamentNotFound
}

func (s *stubTournamentRepo) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return []models.Tournament{}, nil
}

func (s *stubTournamentRepo) Count(ctx context.Context, filter repositories.ListTournamentsFilter) (int, error) {
	if s.countFn != nil {
		return s.countFn(ctx, filter)
	}
	return 0, nil
}

type stubCategoryRepo struct {
	createFn           func(ctx context.Context, category *models.Category) error
	getByIDFn          func(ctx context.Context, id int) (*models.Category, error)
	listByTournamentFn func(ctx context.Context, tournamentID int) ([]models.Category, error)
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if s.createFn != nil {
		return s.createFn(ctx, category)
	}
	return nil
}

func (s *stubCategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrCategoryNotFound
}

func (s *stubCategoryRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.Category, error) {
	if s.listByTournamentFn != nil {
		return s.listByTournamentFn(ctx, tournamentID)
	}
	return []models.Category{}, nil
}

type stubBracketRepo struct {
	getFn    func(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error)
	upsertFn func(ctx context.Context, exec repositories.SQLExecutor, bracket *models.Bracket) error
}

func (s *stubBracketRepo) GetByTournamentAndCategory(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error) {
	if s.getFn != nil {
		return s.getFn(ctx, tournamentID, categoryID)
	}
	return nil, repositories.ErrBracketNotFound
}

func (s *stubBracketRepo) Upsert(ctx context.Context, exec repositories.SQLExecutor, bracket *models.Bracket) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, exec, bracket)
	}
	return nil
}

type stubUploader struct {
	uploadFn  func(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error)
	deleteFn  func(ctx context.Context, key string) error
	deleted   []string
	publicURL string
}

func (s *stubUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, key, contentType, reader)
	}
	return &storage.UploadResult{Key: key, Location: s.GetPublicURL(key)}, nil
}

func (s *stubUploader) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	if s.deleteFn != nil {
		return s.deleteFn(ctx, key)
	}
	return nil
}

func (s *stubUploader) GetPublicURL(key string) string {
	base := s.publicURL
	if base == "" {
		base = "https://cdn.test"
	}
	return base + "/" + key
}
