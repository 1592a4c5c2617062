package handlers

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"
	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/services"
)

// Стабы сервисов для тестов HTTP-слоя. Маршруты собираются так же, как в
// routes.SetupRoutes, но без middleware, чтобы не шуметь в выводе тестов.

func newTestRouter(
	athleteHandler *AthleteHandler,
	tournamentHandler *TournamentHandler,
	bracketHandler *BracketHandler,
	matchHandler *MatchHandler,
	registrationHandler *RegistrationHandler,
) *chi.Mux {
	router := chi.NewRouter()

	if athleteHandler != nil {
		router.Route("/atletas", func(r chi.Router) {
			r.Get("/", athleteHandler.ListHandler)
			r.Post("/", athleteHandler.CreateHandler)
			r.Get("/{atletaID}", athleteHandler.GetByIDHandler)
			r.Post("/{atletaID}/foto", athleteHandler.UploadPhotoHandler)
		})
		router.Get("/ranking", athleteHandler.RankingHandler)
	}

	if tournamentHandler != nil {
		router.Route("/torneios", func(r chi.Router) {
			r.Get("/", tournamentHandler.ListHandler)
			r.Post("/", tournamentHandler.CreateHandler)
			r.Get("/{torneioID}", tournamentHandler.GetByIDHandler)
			r.Post("/{torneioID}/categorias", tournamentHandler.CreateCategoryHandler)
			if bracketHandler != nil {
				r.Get("/{torneioID}/chaveamento/{categoriaID}", bracketHandler.GetHandler)
				r.Post("/{torneioID}/chaveamento/{categoriaID}/gerar", bracketHandler.GenerateHandler)
			}
			if matchHandler != nil {
				r.Get("/{torneioID}/jogos", matchHandler.ListByTournamentHandler)
			}
			if registrationHandler != nil {
				r.Get("/{torneioID}/inscricoes", registrationHandler.ListByTournamentHandler)
			}
		})
	}

	if matchHandler != nil {
		router.Post("/jogos/{jogoID}/resultado", matchHandler.SubmitResultHandler)
	}
	if registrationHandler != nil {
		router.Post("/inscricoes", registrationHandler.CreateHandler)
	}

	return router
}

type stubAthleteService struct {
	listFn        func(ctx context.Context, input services.ListAthletesInput) (*services.AthleteListResult, error)
	getDetailFn   func(ctx context.Context, id int) (*services.AthleteDetail, error)
	createFn      func(ctx context.Context, input services.CreateAthleteInput) (*models.Athlete, error)
	rankingFn     func(ctx context.Context, category *string, limit int) (*services.RankingResult, error)
	uploadPhotoFn func(ctx context.Context, id int, file io.Reader, contentType string) (*models.Athlete, error)
}

func (s *stubAthleteService) List(ctx context.Context, input services.ListAthletesInput) (*services.AthleteListResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubAthleteService) GetDetail(ctx context.Context, id int) (*services.AthleteDetail, error) {
	return s.getDetailFn(ctx, id)
}

func (s *stubAthleteService) Create(ctx context.Context, input services.CreateAthleteInput) (*models.Athlete, error) {
	return s.createFn(ctx, input)
}

func (s *stubAthleteService) Ranking(ctx context.Context, category *string, limit int) (*services.RankingResult, error) {
	return s.rankingFn(ctx, category, limit)
}

func (s *stubAthleteService) UploadPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Athlete, error) {
	return s.uploadPhotoFn(ctx, id, file, contentType)
}

type stubTournamentService struct {
	listFn           func(ctx context.Context, input services.ListTournamentsInput) (*services.TournamentListResult, error)
	getDetailFn      func(ctx context.Context, id int) (*services.TournamentDetail, error)
	createFn         func(ctx context.Context, input services.CreateTournamentInput) (*models.Tournament, error)
	createCategoryFn func(ctx context.Context, tournamentID int, input services.CreateCategoryInput) (*models.Category, error)
}

func (s *stubTournamentService) List(ctx context.Context, input services.ListTournamentsInput) (*services.TournamentListResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubTournamentService) GetDetail(ctx context.Context, id int) (*services.TournamentDetail, error) {
	return s.getDetailFn(ctx, id)
}

func (s *stubTournamentService) Create(ctx context.Context, input services.CreateTournamentInput) (*models.Tournament, error) {
	return s.createFn(ctx, input)
}

func (s *stubTournamentService) CreateCategory(ctx context.Context, tournamentID int, input services.CreateCategoryInput) (*models.Category, error) {
	return s.createCategoryFn(ctx, tournamentID, input)
}

type stubBracketService struct {
	getBracketFn func(ctx context.Context, tournamentID, categoryID int) (*services.BracketView, error)
	generateFn   func(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error)
}

func (s *stubBracketService) GetBracket(ctx context.Context, tournamentID, categoryID int) (*services.BracketView, error) {
	return s.getBracketFn(ctx, tournamentID, categoryID)
}

func (s *stubBracketService) Generate(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error) {
	return s.generateFn(ctx, tournamentID, categoryID)
}

type stubMatchService struct {
	submitResultFn     func(ctx context.Context, matchID int, input services.SubmitResultInput) (*models.Match, error)
	listByTournamentFn func(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error)
}

func (s *stubMatchService) SubmitResult(ctx context.Context, matchID int, input services.SubmitResultInput) (*models.Match, error) {
	return s.submitResultFn(ctx, matchID, input)
}

func (s *stubMatchService) ListByTournament(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error) {
	return s.listByTournamentFn(ctx, tournamentID, categoryID, status)
}

type stubRegistrationService struct {
	createFn           func(ctx context.Context, input services.CreateRegistrationInput) (*models.Registration, error)
	listByTournamentFn func(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error)
}

func (s *stubRegistrationService) Create(ctx context.Context, input services.CreateRegistrationInput) (*models.Registration, error) {
	return s.createFn(ctx, input)
}

func (s *stubRegistrationService) ListByTournament(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error) {
	return s.listByTournamentFn(ctx, tournamentID, categoryID)
}
