package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/opencourt/tournament-api/brackets"
	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/repositories"
	"golang.org/x/sync/errgroup"
)

// BracketView — сетка вместе со всеми матчами её пары (турнир, категория).
type BracketView struct {
	Bracket *models.Bracket
	Matches []models.Match
}

type BracketService interface {
	GetBracket(ctx context.Context, tournamentID, categoryID int) (*BracketView, error)
	Generate(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error)
}

type bracketService struct {
	db               *sql.DB
	bracketRepo      repositories.BracketRepository
	registrationRepo repositories.RegistrationRepository
	matchRepo        repositories.MatchRepository
	generator        brackets.Generator
	hub              *brackets.Hub
	logger           *slog.Logger
}

func NewBracketService(
	db *sql.DB,
	bracketRepo repositories.BracketRepository,
	registrationRepo repositories.RegistrationRepository,
	matchRepo repositories.MatchRepository,
	generator brackets.Generator,
	hub *brackets.Hub,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		db:               db,
		bracketRepo:      bracketRepo,
		registrationRepo: registrationRepo,
		matchRepo:        matchRepo,
		generator:        generator,
		hub:              hub,
		logger:           logger,
	}
}

func (s *bracketService) GetBracket(ctx context.Context, tournamentID, categoryID int) (*BracketView, error) {
	view := &BracketView{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bracket, err := s.bracketRepo.GetByTournamentAndCategory(gctx, tournamentID, categoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrBracketNotFound) {
				return ErrBracketNotFound
			}
			return err
		}
		view.Bracket = bracket
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.ListByTournamentAndCategory(gctx, tournamentID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to list matches (tournament %d, category %d): %w", tournamentID, categoryID, err)
		}
		view.Matches = matches
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := decodeBracketStructure(view.Bracket); err != nil {
		return nil, err
	}
	return view, nil
}

// Generate проводит жеребьёвку для пары (турнир, категория): перемешивает
// подтверждённые заявки, перезаписывает сетку и создаёт матчи первого круга.
// Вся запись идёт в одной транзакции; при любой ошибке — откат.
func (s *bracketService) Generate(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error) {
	registrations, err := s.registrationRepo.ListConfirmed(ctx, tournamentID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed registrations (tournament %d, category %d): %w", tournamentID, categoryID, err)
	}
	if len(registrations) < 2 {
		return nil, ErrNotEnoughParticipants
	}

	firstRound, err := s.generator.Generate(ctx, brackets.GenerateParams{Registrations: registrations})
	if err != nil {
		if errors.Is(err, brackets.ErrNotEnoughParticipants) {
			return nil, ErrNotEnoughParticipants
		}
		return nil, fmt.Errorf("failed to generate first round (tournament %d, category %d): %w", tournamentID, categoryID, err)
	}

	structure := models.BracketStructure{
		Participants: firstRound.Seeding,
		Phases:       []models.BracketPhase{},
		Type:         s.generator.GetName(),
	}
	structureJSON, err := json.Marshal(structure)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bracket structure: %w", err)
	}

	bracket := &models.Bracket{
		TournamentID:  tournamentID,
		CategoryID:    categoryID,
		StructureJSON: string(structureJSON),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Error("bracket generation rollback failed",
					slog.Int("tournament_id", tournamentID),
					slog.Int("category_id", categoryID),
					slog.Any("error", rbErr))
			}
		}
	}()

	if err = s.bracketRepo.Upsert(ctx, tx, bracket); err != nil {
		return nil, err
	}

	for _, pair := range firstRound.Pairs {
		match := &models.Match{
			TournamentID: tournamentID,
			CategoryID:   categoryID,
			Phase:        models.PhaseFirst,
			Round:        1,
			Team1ID:      pair.Team1ID,
			Team2ID:      pair.Team2ID,
			Status:       models.MatchStatusScheduled,
		}
		if err = s.matchRepo.Create(ctx, tx, match); err != nil {
			return nil, fmt.Errorf("failed to create first round match: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bracket generation: %w", err)
	}
	committed = true

	bracket.Structure = &structure

	s.logger.Info("bracket generated",
		slog.Int("tournament_id", tournamentID),
		slog.Int("category_id", categoryID),
		slog.Int("participants", len(registrations)),
		slog.Int("matches", len(firstRound.Pairs)))

	if s.hub != nil {
		s.hub.BroadcastTournamentEvent(brackets.Event{
			Type:         brackets.EventBracketGenerated,
			TournamentID: tournamentID,
			Payload:      bracket,
		})
	}

	return bracket, nil
}

func decodeBracketStructure(bracket *models.Bracket) error {
	if bracket == nil || bracket.StructureJSON == "" {
		return nil
	}
	var structure models.BracketStructure
	if err := json.Unmarshal([]byte(bracket.StructureJSON), &structure); err != nil {
		return fmt.Errorf("failed to decode bracket %d structure: %w", bracket.ID, err)
	}
	bracket.Structure = &structure
	return nil
}
