package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencourt/tournament-api/brackets"
	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/repositories"
)

type SubmitResultInput struct {
	Team1Score *int    `json:"team1_score"`
	Team2Score *int    `json:"team2_score"`
	Notes      *string `json:"notes"`
}

type MatchService interface {
	SubmitResult(ctx context.Context, matchID int, input SubmitResultInput) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error)
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       *brackets.Hub
}

func NewMatchService(matchRepo repositories.MatchRepository, hub *brackets.Hub) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		hub:       hub,
	}
}

// SubmitResult фиксирует счёт и закрывает матч. Повторная отправка
// перезаписывает предыдущий результат.
func (s *matchService) SubmitResult(ctx context.Context, matchID int, input SubmitResultInput) (*models.Match, error) {
	if input.Team1Score == nil || input.Team2Score == nil {
		return nil, ErrMatchScoresRequired
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", matchID, err)
	}

	err = s.matchRepo.UpdateResult(ctx, matchID, *input.Team1Score, *input.Team2Score, models.MatchStatusFinished, input.Notes)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d result: %w", matchID, err)
	}

	match.Team1Score = input.Team1Score
	match.Team2Score = input.Team2Score
	match.Status = models.MatchStatusFinished
	match.Notes = input.Notes

	// TODO: пересчёт рейтинга атлетов по результату матча (система начисления
	// очков ещё не определена).

	if s.hub != nil {
		s.hub.BroadcastTournamentEvent(brackets.Event{
			Type:         brackets.EventMatchResult,
			TournamentID: match.TournamentID,
			Payload:      match,
		})
	}

	return match, nil
}

func (s *matchService) ListByTournament(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, categoryID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}
