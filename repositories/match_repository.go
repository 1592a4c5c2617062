package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/opencourt/tournament-api/models"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchReferenceInvalid = errors.New("match references invalid tournament, category or registration")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error)
	ListByTournamentAndCategory(ctx context.Context, tournamentID, categoryID int) ([]models.Match, error)
	ListUpcomingByAthlete(ctx context.Context, athleteID, limit int) ([]models.Match, error)
	UpdateResult(ctx context.Context, id int, team1Score, team2Score int, status models.MatchStatus, notes *string) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `id, tournament_id, category_id, phase, round, team1_id, team2_id, team1_score, team2_score, status, scheduled_at, notes, created_at`

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches (tournament_id, category_id, phase, round, team1_id, team2_id, status, scheduled_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		m.TournamentID,
		m.CategoryID,
		m.Phase,
		m.Round,
		m.Team1ID,
		m.Team2ID,
		m.Status,
		m.ScheduledAt,
		m.Notes,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrMatchReferenceInvalid
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.CategoryID, &m.Phase, &m.Round,
		&m.Team1ID, &m.Team2ID, &m.Team1Score, &m.Team2Score,
		&m.Status, &m.ScheduledAt, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int, categoryID *int, status *models.MatchStatus) ([]models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	placeholderIndex := 2

	if categoryID != nil {
		queryBuilder.WriteString(" AND category_id = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *categoryID)
		placeholderIndex++
	}
	if status != nil {
		queryBuilder.WriteString(" AND status = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *status)
	}

	queryBuilder.WriteString(" ORDER BY scheduled_at ASC NULLS LAST, id ASC")

	return r.queryMatches(ctx, queryBuilder.String(), args...)
}

func (r *postgresMatchRepository) ListByTournamentAndCategory(ctx context.Context, tournamentID, categoryID int) ([]models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE tournament_id = $1 AND category_id = $2
		ORDER BY round ASC, id ASC`

	return r.queryMatches(ctx, query, tournamentID, categoryID)
}

// ListUpcomingByAthlete находит ближайшие матчи атлета через его заявки:
// заявка может стоять в любом из двух слотов матча.
func (r *postgresMatchRepository) ListUpcomingByAthlete(ctx context.Context, athleteID, limit int) ([]models.Match, error) {
	query := `
		SELECT ` + matchColumnsPrefixed("m") + `
		FROM matches m
		JOIN registrations reg ON m.team1_id = reg.id OR m.team2_id = reg.id
		WHERE reg.athlete_id = $1 AND m.status IN ($2, $3)
		ORDER BY m.scheduled_at ASC NULLS LAST, m.id ASC
		LIMIT $4`

	return r.queryMatches(ctx, query, athleteID, models.MatchStatusScheduled, models.MatchStatusInProgress, limit)
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, id int, team1Score, team2Score int, status models.MatchStatus, notes *string) error {
	query := `
		UPDATE matches SET
			team1_score = $1,
			team2_score = $2,
			status = $3,
			notes = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, team1Score, team2Score, status, notes, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func matchColumnsPrefixed(alias string) string {
	cols := strings.Split(matchColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID, &m.TournamentID, &m.CategoryID, &m.Phase, &m.Round,
			&m.Team1ID, &m.Team2ID, &m.Team1Score, &m.Team2Score,
			&m.Status, &m.ScheduledAt, &m.Notes, &m.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
