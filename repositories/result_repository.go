package repositories

import (
	"context"
	"database/sql"

	"github.com/opencourt/tournament-api/models"
)

type ResultRepository interface {
	ListRecentByAthlete(ctx context.Context, athleteID, limit int) ([]models.Result, error)
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

func (r *postgresResultRepository) ListRecentByAthlete(ctx context.Context, athleteID, limit int) ([]models.Result, error) {
	query := `
		SELECT r.id, r.athlete_id, r.tournament_id, t.name, r.result_date, r.placement, r.points
		FROM results r
		LEFT JOIN tournaments t ON r.tournament_id = t.id
		WHERE r.athlete_id = $1
		ORDER BY r.result_date DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, athleteID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.Result, 0)
	for rows.Next() {
		var res models.Result
		if scanErr := rows.Scan(
			&res.ID, &res.AthleteID, &res.TournamentID, &res.TournamentName,
			&res.ResultDate, &res.Placement, &res.Points,
		); scanErr != nil {
			return nil, scanErr
		}
		results = append(results, res)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
