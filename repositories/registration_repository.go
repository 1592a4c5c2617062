package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/opencourt/tournament-api/models"
)

var (
	ErrRegistrationNotFound         = errors.New("registration not found")
	ErrRegistrationConflict         = errors.New("registration already exists for this athlete and category")
	ErrRegistrationReferenceInvalid = errors.New("registration references invalid tournament, category or athlete")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	FindByTournamentCategoryAthlete(ctx context.Context, tournamentID, categoryID, athleteID int) (*models.Registration, error)
	ListByTournament(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error)
	ListConfirmed(ctx context.Context, tournamentID, categoryID int) ([]models.Registration, error)
	CountConfirmedByCategory(ctx context.Context, categoryID int) (int, error)
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

const registrationColumns = `id, tournament_id, category_id, athlete_id, partner_id, team_name, status, created_at`

func (r *postgresRegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	query := `
		INSERT INTO registrations (tournament_id, category_id, athlete_id, partner_id, team_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		reg.TournamentID,
		reg.CategoryID,
		reg.AthleteID,
		reg.PartnerID,
		reg.TeamName,
		reg.Status,
	).Scan(&reg.ID, &reg.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation — одна заявка на (турнир, категория, атлет)
				return ErrRegistrationConflict
			case "23503": // foreign_key_violation
				return ErrRegistrationReferenceInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresRegistrationRepository) FindByTournamentCategoryAthlete(ctx context.Context, tournamentID, categoryID, athleteID int) (*models.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE tournament_id = $1 AND category_id = $2 AND athlete_id = $3`

	reg := &models.Registration{}
	err := r.db.QueryRowContext(ctx, query, tournamentID, categoryID, athleteID).Scan(
		&reg.ID, &reg.TournamentID, &reg.CategoryID, &reg.AthleteID,
		&reg.PartnerID, &reg.TeamName, &reg.Status, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to scan registration: %w", err)
	}
	return reg, nil
}

func (r *postgresRegistrationRepository) ListByTournament(ctx context.Context, tournamentID int, categoryID *int) ([]models.Registration, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + registrationColumns + ` FROM registrations WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	if categoryID != nil {
		queryBuilder.WriteString(" AND category_id = $2")
		args = append(args, *categoryID)
	}

	return r.queryRegistrations(ctx, queryBuilder.String(), args...)
}

func (r *postgresRegistrationRepository) ListConfirmed(ctx context.Context, tournamentID, categoryID int) ([]models.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE tournament_id = $1 AND category_id = $2 AND status = $3
		ORDER BY id ASC`

	return r.queryRegistrations(ctx, query, tournamentID, categoryID, models.RegistrationStatusConfirmed)
}

func (r *postgresRegistrationRepository) CountConfirmedByCategory(ctx context.Context, categoryID int) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE category_id = $1 AND status = $2`

	var total int
	err := r.db.QueryRowContext(ctx, query, categoryID, models.RegistrationStatusConfirmed).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed registrations for category %d: %w", categoryID, err)
	}
	return total, nil
}

func (r *postgresRegistrationRepository) queryRegistrations(ctx context.Context, query string, args ...interface{}) ([]models.Registration, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		if scanErr := rows.Scan(
			&reg.ID, &reg.TournamentID, &reg.CategoryID, &reg.AthleteID,
			&reg.PartnerID, &reg.TeamName, &reg.Status, &reg.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		registrations = append(registrations, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return registrations, nil
}
