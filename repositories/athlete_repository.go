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
	ErrAthleteNotFound      = errors.New("athlete not found")
	ErrAthleteEmailConflict = errors.New("athlete email conflict")
)

type ListAthletesFilter struct {
	Category *string
	Country  *string
	Limit    int
	Offset   int
}

type AthleteRepository interface {
	Create(ctx context.Context, athlete *models.Athlete) error
	GetByID(ctx context.Context, id int) (*models.Athlete, error)
	GetByEmail(ctx context.Context, email string) (*models.Athlete, error)
	List(ctx context.Context, filter ListAthletesFilter) ([]models.Athlete, error)
	Count(ctx context.Context, filter ListAthletesFilter) (int, error)
	ListRanked(ctx context.Context, category *string, limit int) ([]models.Athlete, error)
	UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error
}

type postgresAthleteRepository struct {
	db *sql.DB
}

func NewPostgresAthleteRepository(db *sql.DB) AthleteRepository {
	return &postgresAthleteRepository{db: db}
}

const athleteColumns = `id, name, email, birth_date, height, weight, country, category, ranking_position, active, photo_key, created_at`

func (r *postgresAthleteRepository) Create(ctx context.Context, a *models.Athlete) error {
	query := `
		INSERT INTO athletes (name, email, birth_date, height, weight, country, category, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		a.Name,
		a.Email,
		a.BirthDate,
		a.Height,
		a.Weight,
		a.Country,
		a.Category,
		a.Active,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "athletes_email_key" {
				return ErrAthleteEmailConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresAthleteRepository) GetByID(ctx context.Context, id int) (*models.Athlete, error) {
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE id = $1`
	return r.scanAthleteRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresAthleteRepository) GetByEmail(ctx context.Context, email string) (*models.Athlete, error) {
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE email = $1`
	return r.scanAthleteRow(r.db.QueryRowContext(ctx, query, email))
}

func (r *postgresAthleteRepository) List(ctx context.Context, filter ListAthletesFilter) ([]models.Athlete, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + athleteColumns + ` FROM athletes WHERE active = TRUE`)

	args := []interface{}{}
	argID := 1

	if filter.Category != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argID))
		args = append(args, *filter.Category)
		argID++
	}
	if filter.Country != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND country = $%d", argID))
		args = append(args, *filter.Country)
		argID++
	}

	queryBuilder.WriteString(" ORDER BY ranking_position ASC NULLS LAST, id ASC")

	if filter.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argID))
		args = append(args, filter.Offset)
	}

	return r.queryAthletes(ctx, queryBuilder.String(), args...)
}

func (r *postgresAthleteRepository) Count(ctx context.Context, filter ListAthletesFilter) (int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM athletes WHERE active = TRUE`)

	args := []interface{}{}
	argID := 1

	if filter.Category != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argID))
		args = append(args, *filter.Category)
		argID++
	}
	if filter.Country != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND country = $%d", argID))
		args = append(args, *filter.Country)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, queryBuilder.String(), args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count athletes: %w", err)
	}
	return total, nil
}

// ListRanked возвращает активных атлетов в порядке ранга; атлеты без позиции — в конце.
func (r *postgresAthleteRepository) ListRanked(ctx context.Context, category *string, limit int) ([]models.Athlete, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + athleteColumns + ` FROM athletes WHERE active = TRUE`)

	args := []interface{}{}
	argID := 1

	if category != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argID))
		args = append(args, *category)
		argID++
	}

	queryBuilder.WriteString(" ORDER BY ranking_position ASC NULLS LAST, id ASC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
	args = append(args, limit)

	return r.queryAthletes(ctx, queryBuilder.String(), args...)
}

func (r *postgresAthleteRepository) UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error {
	query := `UPDATE athletes SET photo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, photoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAthleteNotFound)
}

func (r *postgresAthleteRepository) queryAthletes(ctx context.Context, query string, args ...interface{}) ([]models.Athlete, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	athletes := make([]models.Athlete, 0)
	for rows.Next() {
		var a models.Athlete
		if scanErr := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.BirthDate, &a.Height, &a.Weight,
			&a.Country, &a.Category, &a.RankingPosition, &a.Active, &a.PhotoKey, &a.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		athletes = append(athletes, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return athletes, nil
}

func (r *postgresAthleteRepository) scanAthleteRow(row *sql.Row) (*models.Athlete, error) {
	a := &models.Athlete{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.BirthDate, &a.Height, &a.Weight,
		&a.Country, &a.Category, &a.RankingPosition, &a.Active, &a.PhotoKey, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to scan athlete: %w", err)
	}
	return a, nil
}
