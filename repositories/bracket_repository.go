package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/opencourt/tournament-api/models"
)

var ErrBracketNotFound = errors.New("bracket not found")

type BracketRepository interface {
	GetByTournamentAndCategory(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error)
	// Upsert перезаписывает структуру существующей сетки пары (tournament, category)
	// или создаёт новую. Уникальный индекс по паре закрывает гонку проверка-вставка.
	Upsert(ctx context.Context, exec SQLExecutor, bracket *models.Bracket) error
}

type postgresBracketRepository struct {
	db *sql.DB
}

func NewPostgresBracketRepository(db *sql.DB) BracketRepository {
	return &postgresBracketRepository{db: db}
}

func (r *postgresBracketRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresBracketRepository) GetByTournamentAndCategory(ctx context.Context, tournamentID, categoryID int) (*models.Bracket, error) {
	query := `
		SELECT id, tournament_id, category_id, structure_json, updated_at
		FROM brackets
		WHERE tournament_id = $1 AND category_id = $2`

	b := &models.Bracket{}
	err := r.db.QueryRowContext(ctx, query, tournamentID, categoryID).Scan(
		&b.ID, &b.TournamentID, &b.CategoryID, &b.StructureJSON, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBracketNotFound
		}
		return nil, fmt.Errorf("failed to scan bracket (tournament %d, category %d): %w", tournamentID, categoryID, err)
	}
	return b, nil
}

func (r *postgresBracketRepository) Upsert(ctx context.Context, exec SQLExecutor, b *models.Bracket) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO brackets (tournament_id, category_id, structure_json, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (tournament_id, category_id)
		DO UPDATE SET structure_json = EXCLUDED.structure_json, updated_at = NOW()
		RETURNING id, updated_at`

	err := executor.QueryRowContext(ctx, query,
		b.TournamentID,
		b.CategoryID,
		b.StructureJSON,
	).Scan(&b.ID, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert bracket (tournament %d, category %d): %w", b.TournamentID, b.CategoryID, err)
	}
	return nil
}
