package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/playoff-bracket/models"
)

const bracketOwnerSeasonConstraint = "brackets_owner_season_key"

var (
	ErrBracketNotFound     = errors.New("bracket not found")
	ErrBracketConflict     = errors.New("user already has a bracket for this season")
	ErrBracketOwnerInvalid = errors.New("invalid bracket owner reference")
)

type BracketRepository interface {
	Create(ctx context.Context, exec SQLExecutor, bracket *models.Bracket) error
	GetByID(ctx context.Context, id int) (*models.Bracket, error)
	ListByTournament(ctx context.Context, seasonYear int) ([]models.Bracket, error)
	ListByUser(ctx context.Context, userID int) ([]models.Bracket, error)
	Delete(ctx context.Context, id int) error
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

func (r *postgresBracketRepository) Create(ctx context.Context, exec SQLExecutor, b *models.Bracket) error {
	query := `
		INSERT INTO brackets (user_id, bracket_name, season_year, elevated)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		b.UserID, b.Name, b.SeasonYear, b.Elevated,
	).Scan(&b.ID, &b.CreatedAt)

	return r.handleBracketError(err)
}

const selectBracket = `
	SELECT
		b.id, b.user_id, COALESCE(u.display_name, ''), b.bracket_name, b.season_year,
		b.elevated, b.created_at,
		(SELECT COUNT(*) FROM bracket_predictions bp WHERE bp.bracket_id = b.id)
	FROM brackets b
	LEFT JOIN users u ON u.id = b.user_id`

func scanBracket(scanner interface{ Scan(...interface{}) error }, b *models.Bracket) error {
	return scanner.Scan(
		&b.ID, &b.UserID, &b.OwnerDisplayName, &b.Name, &b.SeasonYear,
		&b.Elevated, &b.CreatedAt, &b.PredictionCount,
	)
}

func (r *postgresBracketRepository) GetByID(ctx context.Context, id int) (*models.Bracket, error) {
	query := selectBracket + ` WHERE b.id = $1`

	b := &models.Bracket{}
	err := scanBracket(r.db.QueryRowContext(ctx, query, id), b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBracketNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresBracketRepository) ListByTournament(ctx context.Context, seasonYear int) ([]models.Bracket, error) {
	query := selectBracket + ` WHERE b.season_year = $1 ORDER BY b.created_at DESC, b.id DESC`

	rows, err := r.db.QueryContext(ctx, query, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list brackets for season %d: %w", seasonYear, err)
	}
	return scanBrackets(rows)
}

// ListByUser возвращает сетки пользователя за все сезоны, новые первыми.
func (r *postgresBracketRepository) ListByUser(ctx context.Context, userID int) ([]models.Bracket, error) {
	query := selectBracket + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brackets for user %d: %w", userID, err)
	}
	return scanBrackets(rows)
}

func scanBrackets(rows *sql.Rows) ([]models.Bracket, error) {
	defer rows.Close()

	brackets := make([]models.Bracket, 0)
	for rows.Next() {
		var b models.Bracket
		if err := scanBracket(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan bracket row: %w", err)
		}
		brackets = append(brackets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bracket rows: %w", err)
	}
	return brackets, nil
}

// Delete удаляет сетку вместе со всеми прогнозами (ON DELETE CASCADE).
func (r *postgresBracketRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM brackets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrBracketNotFound)
}

func (r *postgresBracketRepository) handleBracketError(err error) error {
	if err == nil {
		return nil
	}
	if constraint, ok := pqViolation(err, pqUniqueViolation); ok && constraint == bracketOwnerSeasonConstraint {
		return ErrBracketConflict
	}
	if _, ok := pqViolation(err, pqForeignKeyViolation); ok {
		return ErrBracketOwnerInvalid
	}
	return err
}
