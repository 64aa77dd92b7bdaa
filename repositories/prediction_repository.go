package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/playoff-bracket/models"
)

var (
	ErrPredictionSlotConflict = errors.New("duplicate prediction slot in bracket")
	ErrPredictionBracket      = errors.New("invalid bracket reference for prediction")
)

type PredictionRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, bracketID int, slots []models.PredictionSlot) error
	ListByBracket(ctx context.Context, bracketID int) ([]models.PredictionSlot, error)
	ListByTournament(ctx context.Context, seasonYear int) (map[int][]models.PredictionSlot, error)
	ListByUser(ctx context.Context, userID int) (map[int][]models.PredictionSlot, error)
}

type postgresPredictionRepository struct {
	db *sql.DB
}

func NewPostgresPredictionRepository(db *sql.DB) PredictionRepository {
	return &postgresPredictionRepository{db: db}
}

func (r *postgresPredictionRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// CreateBatch пишет строки по одной; вызывается внутри транзакции создания сетки.
func (r *postgresPredictionRepository) CreateBatch(ctx context.Context, exec SQLExecutor, bracketID int, slots []models.PredictionSlot) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO bracket_predictions
			(bracket_id, slot_key, predicted_winner_id, home_participant_id, away_participant_id)
		VALUES ($1, $2, $3, $4, $5)`

	for _, s := range slots {
		_, err := executor.ExecContext(ctx, query,
			bracketID, s.SlotKey, string(s.PredictedWinnerID),
			nullableID(s.HomeParticipantID), nullableID(s.AwayParticipantID),
		)
		if err != nil {
			if _, ok := pqViolation(err, pqUniqueViolation); ok {
				return fmt.Errorf("%w: %s", ErrPredictionSlotConflict, s.SlotKey)
			}
			if _, ok := pqViolation(err, pqForeignKeyViolation); ok {
				return ErrPredictionBracket
			}
			return fmt.Errorf("failed to insert prediction slot %s: %w", s.SlotKey, err)
		}
	}
	return nil
}

func (r *postgresPredictionRepository) ListByBracket(ctx context.Context, bracketID int) ([]models.PredictionSlot, error) {
	query := `
		SELECT bracket_id, slot_key, predicted_winner_id, home_participant_id, away_participant_id
		FROM bracket_predictions
		WHERE bracket_id = $1
		ORDER BY slot_key`

	rows, err := r.db.QueryContext(ctx, query, bracketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for bracket %d: %w", bracketID, err)
	}
	defer rows.Close()

	slots := make([]models.PredictionSlot, 0)
	for rows.Next() {
		s, err := scanPredictionSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prediction rows: %w", err)
	}
	return slots, nil
}

func (r *postgresPredictionRepository) ListByTournament(ctx context.Context, seasonYear int) (map[int][]models.PredictionSlot, error) {
	query := `
		SELECT bp.bracket_id, bp.slot_key, bp.predicted_winner_id, bp.home_participant_id, bp.away_participant_id
		FROM bracket_predictions bp
		JOIN brackets b ON b.id = bp.bracket_id
		WHERE b.season_year = $1
		ORDER BY bp.bracket_id, bp.slot_key`

	rows, err := r.db.QueryContext(ctx, query, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for season %d: %w", seasonYear, err)
	}
	return groupByBracket(rows)
}

func (r *postgresPredictionRepository) ListByUser(ctx context.Context, userID int) (map[int][]models.PredictionSlot, error) {
	query := `
		SELECT bp.bracket_id, bp.slot_key, bp.predicted_winner_id, bp.home_participant_id, bp.away_participant_id
		FROM bracket_predictions bp
		JOIN brackets b ON b.id = bp.bracket_id
		WHERE b.user_id = $1
		ORDER BY bp.bracket_id, bp.slot_key`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for user %d: %w", userID, err)
	}
	return groupByBracket(rows)
}

func groupByBracket(rows *sql.Rows) (map[int][]models.PredictionSlot, error) {
	defer rows.Close()

	byBracket := make(map[int][]models.PredictionSlot)
	for rows.Next() {
		s, err := scanPredictionSlot(rows)
		if err != nil {
			return nil, err
		}
		byBracket[s.BracketID] = append(byBracket[s.BracketID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prediction rows: %w", err)
	}
	return byBracket, nil
}

func scanPredictionSlot(rows *sql.Rows) (models.PredictionSlot, error) {
	var (
		s          models.PredictionSlot
		winner     string
		home, away sql.NullString
	)
	if err := rows.Scan(&s.BracketID, &s.SlotKey, &winner, &home, &away); err != nil {
		return s, fmt.Errorf("failed to scan prediction row: %w", err)
	}
	s.PredictedWinnerID = models.ParticipantID(winner)
	s.HomeParticipantID = idFromNull(home)
	s.AwayParticipantID = idFromNull(away)
	return s, nil
}
