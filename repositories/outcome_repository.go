package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/playoff-bracket/models"
)

var ErrOutcomeFinalWithoutWinner = errors.New("final outcome must have a winner")

type OutcomeRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, outcomes []models.OutcomeSlot) error
	ListByTournament(ctx context.Context, seasonYear int) ([]models.OutcomeSlot, error)
	DeleteByTournament(ctx context.Context, seasonYear int) (int64, error)
}

type postgresOutcomeRepository struct {
	db *sql.DB
}

func NewPostgresOutcomeRepository(db *sql.DB) OutcomeRepository {
	return &postgresOutcomeRepository{db: db}
}

func (r *postgresOutcomeRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresOutcomeRepository) Upsert(ctx context.Context, exec SQLExecutor, outcomes []models.OutcomeSlot) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO game_results
			(season_year, slot_key, home_participant_id, away_participant_id, winner_id, is_final, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (season_year, slot_key) DO UPDATE SET
			home_participant_id = EXCLUDED.home_participant_id,
			away_participant_id = EXCLUDED.away_participant_id,
			winner_id = EXCLUDED.winner_id,
			is_final = EXCLUDED.is_final,
			updated_at = EXCLUDED.updated_at`

	for _, o := range outcomes {
		_, err := executor.ExecContext(ctx, query,
			o.SeasonYear, o.SlotKey,
			nullableID(o.HomeParticipantID), nullableID(o.AwayParticipantID), nullableID(o.WinnerID),
			o.IsFinal,
		)
		if err != nil {
			if _, ok := pqViolation(err, pqCheckViolation); ok {
				return fmt.Errorf("%w: %s", ErrOutcomeFinalWithoutWinner, o.SlotKey)
			}
			return fmt.Errorf("failed to upsert outcome %s: %w", o.SlotKey, err)
		}
	}
	return nil
}

func (r *postgresOutcomeRepository) ListByTournament(ctx context.Context, seasonYear int) ([]models.OutcomeSlot, error) {
	query := `
		SELECT season_year, slot_key, home_participant_id, away_participant_id, winner_id, is_final, updated_at
		FROM game_results
		WHERE season_year = $1
		ORDER BY slot_key`

	rows, err := r.db.QueryContext(ctx, query, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list outcomes for season %d: %w", seasonYear, err)
	}
	defer rows.Close()

	outcomes := make([]models.OutcomeSlot, 0)
	for rows.Next() {
		var (
			o                  models.OutcomeSlot
			home, away, winner sql.NullString
		)
		if err := rows.Scan(&o.SeasonYear, &o.SlotKey, &home, &away, &winner, &o.IsFinal, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outcome row: %w", err)
		}
		o.HomeParticipantID = idFromNull(home)
		o.AwayParticipantID = idFromNull(away)
		o.WinnerID = idFromNull(winner)
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outcome rows: %w", err)
	}
	return outcomes, nil
}

func (r *postgresOutcomeRepository) DeleteByTournament(ctx context.Context, seasonYear int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM game_results WHERE season_year = $1`, seasonYear)
	if err != nil {
		return 0, fmt.Errorf("failed to delete outcomes for season %d: %w", seasonYear, err)
	}
	return result.RowsAffected()
}
