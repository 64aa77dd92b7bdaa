package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/playoff-bracket/models"
)

var ErrParticipantConflict = errors.New("participant listed twice for the season")

type ParticipantRepository interface {
	ListQualified(ctx context.Context, seasonYear int) ([]models.Participant, error)
	ReplaceQualified(ctx context.Context, exec SQLExecutor, seasonYear int, participants []models.Participant) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// ListQualified возвращает команды плей-офф, по конференции и посеву.
func (r *postgresParticipantRepository) ListQualified(ctx context.Context, seasonYear int) ([]models.Participant, error) {
	query := `
		SELECT participant_id, season_year, name, abbreviation, location, conference, seed, logo_url
		FROM participants
		WHERE season_year = $1
		ORDER BY conference, seed`

	rows, err := r.db.QueryContext(ctx, query, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for season %d: %w", seasonYear, err)
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		var id, conf string
		if err := rows.Scan(&id, &p.SeasonYear, &p.Name, &p.Abbreviation, &p.Location, &conf, &p.Seed, &p.LogoURL); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		p.ID = models.ParticipantID(id)
		p.Conference = models.Conference(conf)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) ReplaceQualified(ctx context.Context, exec SQLExecutor, seasonYear int, participants []models.Participant) error {
	executor := r.getExecutor(exec)

	if _, err := executor.ExecContext(ctx, `DELETE FROM participants WHERE season_year = $1`, seasonYear); err != nil {
		return fmt.Errorf("failed to clear participants for season %d: %w", seasonYear, err)
	}

	query := `
		INSERT INTO participants
			(season_year, participant_id, name, abbreviation, location, conference, seed, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, p := range participants {
		_, err := executor.ExecContext(ctx, query,
			seasonYear, string(p.ID), p.Name, p.Abbreviation, p.Location, string(p.Conference), p.Seed, p.LogoURL,
		)
		if err != nil {
			if _, ok := pqViolation(err, pqUniqueViolation); ok {
				return fmt.Errorf("%w: %s", ErrParticipantConflict, p.ID)
			}
			return fmt.Errorf("failed to insert participant %s: %w", p.ID, err)
		}
	}
	return nil
}
