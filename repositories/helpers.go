package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// pqViolation returns the constraint name when err is a postgres error with the given code.
func pqViolation(err error, code string) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == code {
		return pqErr.Constraint, true
	}
	return "", false
}

// nullableID пишет пустой идентификатор как NULL.
func nullableID(id models.ParticipantID) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(id), Valid: true}
}

func idFromNull(ns sql.NullString) models.ParticipantID {
	if !ns.Valid {
		return ""
	}
	return models.ParticipantID(ns.String)
}
