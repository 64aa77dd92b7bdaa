package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/playoff-bracket/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, externalID, displayName string) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	UpdateDisplayName(ctx context.Context, externalID, displayName string) (*models.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// Upsert создаёт пользователя при первом обращении. Имя из токена заполняет
// только пустое поле, чтобы не затирать имя, выбранное пользователем.
func (r *postgresUserRepository) Upsert(ctx context.Context, exec SQLExecutor, externalID, displayName string) (*models.User, error) {
	query := `
		INSERT INTO users (external_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (external_id) DO UPDATE SET
			display_name = CASE WHEN users.display_name = '' THEN EXCLUDED.display_name ELSE users.display_name END
		RETURNING id, external_id, display_name, created_at`

	u := &models.User{}
	err := r.getExecutor(exec).QueryRowContext(ctx, query, externalID, displayName).
		Scan(&u.ID, &u.ExternalID, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", externalID, err)
	}
	return u, nil
}

func (r *postgresUserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT id, external_id, display_name, created_at FROM users WHERE external_id = $1`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, externalID).
		Scan(&u.ID, &u.ExternalID, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateDisplayName задаёт имя явно; пользователь создаётся, если его ещё нет.
func (r *postgresUserRepository) UpdateDisplayName(ctx context.Context, externalID, displayName string) (*models.User, error) {
	query := `
		INSERT INTO users (external_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (external_id) DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id, external_id, display_name, created_at`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, externalID, displayName).
		Scan(&u.ID, &u.ExternalID, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update display name for %s: %w", externalID, err)
	}
	return u, nil
}
