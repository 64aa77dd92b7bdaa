// Package dbtest starts a throwaway postgres with the service schema for
// integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/playoff-bracket/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image      = "postgres:16.3-alpine"
	dbName     = "playoff_bracket"
	dbUser     = "bracket"
	dbPassword = "secret"
)

type Postgres struct {
	container *postgres.PostgresContainer
	DB        *sql.DB
}

func Start(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("error starting container: %w", err)
	}

	// the container is not configured for TLS
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(context.Background())
		return nil, fmt.Errorf("error getting connection string: %w", err)
	}

	conn, err := db.Connect(dsn, 10*time.Second)
	if err != nil {
		_ = container.Terminate(context.Background())
		return nil, err
	}
	if err := db.ApplySchema(ctx, conn); err != nil {
		conn.Close()
		_ = container.Terminate(context.Background())
		return nil, err
	}

	return &Postgres{container: container, DB: conn}, nil
}

// Reset empties every table between tests.
func (p *Postgres) Reset(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx,
		`TRUNCATE bracket_predictions, brackets, game_results, participants, users RESTART IDENTITY CASCADE`)
	return err
}

func (p *Postgres) Shutdown() error {
	p.DB.Close()
	return p.container.Terminate(context.Background())
}
