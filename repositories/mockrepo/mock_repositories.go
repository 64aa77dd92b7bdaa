// Package mockrepo holds testify mocks for the repository interfaces.
package mockrepo

import (
	"context"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories"
	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly and records whether the unit committed.
// Open is true while fn runs.
type Transactor struct {
	Committed  int
	RolledBack int
	Open       bool
	Err        error
}

func (t *Transactor) InTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	if t.Err != nil {
		return t.Err
	}
	t.Open = true
	err := fn(nil)
	t.Open = false
	if err != nil {
		t.RolledBack++
		return err
	}
	t.Committed++
	return nil
}

type BracketRepository struct {
	mock.Mock
}

func (r *BracketRepository) Create(ctx context.Context, exec repositories.SQLExecutor, b *models.Bracket) error {
	args := r.Called(ctx, exec, b)
	return args.Error(0)
}

func (r *BracketRepository) GetByID(ctx context.Context, id int) (*models.Bracket, error) {
	args := r.Called(ctx, id)

	var b *models.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*models.Bracket)
	}
	return b, args.Error(1)
}

func (r *BracketRepository) ListByTournament(ctx context.Context, seasonYear int) ([]models.Bracket, error) {
	args := r.Called(ctx, seasonYear)

	var list []models.Bracket
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Bracket)
	}
	return list, args.Error(1)
}

func (r *BracketRepository) ListByUser(ctx context.Context, userID int) ([]models.Bracket, error) {
	args := r.Called(ctx, userID)

	var list []models.Bracket
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Bracket)
	}
	return list, args.Error(1)
}

func (r *BracketRepository) Delete(ctx context.Context, id int) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

type PredictionRepository struct {
	mock.Mock
}

func (r *PredictionRepository) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, bracketID int, slots []models.PredictionSlot) error {
	args := r.Called(ctx, exec, bracketID, slots)
	return args.Error(0)
}

func (r *PredictionRepository) ListByBracket(ctx context.Context, bracketID int) ([]models.PredictionSlot, error) {
	args := r.Called(ctx, bracketID)

	var slots []models.PredictionSlot
	if args.Get(0) != nil {
		slots = args.Get(0).([]models.PredictionSlot)
	}
	return slots, args.Error(1)
}

func (r *PredictionRepository) ListByTournament(ctx context.Context, seasonYear int) (map[int][]models.PredictionSlot, error) {
	args := r.Called(ctx, seasonYear)

	var byBracket map[int][]models.PredictionSlot
	if args.Get(0) != nil {
		byBracket = args.Get(0).(map[int][]models.PredictionSlot)
	}
	return byBracket, args.Error(1)
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID int) (map[int][]models.PredictionSlot, error) {
	args := r.Called(ctx, userID)

	var byBracket map[int][]models.PredictionSlot
	if args.Get(0) != nil {
		byBracket = args.Get(0).(map[int][]models.PredictionSlot)
	}
	return byBracket, args.Error(1)
}

type OutcomeRepository struct {
	mock.Mock
}

func (r *OutcomeRepository) Upsert(ctx context.Context, exec repositories.SQLExecutor, outcomes []models.OutcomeSlot) error {
	args := r.Called(ctx, exec, outcomes)
	return args.Error(0)
}

func (r *OutcomeRepository) ListByTournament(ctx context.Context, seasonYear int) ([]models.OutcomeSlot, error) {
	args := r.Called(ctx, seasonYear)

	var outcomes []models.OutcomeSlot
	if args.Get(0) != nil {
		outcomes = args.Get(0).([]models.OutcomeSlot)
	}
	return outcomes, args.Error(1)
}

func (r *OutcomeRepository) DeleteByTournament(ctx context.Context, seasonYear int) (int64, error) {
	args := r.Called(ctx, seasonYear)
	return args.Get(0).(int64), args.Error(1)
}

type ParticipantRepository struct {
	mock.Mock
}

func (r *ParticipantRepository) ListQualified(ctx context.Context, seasonYear int) ([]models.Participant, error) {
	args := r.Called(ctx, seasonYear)

	var list []models.Participant
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Participant)
	}
	return list, args.Error(1)
}

func (r *ParticipantRepository) ReplaceQualified(ctx context.Context, exec repositories.SQLExecutor, seasonYear int, participants []models.Participant) error {
	args := r.Called(ctx, exec, seasonYear, participants)
	return args.Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) Upsert(ctx context.Context, exec repositories.SQLExecutor, externalID, displayName string) (*models.User, error) {
	args := r.Called(ctx, exec, externalID, displayName)

	var u *models.User
	if args.Get(0) != nil {
		u = args.Get(0).(*models.User)
	}
	return u, args.Error(1)
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	args := r.Called(ctx, externalID)

	var u *models.User
	if args.Get(0) != nil {
		u = args.Get(0).(*models.User)
	}
	return u, args.Error(1)
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, externalID, displayName string) (*models.User, error) {
	args := r.Called(ctx, externalID, displayName)

	var u *models.User
	if args.Get(0) != nil {
		u = args.Get(0).(*models.User)
	}
	return u, args.Error(1)
}

var (
	_ repositories.Transactor            = (*Transactor)(nil)
	_ repositories.BracketRepository     = (*BracketRepository)(nil)
	_ repositories.PredictionRepository  = (*PredictionRepository)(nil)
	_ repositories.OutcomeRepository     = (*OutcomeRepository)(nil)
	_ repositories.ParticipantRepository = (*ParticipantRepository)(nil)
	_ repositories.UserRepository        = (*UserRepository)(nil)
)
