package handlers

import (
	"context"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/services"
	"github.com/stretchr/testify/mock"
)

type mockBracketService struct {
	mock.Mock
}

func (m *mockBracketService) SubmitBracket(ctx context.Context, identity models.Identity, sub models.BracketSubmission) (*models.Bracket, error) {
	args := m.Called(ctx, identity, sub)
	var b *models.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*models.Bracket)
	}
	return b, args.Error(1)
}

func (m *mockBracketService) GetBracket(ctx context.Context, bracketID int) (*services.BracketView, error) {
	args := m.Called(ctx, bracketID)
	var v *services.BracketView
	if args.Get(0) != nil {
		v = args.Get(0).(*services.BracketView)
	}
	return v, args.Error(1)
}

func (m *mockBracketService) ListBrackets(ctx context.Context, seasonYear int) ([]models.Bracket, error) {
	args := m.Called(ctx, seasonYear)
	var list []models.Bracket
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Bracket)
	}
	return list, args.Error(1)
}

func (m *mockBracketService) DeleteBracket(ctx context.Context, identity models.Identity, bracketID int) error {
	args := m.Called(ctx, identity, bracketID)
	return args.Error(0)
}

func (m *mockBracketService) ListMyBrackets(ctx context.Context, identity models.Identity) ([]services.BracketView, error) {
	args := m.Called(ctx, identity)
	var list []services.BracketView
	if args.Get(0) != nil {
		list = args.Get(0).([]services.BracketView)
	}
	return list, args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) UpdateDisplayName(ctx context.Context, identity models.Identity, displayName string) (*models.User, error) {
	args := m.Called(ctx, identity, displayName)
	var u *models.User
	if args.Get(0) != nil {
		u = args.Get(0).(*models.User)
	}
	return u, args.Error(1)
}

type mockLeaderboardService struct {
	mock.Mock
}

func (m *mockLeaderboardService) GetLeaderboard(ctx context.Context, seasonYear int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, seasonYear)
	var list []models.LeaderboardEntry
	if args.Get(0) != nil {
		list = args.Get(0).([]models.LeaderboardEntry)
	}
	return list, args.Error(1)
}

func (m *mockLeaderboardService) ScoreBracket(ctx context.Context, bracketID int) (*models.LeaderboardEntry, error) {
	args := m.Called(ctx, bracketID)
	var e *models.LeaderboardEntry
	if args.Get(0) != nil {
		e = args.Get(0).(*models.LeaderboardEntry)
	}
	return e, args.Error(1)
}

type mockOutcomeService struct {
	mock.Mock
}

func (m *mockOutcomeService) RecordOutcomes(ctx context.Context, identity models.Identity, seasonYear int, inputs []services.OutcomeInput) ([]services.OutcomeView, error) {
	args := m.Called(ctx, identity, seasonYear, inputs)
	var list []services.OutcomeView
	if args.Get(0) != nil {
		list = args.Get(0).([]services.OutcomeView)
	}
	return list, args.Error(1)
}

func (m *mockOutcomeService) ListOutcomes(ctx context.Context, seasonYear int) ([]services.OutcomeView, error) {
	args := m.Called(ctx, seasonYear)
	var list []services.OutcomeView
	if args.Get(0) != nil {
		list = args.Get(0).([]services.OutcomeView)
	}
	return list, args.Error(1)
}

func (m *mockOutcomeService) ClearOutcomes(ctx context.Context, identity models.Identity, seasonYear int) (int64, error) {
	args := m.Called(ctx, identity, seasonYear)
	return args.Get(0).(int64), args.Error(1)
}

type mockParticipantService struct {
	mock.Mock
}

func (m *mockParticipantService) ListQualified(ctx context.Context, seasonYear int) ([]models.Participant, error) {
	args := m.Called(ctx, seasonYear)
	var list []models.Participant
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Participant)
	}
	return list, args.Error(1)
}

func (m *mockParticipantService) SearchParticipants(ctx context.Context, seasonYear int, query string) ([]models.Participant, error) {
	args := m.Called(ctx, seasonYear, query)
	var list []models.Participant
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Participant)
	}
	return list, args.Error(1)
}

func (m *mockParticipantService) ReplaceQualified(ctx context.Context, identity models.Identity, seasonYear int, participants []models.Participant) ([]models.Participant, error) {
	args := m.Called(ctx, identity, seasonYear, participants)
	var list []models.Participant
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Participant)
	}
	return list, args.Error(1)
}

var (
	_ services.BracketService     = (*mockBracketService)(nil)
	_ services.LeaderboardService = (*mockLeaderboardService)(nil)
	_ services.OutcomeService     = (*mockOutcomeService)(nil)
	_ services.ParticipantService = (*mockParticipantService)(nil)
)
