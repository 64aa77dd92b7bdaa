package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeLeaderboard struct {
	board []models.LeaderboardEntry
	err   error
}

func (f *fakeLeaderboard) GetLeaderboard(ctx context.Context, seasonYear int) ([]models.LeaderboardEntry, error) {
	return f.board, f.err
}

func (f *fakeLeaderboard) ScoreBracket(ctx context.Context, bracketID int) (*models.LeaderboardEntry, error) {
	return nil, ErrBracketNotFound
}

type recordingPublisher struct {
	seasons []int
	boards  [][]models.LeaderboardEntry
}

func (p *recordingPublisher) PublishLeaderboard(seasonYear int, entries []models.LeaderboardEntry) {
	p.seasons = append(p.seasons, seasonYear)
	p.boards = append(p.boards, entries)
}

func TestRecordOutcomes_RequiresElevated(t *testing.T) {
	m := newRepoMocks()
	svc := NewOutcomeService(m.tx, m.outcomes, nil, nil, nil)

	_, err := svc.RecordOutcomes(context.Background(), alice, 2025, []OutcomeInput{{SlotKey: "super_bowl", WinnerID: "KC", IsFinal: true}})

	assert.ErrorIs(t, err, ErrForbiddenOperation)
}

func TestRecordOutcomes_Validation(t *testing.T) {
	tests := []struct {
		name   string
		inputs []OutcomeInput
	}{
		{"empty", nil},
		{"unknown slot", []OutcomeInput{{SlotKey: "afc_wildcard_4", WinnerID: "KC"}}},
		{"final without winner", []OutcomeInput{{SlotKey: "super_bowl", IsFinal: true}}},
		{"winner not playing", []OutcomeInput{{SlotKey: "super_bowl", HomeParticipantID: "KC", AwayParticipantID: "DET", WinnerID: "BUF", IsFinal: true}}},
		{"winner id too long", []OutcomeInput{{SlotKey: "super_bowl", WinnerID: models.ParticipantID(strings.Repeat("K", 65)), IsFinal: true}}},
		{"duplicate slot", []OutcomeInput{
			{SlotKey: "afc_wildcard_1", WinnerID: "BUF", IsFinal: true},
			{SlotKey: "afc_wildcard_1", WinnerID: "DEN", IsFinal: true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks()
			svc := NewOutcomeService(m.tx, m.outcomes, nil, nil, nil)

			_, err := svc.RecordOutcomes(context.Background(), admin, 2025, tt.inputs)

			assert.ErrorIs(t, err, ErrValidationFailed)
			m.outcomes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordOutcomes_PersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks()
	stored := []models.OutcomeSlot{
		{SeasonYear: 2025, SlotKey: "super_bowl", WinnerID: "KC", IsFinal: true},
		{SeasonYear: 2025, SlotKey: "afc_wildcard_1", WinnerID: "BUF", IsFinal: true},
	}
	m.outcomes.On("Upsert", ctx, mock.Anything, mock.MatchedBy(func(o []models.OutcomeSlot) bool {
		return len(o) == 2 && o[0].SeasonYear == 2025
	})).Return(nil)
	m.outcomes.On("ListByTournament", ctx, 2025).Return(stored, nil)

	board := []models.LeaderboardEntry{{Rank: 1, BracketID: 1, TotalScore: 9}}
	pub := &recordingPublisher{}
	svc := NewOutcomeService(m.tx, m.outcomes, &fakeLeaderboard{board: board}, pub, nil)

	views, err := svc.RecordOutcomes(ctx, admin, 2025, []OutcomeInput{
		{SlotKey: "afc_wildcard_1", HomeParticipantID: "BUF", AwayParticipantID: "DEN", WinnerID: "BUF", IsFinal: true},
		{SlotKey: "super_bowl", WinnerID: "KC", IsFinal: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, m.tx.Committed)
	require.Len(t, views, 2)
	assert.Equal(t, "afc_wildcard_1", views[0].SlotKey, "catalog order")
	assert.Equal(t, 1, views[0].Points)
	assert.Equal(t, models.RoundSuperBowl, views[1].Round)
	assert.Equal(t, 8, views[1].Points)
	assert.Equal(t, []int{2025}, pub.seasons)
	assert.Equal(t, board, pub.boards[0])
}

func TestClearOutcomes(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks()
	m.outcomes.On("DeleteByTournament", ctx, 2025).Return(int64(4), nil)
	pub := &recordingPublisher{}
	svc := NewOutcomeService(m.tx, m.outcomes, &fakeLeaderboard{}, pub, nil)

	_, err := svc.ClearOutcomes(ctx, alice, 2025)
	assert.ErrorIs(t, err, ErrForbiddenOperation)

	n, err := svc.ClearOutcomes(ctx, admin, 2025)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.Len(t, pub.seasons, 1)
}
