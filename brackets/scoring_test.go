package brackets

import (
	"testing"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeOrFail(t *testing.T, sub models.BracketSubmission) []models.PredictionSlot {
	t.Helper()
	slots, err := Encode(sub)
	require.NoError(t, err)
	return slots
}

func TestScoreBracket_Perfect(t *testing.T) {
	slots := encodeOrFail(t, fullSubmission("Chalk"))

	entry := ScoreBracket(models.Bracket{ID: 1, Name: "Chalk"}, slots, FinalWinners(finalOutcomes()))

	assert.Equal(t, 30, entry.TotalScore)
	assert.Equal(t, 13, entry.TotalPicks)
	assert.Equal(t, 13, entry.CorrectPicks)
	assert.Equal(t, 100.0, entry.AccuracyPercent)
}

func TestScoreBracket_MissingSuperBowlPick(t *testing.T) {
	sub := fullSubmission("NoFinal")
	sub.Predictions.SuperBowl.Winner = nil
	slots := encodeOrFail(t, sub)

	entry := ScoreBracket(models.Bracket{ID: 1, Name: "NoFinal"}, slots, FinalWinners(finalOutcomes()))

	assert.Equal(t, 22, entry.TotalScore)
	assert.Equal(t, 12, entry.TotalPicks)
	assert.Equal(t, 12, entry.CorrectPicks)
	assert.Equal(t, 100.0, entry.AccuracyPercent)
}

func TestScoreBracket_IgnoresUndecidedGames(t *testing.T) {
	slots := encodeOrFail(t, fullSubmission("Chalk"))
	outcomes := finalOutcomes()
	for i := range outcomes {
		if outcomes[i].SlotKey == SuperBowlKey {
			outcomes[i].IsFinal = false
		}
	}

	entry := ScoreBracket(models.Bracket{ID: 1}, slots, FinalWinners(outcomes))

	assert.Equal(t, 22, entry.TotalScore)
	assert.Equal(t, 12, entry.TotalPicks)
}

func TestScoreBracket_AccuracyRounding(t *testing.T) {
	slots := []models.PredictionSlot{
		{SlotKey: "afc_wildcard_1", PredictedWinnerID: "BUF"},
		{SlotKey: "afc_wildcard_2", PredictedWinnerID: "BAL"},
		{SlotKey: "afc_wildcard_3", PredictedWinnerID: "LAC"},
	}
	winners := map[string]models.ParticipantID{
		"afc_wildcard_1": "BUF",
		"afc_wildcard_2": "BAL",
		"afc_wildcard_3": "HOU",
	}

	entry := ScoreBracket(models.Bracket{ID: 1}, slots, winners)

	assert.Equal(t, 2, entry.TotalScore)
	assert.Equal(t, 3, entry.TotalPicks)
	assert.Equal(t, 2, entry.CorrectPicks)
	assert.Equal(t, 66.7, entry.AccuracyPercent)
}

func TestFinalWinners_SkipsNonFinal(t *testing.T) {
	winners := FinalWinners([]models.OutcomeSlot{
		{SlotKey: "afc_wildcard_1", WinnerID: "BUF", IsFinal: true},
		{SlotKey: "afc_wildcard_2", WinnerID: "BAL", IsFinal: false},
		{SlotKey: "afc_wildcard_3", IsFinal: false},
	})

	assert.Equal(t, map[string]models.ParticipantID{"afc_wildcard_1": "BUF"}, winners)
}

func TestBuildLeaderboard_NoOutcomes(t *testing.T) {
	brackets := []models.Bracket{{ID: 1, Name: "Zulu"}, {ID: 2, Name: "Alpha"}, {ID: 3, Name: "Mike"}}
	slots := map[int][]models.PredictionSlot{
		1: encodeOrFail(t, fullSubmission("Zulu")),
		2: encodeOrFail(t, fullSubmission("Alpha")),
	}

	board := BuildLeaderboard(brackets, slots, nil)

	require.Len(t, board, 3)
	names := []string{}
	for i, e := range board {
		assert.Equal(t, i+1, e.Rank)
		assert.Zero(t, e.TotalScore)
		assert.Zero(t, e.TotalPicks)
		assert.Zero(t, e.AccuracyPercent)
		names = append(names, e.BracketName)
	}
	assert.Equal(t, []string{"Alpha", "Mike", "Zulu"}, names)
}

func TestBuildLeaderboard_TieBrokenByName(t *testing.T) {
	brackets := []models.Bracket{{ID: 10, Name: "Bravo"}, {ID: 20, Name: "Alpha"}}
	slots := map[int][]models.PredictionSlot{
		10: encodeOrFail(t, fullSubmission("Bravo")),
		20: encodeOrFail(t, fullSubmission("Alpha")),
	}

	board := BuildLeaderboard(brackets, slots, finalOutcomes())

	require.Len(t, board, 2)
	assert.Equal(t, "Alpha", board[0].BracketName)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Bravo", board[1].BracketName)
	assert.Equal(t, 2, board[1].Rank)
}

func TestRankEntries_Ordering(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{BracketID: 5, BracketName: "Same", TotalScore: 10, AccuracyPercent: 50},
		{BracketID: 1, BracketName: "Low", TotalScore: 3, AccuracyPercent: 100},
		{BracketID: 2, BracketName: "Accurate", TotalScore: 10, AccuracyPercent: 75},
		{BracketID: 3, BracketName: "Same", TotalScore: 10, AccuracyPercent: 50},
		{BracketID: 4, BracketName: "Top", TotalScore: 22, AccuracyPercent: 60},
	}

	ranked := RankEntries(entries)

	ids := []int{}
	for _, e := range ranked {
		ids = append(ids, e.BracketID)
	}
	assert.Equal(t, []int{4, 2, 3, 5, 1}, ids)
	assert.Equal(t, 5, ranked[4].Rank)
	assert.Zero(t, entries[0].Rank, "input is not modified")
}
