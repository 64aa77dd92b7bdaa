package brackets

import (
	"math"
	"sort"

	"github.com/Dosada05/playoff-bracket/models"
)

// FinalWinners maps slot key to winner for decided games only.
func FinalWinners(outcomes []models.OutcomeSlot) map[string]models.ParticipantID {
	winners := make(map[string]models.ParticipantID, len(outcomes))
	for _, o := range outcomes {
		if !o.IsFinal || o.WinnerID == "" {
			continue
		}
		winners[o.SlotKey] = o.WinnerID
	}
	return winners
}

// ScoreBracket joins a bracket's rows against final winners. Only slots with a
// final outcome count toward TotalPicks. Rank is left at zero.
func ScoreBracket(b models.Bracket, slots []models.PredictionSlot, winners map[string]models.ParticipantID) models.LeaderboardEntry {
	entry := models.LeaderboardEntry{
		BracketID:        b.ID,
		BracketName:      b.Name,
		OwnerDisplayName: b.OwnerDisplayName,
		SeasonYear:       b.SeasonYear,
	}
	for _, s := range slots {
		winner, decided := winners[s.SlotKey]
		if !decided {
			continue
		}
		def, ok := SlotByKey(s.SlotKey)
		if !ok {
			continue
		}
		entry.TotalPicks++
		if s.PredictedWinnerID == winner {
			entry.CorrectPicks++
			entry.TotalScore += def.Points
		}
	}
	entry.AccuracyPercent = accuracy(entry.CorrectPicks, entry.TotalPicks)
	return entry
}

// accuracy в процентах с одним знаком после запятой.
func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)*1000/float64(total)) / 10
}

// RankEntries sorts by score, then accuracy (both descending), then bracket
// name and id ascending, and assigns ranks 1..N without gaps.
func RankEntries(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	ranked := make([]models.LeaderboardEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.AccuracyPercent != b.AccuracyPercent {
			return a.AccuracyPercent > b.AccuracyPercent
		}
		if a.BracketName != b.BracketName {
			return a.BracketName < b.BracketName
		}
		return a.BracketID < b.BracketID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// BuildLeaderboard scores and ranks every bracket of a season. Brackets with
// no rows still get an entry.
func BuildLeaderboard(brackets []models.Bracket, slotsByBracket map[int][]models.PredictionSlot, outcomes []models.OutcomeSlot) []models.LeaderboardEntry {
	winners := FinalWinners(outcomes)
	entries := make([]models.LeaderboardEntry, 0, len(brackets))
	for _, b := range brackets {
		entries = append(entries, ScoreBracket(b, slotsByBracket[b.ID], winners))
	}
	return RankEntries(entries)
}
