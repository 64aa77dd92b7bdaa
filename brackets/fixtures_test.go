package brackets

import "github.com/Dosada05/playoff-bracket/models"

func team(id string) *models.TeamRef {
	return &models.TeamRef{ID: models.ParticipantID(id)}
}

func game(home, away, winner string) *models.GamePick {
	return &models.GamePick{Home: team(home), Away: team(away), Winner: team(winner)}
}

// fullPrediction predicts every game, always picking the home side.
func fullPrediction() *models.BracketPrediction {
	return &models.BracketPrediction{
		AFC: &models.ConferencePicks{
			WildCard: []*models.GamePick{
				game("BUF", "DEN", "BUF"),
				game("BAL", "PIT", "BAL"),
				game("HOU", "LAC", "HOU"),
			},
			Divisional: []*models.GamePick{
				game("KC", "HOU", "KC"),
				game("BUF", "BAL", "BUF"),
			},
			Championship: game("KC", "BUF", "KC"),
		},
		NFC: &models.ConferencePicks{
			WildCard: []*models.GamePick{
				game("PHI", "GB", "PHI"),
				game("LAR", "MIN", "LAR"),
				game("TB", "WAS", "TB"),
			},
			Divisional: []*models.GamePick{
				game("DET", "TB", "DET"),
				game("PHI", "LAR", "PHI"),
			},
			Championship: game("DET", "PHI", "DET"),
		},
		SuperBowl: &models.SuperBowlPick{AFC: team("KC"), NFC: team("DET"), Winner: team("KC")},
	}
}

func fullSubmission(name string) models.BracketSubmission {
	return models.BracketSubmission{Name: name, SeasonYear: 2025, Predictions: fullPrediction()}
}

// finalOutcomes marks every predicted winner of fullPrediction as final.
func finalOutcomes() []models.OutcomeSlot {
	slots, err := Encode(fullSubmission("outcomes"))
	if err != nil {
		panic(err)
	}
	out := make([]models.OutcomeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, models.OutcomeSlot{
			SeasonYear:        2025,
			SlotKey:           s.SlotKey,
			HomeParticipantID: s.HomeParticipantID,
			AwayParticipantID: s.AwayParticipantID,
			WinnerID:          s.PredictedWinnerID,
			IsFinal:           true,
		})
	}
	return out
}
