package services

import (
	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories/mockrepo"
)

var (
	alice = models.Identity{Subject: "auth0|alice", DisplayName: "Alice"}
	admin = models.Identity{Subject: "auth0|admin", DisplayName: "Admin", Elevated: true}
)

type repoMocks struct {
	tx           *mockrepo.Transactor
	brackets     *mockrepo.BracketRepository
	predictions  *mockrepo.PredictionRepository
	outcomes     *mockrepo.OutcomeRepository
	participants *mockrepo.ParticipantRepository
	users        *mockrepo.UserRepository
}

func newRepoMocks() *repoMocks {
	return &repoMocks{
		tx:           &mockrepo.Transactor{},
		brackets:     &mockrepo.BracketRepository{},
		predictions:  &mockrepo.PredictionRepository{},
		outcomes:     &mockrepo.OutcomeRepository{},
		participants: &mockrepo.ParticipantRepository{},
		users:        &mockrepo.UserRepository{},
	}
}

func team(id string) *models.TeamRef {
	return &models.TeamRef{ID: models.ParticipantID(id)}
}

func game(home, away, winner string) *models.GamePick {
	return &models.GamePick{Home: team(home), Away: team(away), Winner: team(winner)}
}

func chalkPrediction() *models.BracketPrediction {
	return &models.BracketPrediction{
		AFC: &models.ConferencePicks{
			WildCard:     []*models.GamePick{game("BUF", "DEN", "BUF"), game("BAL", "PIT", "BAL"), game("HOU", "LAC", "HOU")},
			Divisional:   []*models.GamePick{game("KC", "HOU", "KC"), game("BUF", "BAL", "BUF")},
			Championship: game("KC", "BUF", "KC"),
		},
		NFC: &models.ConferencePicks{
			WildCard:     []*models.GamePick{game("PHI", "GB", "PHI"), game("LAR", "MIN", "LAR"), game("TB", "WAS", "TB")},
			Divisional:   []*models.GamePick{game("DET", "TB", "DET"), game("PHI", "LAR", "PHI")},
			Championship: game("DET", "PHI", "DET"),
		},
		SuperBowl: &models.SuperBowlPick{AFC: team("KC"), NFC: team("DET"), Winner: team("KC")},
	}
}

func playoffField() []models.Participant {
	afc := []string{"KC", "BUF", "BAL", "HOU", "LAC", "PIT", "DEN"}
	nfc := []string{"DET", "PHI", "TB", "LAR", "MIN", "WAS", "GB"}
	var out []models.Participant
	for i, id := range afc {
		out = append(out, models.Participant{ID: models.ParticipantID(id), Name: id + " team", Abbreviation: id, Conference: models.ConferenceAFC, Seed: i + 1})
	}
	for i, id := range nfc {
		out = append(out, models.Participant{ID: models.ParticipantID(id), Name: id + " team", Abbreviation: id, Conference: models.ConferenceNFC, Seed: i + 1})
	}
	return out
}
