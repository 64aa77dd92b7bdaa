package brackets

import (
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/playoff-bracket/models"
)

const (
	MaxBracketNameLength = 20
	// MaxParticipantIDLength совпадает с размером колонок *_participant_id.
	MaxParticipantIDLength = 64
)

// NormalizeName trims the bracket name and checks its length in characters.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("", "bracket_name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxBracketNameLength {
		return "", invalid("", "bracket_name", "must be %d characters or less", MaxBracketNameLength)
	}
	return name, nil
}

// Encode flattens a nested prediction into one row per predicted game, in
// catalog order. Games without a declared winner are omitted. Nothing is
// corrected silently: any inconsistency returns a *ValidationError.
func Encode(sub models.BracketSubmission) ([]models.PredictionSlot, error) {
	if _, err := NormalizeName(sub.Name); err != nil {
		return nil, err
	}
	p := sub.Predictions
	if p == nil {
		return nil, invalid("", "predictions", "are required")
	}
	if err := checkShape(p); err != nil {
		return nil, err
	}

	slots := make([]models.PredictionSlot, 0, len(catalog))
	for _, def := range catalog {
		game := gameAt(p, def)
		if game == nil || game.Winner == nil {
			continue
		}
		slot, err := encodeGame(def, game)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func checkShape(p *models.BracketPrediction) error {
	for _, conf := range conferenceOrder {
		picks := conferencePicks(p, conf)
		if picks == nil {
			continue
		}
		if n, limit := len(picks.WildCard), GamesPerConference(models.RoundWildcard); n > limit {
			return invalid("", string(conf)+".wildCard", "has %d games, at most %d allowed", n, limit)
		}
		if n, limit := len(picks.Divisional), GamesPerConference(models.RoundDivisional); n > limit {
			return invalid("", string(conf)+".divisional", "has %d games, at most %d allowed", n, limit)
		}
	}
	return nil
}

func encodeGame(def models.SlotDefinition, game *models.GamePick) (models.PredictionSlot, error) {
	winner := game.Winner.ID
	if strings.TrimSpace(string(winner)) == "" {
		return models.PredictionSlot{}, invalid(def.Key, "winner", "id is required")
	}
	home, away := refID(game.Home), refID(game.Away)
	for _, side := range []struct {
		field string
		id    models.ParticipantID
	}{{"home", home}, {"away", away}, {"winner", winner}} {
		if n := utf8.RuneCountInString(string(side.id)); n > MaxParticipantIDLength {
			return models.PredictionSlot{}, invalid(def.Key, side.field, "id has %d characters, at most %d allowed", n, MaxParticipantIDLength)
		}
	}
	// Если известны обе стороны, победитель должен быть одной из них.
	if home != "" && away != "" && winner != home && winner != away {
		return models.PredictionSlot{}, invalid(def.Key, "winner", "%q is neither %q nor %q", winner, home, away)
	}
	return models.PredictionSlot{
		SlotKey:           def.Key,
		PredictedWinnerID: winner,
		HomeParticipantID: home,
		AwayParticipantID: away,
	}, nil
}

// Decode rebuilds the nested shape by walking the catalog. Every game the
// rows do not cover becomes an empty placeholder, so the result always has
// 3 wildcard and 2 divisional games per conference. Rows with keys outside
// the catalog are ignored.
func Decode(slots []models.PredictionSlot) *models.BracketPrediction {
	byKey := make(map[string]models.PredictionSlot, len(slots))
	for _, s := range slots {
		byKey[s.SlotKey] = s
	}

	p := EmptyPrediction()
	for _, def := range catalog {
		s, ok := byKey[def.Key]
		if !ok {
			continue
		}
		placeGame(p, def, &models.GamePick{
			Home:   ref(s.HomeParticipantID),
			Away:   ref(s.AwayParticipantID),
			Winner: ref(s.PredictedWinnerID),
		})
	}
	return p
}

// EmptyPrediction returns a bracket where every game is a placeholder.
func EmptyPrediction() *models.BracketPrediction {
	return &models.BracketPrediction{
		AFC:       emptyConference(),
		NFC:       emptyConference(),
		SuperBowl: &models.SuperBowlPick{},
	}
}

func emptyConference() *models.ConferencePicks {
	c := &models.ConferencePicks{
		WildCard:     make([]*models.GamePick, GamesPerConference(models.RoundWildcard)),
		Divisional:   make([]*models.GamePick, GamesPerConference(models.RoundDivisional)),
		Championship: &models.GamePick{},
	}
	for i := range c.WildCard {
		c.WildCard[i] = &models.GamePick{}
	}
	for i := range c.Divisional {
		c.Divisional[i] = &models.GamePick{}
	}
	return c
}

// CheckParticipants reports the first referenced team that is not in the
// qualified set. An empty set disables the check.
func CheckParticipants(slots []models.PredictionSlot, qualified map[models.ParticipantID]struct{}) error {
	if len(qualified) == 0 {
		return nil
	}
	for _, s := range slots {
		refs := []struct {
			field string
			id    models.ParticipantID
		}{
			{"home", s.HomeParticipantID},
			{"away", s.AwayParticipantID},
			{"winner", s.PredictedWinnerID},
		}
		for _, r := range refs {
			if r.id == "" {
				continue
			}
			if _, ok := qualified[r.id]; !ok {
				return invalid(s.SlotKey, r.field, "team %q did not qualify for the playoffs", r.id)
			}
		}
	}
	return nil
}

func conferencePicks(p *models.BracketPrediction, conf models.Conference) *models.ConferencePicks {
	switch conf {
	case models.ConferenceAFC:
		return p.AFC
	case models.ConferenceNFC:
		return p.NFC
	}
	return nil
}

func gameAt(p *models.BracketPrediction, def models.SlotDefinition) *models.GamePick {
	if def.Round == models.RoundSuperBowl {
		if p.SuperBowl == nil {
			return nil
		}
		// AFC хранится как home, NFC как away.
		return &models.GamePick{Home: p.SuperBowl.AFC, Away: p.SuperBowl.NFC, Winner: p.SuperBowl.Winner}
	}
	picks := conferencePicks(p, def.Conference)
	if picks == nil {
		return nil
	}
	switch def.Round {
	case models.RoundWildcard:
		return nth(picks.WildCard, def.Sequence)
	case models.RoundDivisional:
		return nth(picks.Divisional, def.Sequence)
	case models.RoundChampionship:
		return picks.Championship
	}
	return nil
}

func placeGame(p *models.BracketPrediction, def models.SlotDefinition, game *models.GamePick) {
	if def.Round == models.RoundSuperBowl {
		p.SuperBowl = &models.SuperBowlPick{AFC: game.Home, NFC: game.Away, Winner: game.Winner}
		return
	}
	picks := conferencePicks(p, def.Conference)
	switch def.Round {
	case models.RoundWildcard:
		picks.WildCard[def.Sequence-1] = game
	case models.RoundDivisional:
		picks.Divisional[def.Sequence-1] = game
	case models.RoundChampionship:
		picks.Championship = game
	}
}

func nth(games []*models.GamePick, sequence int) *models.GamePick {
	if sequence < 1 || sequence > len(games) {
		return nil
	}
	return games[sequence-1]
}

func refID(r *models.TeamRef) models.ParticipantID {
	if r == nil {
		return ""
	}
	return r.ID
}

func ref(id models.ParticipantID) *models.TeamRef {
	if id == "" {
		return nil
	}
	return &models.TeamRef{ID: id}
}
