package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/playoff-bracket/models"
)

const SuperBowlKey = "super_bowl"

// Порядок раундов в каталоге.
var roundOrder = []models.Round{
	models.RoundWildcard,
	models.RoundDivisional,
	models.RoundChampionship,
	models.RoundSuperBowl,
}

var conferenceOrder = []models.Conference{models.ConferenceAFC, models.ConferenceNFC}

var pointValues = map[models.Round]int{
	models.RoundWildcard:     1,
	models.RoundDivisional:   2,
	models.RoundChampionship: 4,
	models.RoundSuperBowl:    8,
}

var gamesPerConference = map[models.Round]int{
	models.RoundWildcard:     3,
	models.RoundDivisional:   2,
	models.RoundChampionship: 1,
}

var (
	catalog     = buildCatalog()
	catalogKeys = indexCatalog(catalog)
)

func buildCatalog() []models.SlotDefinition {
	var slots []models.SlotDefinition
	for _, round := range roundOrder {
		if round == models.RoundSuperBowl {
			slots = append(slots, models.SlotDefinition{
				Round:      round,
				Conference: models.ConferenceNone,
				Sequence:   1,
				Key:        SlotKeyFor(round, models.ConferenceNone, 1),
				Points:     pointValues[round],
			})
			continue
		}
		for _, conf := range conferenceOrder {
			for seq := 1; seq <= gamesPerConference[round]; seq++ {
				slots = append(slots, models.SlotDefinition{
					Round:      round,
					Conference: conf,
					Sequence:   seq,
					Key:        SlotKeyFor(round, conf, seq),
					Points:     pointValues[round],
				})
			}
		}
	}
	return slots
}

func indexCatalog(slots []models.SlotDefinition) map[string]models.SlotDefinition {
	idx := make(map[string]models.SlotDefinition, len(slots))
	for _, s := range slots {
		idx[s.Key] = s
	}
	return idx
}

// AllSlots returns the 13 playoff games in catalog order: wildcard, divisional,
// championship, super bowl; AFC before NFC; ascending sequence.
func AllSlots() []models.SlotDefinition {
	out := make([]models.SlotDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// SlotKeyFor is the only place slot keys are built.
func SlotKeyFor(round models.Round, conference models.Conference, sequence int) string {
	if round == models.RoundSuperBowl {
		return SuperBowlKey
	}
	return strings.ToLower(fmt.Sprintf("%s_%s_%d", conference, round, sequence))
}

// SlotByKey is the reverse lookup; keys are never parsed.
func SlotByKey(key string) (models.SlotDefinition, bool) {
	def, ok := catalogKeys[key]
	return def, ok
}

func PointValue(round models.Round) int {
	return pointValues[round]
}

// GamesPerConference returns how many games each conference plays in a round.
// The super bowl is not a conference game and yields 0.
func GamesPerConference(round models.Round) int {
	return gamesPerConference[round]
}

// MaxScore is the score of a bracket with every game predicted correctly.
func MaxScore() int {
	total := 0
	for _, s := range catalog {
		total += s.Points
	}
	return total
}
