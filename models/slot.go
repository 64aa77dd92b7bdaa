package models

type Round string

const (
	RoundWildcard     Round = "wildcard"
	RoundDivisional   Round = "divisional"
	RoundChampionship Round = "championship"
	RoundSuperBowl    Round = "superbowl"
)

type Conference string

const (
	ConferenceAFC  Conference = "afc"
	ConferenceNFC  Conference = "nfc"
	ConferenceNone Conference = ""
)

func (c Conference) IsValid() bool {
	return c == ConferenceAFC || c == ConferenceNFC
}

// SlotDefinition описывает одну игру сетки: раунд, конференцию, номер и очки.
type SlotDefinition struct {
	Round      Round      `json:"round"`
	Conference Conference `json:"conference,omitempty"`
	Sequence   int        `json:"sequence"`
	Key        string     `json:"key"`
	Points     int        `json:"points"`
}
