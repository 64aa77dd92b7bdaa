package models

import "time"

type OutcomeSlot struct {
	SeasonYear        int           `json:"season_year"`
	SlotKey           string        `json:"slot_key"`
	HomeParticipantID ParticipantID `json:"home_participant_id,omitempty"`
	AwayParticipantID ParticipantID `json:"away_participant_id,omitempty"`
	WinnerID          ParticipantID `json:"winner_id,omitempty"`
	IsFinal           bool          `json:"is_final"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type LeaderboardEntry struct {
	Rank             int     `json:"rank"`
	BracketID        int     `json:"bracket_id"`
	BracketName      string  `json:"bracket_name"`
	OwnerDisplayName string  `json:"owner_display_name"`
	SeasonYear       int     `json:"season_year"`
	TotalScore       int     `json:"total_score"`
	TotalPicks       int     `json:"total_picks"`
	CorrectPicks     int     `json:"correct_picks"`
	AccuracyPercent  float64 `json:"accuracy_percentage"`
}
