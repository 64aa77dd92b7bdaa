package models

import "time"

type Bracket struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	OwnerDisplayName string    `json:"owner_display_name"`
	Name             string    `json:"bracket_name"`
	SeasonYear       int       `json:"season_year"`
	Elevated         bool      `json:"-"`
	PredictionCount  int       `json:"prediction_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// PredictionSlot - одна сохранённая строка прогноза.
// Пустая строка в Home/Away означает, что сторона не указана.
type PredictionSlot struct {
	BracketID         int           `json:"bracket_id,omitempty"`
	SlotKey           string        `json:"slot_key"`
	PredictedWinnerID ParticipantID `json:"predicted_winner_id"`
	HomeParticipantID ParticipantID `json:"home_participant_id,omitempty"`
	AwayParticipantID ParticipantID `json:"away_participant_id,omitempty"`
}

type TeamRef struct {
	ID           ParticipantID `json:"id"`
	Name         string        `json:"name,omitempty"`
	Abbreviation string        `json:"abbreviation,omitempty"`
	Logo         string        `json:"logo,omitempty"`
	Seed         int           `json:"seed,omitempty"`
}

type GamePick struct {
	Home   *TeamRef `json:"home"`
	Away   *TeamRef `json:"away"`
	Winner *TeamRef `json:"winner"`
}

type ConferencePicks struct {
	WildCard     []*GamePick `json:"wildCard"`
	Divisional   []*GamePick `json:"divisional"`
	Championship *GamePick   `json:"championship"`
}

type SuperBowlPick struct {
	AFC    *TeamRef `json:"afc"`
	NFC    *TeamRef `json:"nfc"`
	Winner *TeamRef `json:"winner"`
}

// BracketPrediction is the nested shape clients send and receive.
type BracketPrediction struct {
	AFC       *ConferencePicks `json:"afc"`
	NFC       *ConferencePicks `json:"nfc"`
	SuperBowl *SuperBowlPick   `json:"superBowl"`
}

type BracketSubmission struct {
	Name        string             `json:"bracket_name"`
	SeasonYear  int                `json:"season_year"`
	Predictions *BracketPrediction `json:"predictions"`
}
