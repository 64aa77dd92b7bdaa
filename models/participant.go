package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParticipantID is an opaque team identifier. Clients send it either as a
// JSON string or as an integral number; 12, 12.0 and 1.2e1 all decode to "12".
type ParticipantID string

// maxExactFloat - граница, до которой float64 хранит целые без потерь.
const maxExactFloat = 1 << 53

func (id *ParticipantID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ParticipantID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("participant id must be a string or a number: %w", err)
	}
	normalized, err := integralID(n)
	if err != nil {
		return err
	}
	*id = ParticipantID(normalized)
	return nil
}

func integralID(n json.Number) (string, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return "", fmt.Errorf("participant id %s must be an integer", n)
	}
	return strconv.FormatInt(int64(f), 10), nil
}

// Participant - команда, прошедшая в плей-офф сезона.
type Participant struct {
	ID           ParticipantID `json:"id"`
	SeasonYear   int           `json:"season_year"`
	Name         string        `json:"name"`
	Abbreviation string        `json:"abbreviation"`
	Location     string        `json:"location,omitempty"`
	Conference   Conference    `json:"conference"`
	Seed         int           `json:"seed"`
	LogoURL      *string       `json:"logo_url,omitempty"`
}
