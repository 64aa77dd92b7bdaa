package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func nflField() []models.Participant {
	return []models.Participant{
		{ID: "12", Name: "Chiefs", Abbreviation: "KC", Location: "Kansas City", Conference: models.ConferenceAFC, Seed: 1},
		{ID: "2", Name: "Bills", Abbreviation: "BUF", Location: "Buffalo", Conference: models.ConferenceAFC, Seed: 2},
		{ID: "8", Name: "Lions", Abbreviation: "DET", Location: "Detroit", Conference: models.ConferenceNFC, Seed: 1},
		{ID: "21", Name: "Eagles", Abbreviation: "PHI", Location: "Philadelphia", Conference: models.ConferenceNFC, Seed: 2},
	}
}

func TestSearchParticipants(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks()
	m.participants.On("ListQualified", ctx, 2025).Return(nflField(), nil)
	svc := NewParticipantService(m.tx, m.participants, nil)

	found, err := svc.SearchParticipants(ctx, 2025, "chiefs")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, models.ParticipantID("12"), found[0].ID)

	found, err = svc.SearchParticipants(ctx, 2025, "DET")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, "Lions", found[0].Name)

	found, err = svc.SearchParticipants(ctx, 2025, "zzz")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = svc.SearchParticipants(ctx, 2025, "  ")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestReplaceQualified(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks()
	m.participants.On("ReplaceQualified", ctx, mock.Anything, 2025, mock.Anything).Return(nil)
	m.participants.On("ListQualified", ctx, 2025).Return(nflField(), nil)
	svc := NewParticipantService(m.tx, m.participants, nil)

	_, err := svc.ReplaceQualified(ctx, alice, 2025, nflField())
	assert.ErrorIs(t, err, ErrForbiddenOperation)

	list, err := svc.ReplaceQualified(ctx, admin, 2025, nflField())
	require.NoError(t, err)
	assert.Len(t, list, 4)
	assert.Equal(t, 1, m.tx.Committed)
}

func TestReplaceQualified_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]models.Participant) []models.Participant
	}{
		{"duplicate id", func(p []models.Participant) []models.Participant { p[1].ID = p[0].ID; return p }},
		{"bad conference", func(p []models.Participant) []models.Participant { p[0].Conference = "xfl"; return p }},
		{"seed out of range", func(p []models.Participant) []models.Participant { p[0].Seed = 8; return p }},
		{"seed reused", func(p []models.Participant) []models.Participant { p[1].Seed = 1; return p }},
		{"missing name", func(p []models.Participant) []models.Participant { p[2].Name = ""; return p }},
		{"id too long", func(p []models.Participant) []models.Participant {
			p[0].ID = models.ParticipantID(strings.Repeat("9", 65))
			return p
		}},
		{"name too long", func(p []models.Participant) []models.Participant { p[1].Name = strings.Repeat("B", 101); return p }},
		{"abbreviation too long", func(p []models.Participant) []models.Participant { p[2].Abbreviation = "DETROITLION"; return p }},
		{"location too long", func(p []models.Participant) []models.Participant { p[3].Location = strings.Repeat("P", 101); return p }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks()
			svc := NewParticipantService(m.tx, m.participants, nil)

			_, err := svc.ReplaceQualified(context.Background(), admin, 2025, tt.mutate(nflField()))

			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Zero(t, m.tx.Committed)
		})
	}
}
