package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/models"
)

const (
	minSeasonYear = 1966
	maxSeasonYear = 2100

	// Размеры колонок в db/schema.sql.
	maxParticipantNameLength = 100
	maxAbbreviationLength    = 10
	maxLocationLength        = 100
	MaxDisplayNameLength     = 100
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func checkSeason(seasonYear int) error {
	if seasonYear < minSeasonYear || seasonYear > maxSeasonYear {
		return fmt.Errorf("%w: %w: %d", ErrValidationFailed, ErrInvalidSeason, seasonYear)
	}
	return nil
}

// tooLong сообщает, что значение не влезет в колонку из limit символов.
func tooLong(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}

func checkParticipantIDs(slotKey string, ids ...models.ParticipantID) error {
	for _, id := range ids {
		if tooLong(string(id), brackets.MaxParticipantIDLength) {
			return fmt.Errorf("%w: %s: participant id longer than %d characters", ErrValidationFailed, slotKey, brackets.MaxParticipantIDLength)
		}
	}
	return nil
}

// clipDisplayName обрезает имя из токена: его задаёт внешний провайдер, а не пользователь.
func clipDisplayName(name string) string {
	name = strings.TrimSpace(name)
	if !tooLong(name, MaxDisplayNameLength) {
		return name
	}
	return string([]rune(name)[:MaxDisplayNameLength])
}

func qualifiedSet(participants []models.Participant) map[models.ParticipantID]struct{} {
	set := make(map[models.ParticipantID]struct{}, len(participants))
	for _, p := range participants {
		set[p.ID] = struct{}{}
	}
	return set
}

func forEachTeamRef(p *models.BracketPrediction, fn func(*models.TeamRef)) {
	visitGame := func(g *models.GamePick) {
		if g == nil {
			return
		}
		for _, ref := range []*models.TeamRef{g.Home, g.Away, g.Winner} {
			if ref != nil {
				fn(ref)
			}
		}
	}
	for _, conf := range []*models.ConferencePicks{p.AFC, p.NFC} {
		if conf == nil {
			continue
		}
		for _, g := range conf.WildCard {
			visitGame(g)
		}
		for _, g := range conf.Divisional {
			visitGame(g)
		}
		visitGame(conf.Championship)
	}
	if sb := p.SuperBowl; sb != nil {
		visitGame(&models.GamePick{Home: sb.AFC, Away: sb.NFC, Winner: sb.Winner})
	}
}

// enrichPrediction подставляет имена, аббревиатуры и логотипы команд из реестра.
func enrichPrediction(p *models.BracketPrediction, participants []models.Participant) {
	if len(participants) == 0 {
		return
	}
	byID := make(map[models.ParticipantID]models.Participant, len(participants))
	for _, part := range participants {
		byID[part.ID] = part
	}
	forEachTeamRef(p, func(ref *models.TeamRef) {
		part, ok := byID[ref.ID]
		if !ok {
			return
		}
		ref.Name = part.Name
		ref.Abbreviation = part.Abbreviation
		ref.Seed = part.Seed
		if part.LogoURL != nil {
			ref.Logo = *part.LogoURL
		}
	})
}
