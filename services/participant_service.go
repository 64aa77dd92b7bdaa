package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSeedsPerConference = 7

type ParticipantService interface {
	ListQualified(ctx context.Context, seasonYear int) ([]models.Participant, error)
	SearchParticipants(ctx context.Context, seasonYear int, query string) ([]models.Participant, error)
	ReplaceQualified(ctx context.Context, identity models.Identity, seasonYear int, participants []models.Participant) ([]models.Participant, error)
}

type participantService struct {
	tx           repositories.Transactor
	participants repositories.ParticipantRepository
	logger       *slog.Logger
}

func NewParticipantService(tx repositories.Transactor, participantRepo repositories.ParticipantRepository, logger *slog.Logger) ParticipantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &participantService{tx: tx, participants: participantRepo, logger: logger}
}

func (s *participantService) ListQualified(ctx context.Context, seasonYear int) ([]models.Participant, error) {
	if err := checkSeason(seasonYear); err != nil {
		return nil, err
	}
	list, err := s.participants.ListQualified(ctx, seasonYear)
	if err != nil {
		return nil, storageError("list participants", err)
	}
	return list, nil
}

// SearchParticipants ищет команды по имени, городу или аббревиатуре с нечетким
// совпадением; лучшие совпадения идут первыми.
func (s *participantService) SearchParticipants(ctx context.Context, seasonYear int, query string) ([]models.Participant, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidationFailed)
	}
	list, err := s.ListQualified(ctx, seasonYear)
	if err != nil {
		return nil, err
	}

	var (
		targets []string
		owners  []int
	)
	for i, p := range list {
		for _, t := range []string{p.Name, p.Abbreviation, strings.TrimSpace(p.Location + " " + p.Name)} {
			if t == "" {
				continue
			}
			targets = append(targets, t)
			owners = append(owners, i)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Sort(ranks)

	seen := make(map[int]bool)
	found := make([]models.Participant, 0)
	for _, r := range ranks {
		idx := owners[r.OriginalIndex]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		found = append(found, list[idx])
	}
	return found, nil
}

func (s *participantService) ReplaceQualified(ctx context.Context, identity models.Identity, seasonYear int, participants []models.Participant) ([]models.Participant, error) {
	if !identity.Elevated {
		return nil, ErrForbiddenOperation
	}
	if err := checkSeason(seasonYear); err != nil {
		return nil, err
	}
	if err := validateParticipants(participants); err != nil {
		return nil, err
	}
	for i := range participants {
		participants[i].SeasonYear = seasonYear
	}

	err := s.tx.InTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.participants.ReplaceQualified(ctx, exec, seasonYear, participants)
	})
	if err != nil {
		return nil, storageError("replace participants", err)
	}

	s.logger.InfoContext(ctx, "qualified participants replaced",
		slog.Int("season", seasonYear), slog.Int("count", len(participants)))
	return s.ListQualified(ctx, seasonYear)
}

func validateParticipants(participants []models.Participant) error {
	ids := make(map[models.ParticipantID]bool, len(participants))
	seeds := make(map[models.Conference]map[int]bool)
	for _, p := range participants {
		if strings.TrimSpace(string(p.ID)) == "" {
			return fmt.Errorf("%w: participant id is required", ErrValidationFailed)
		}
		if err := checkParticipantIDs("participants", p.ID); err != nil {
			return err
		}
		if ids[p.ID] {
			return fmt.Errorf("%w: participant %q listed twice", ErrValidationFailed, p.ID)
		}
		ids[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: participant %q has no name", ErrValidationFailed, p.ID)
		}
		if tooLong(p.Name, maxParticipantNameLength) {
			return fmt.Errorf("%w: participant %q name longer than %d characters", ErrValidationFailed, p.ID, maxParticipantNameLength)
		}
		if tooLong(p.Abbreviation, maxAbbreviationLength) {
			return fmt.Errorf("%w: participant %q abbreviation longer than %d characters", ErrValidationFailed, p.ID, maxAbbreviationLength)
		}
		if tooLong(p.Location, maxLocationLength) {
			return fmt.Errorf("%w: participant %q location longer than %d characters", ErrValidationFailed, p.ID, maxLocationLength)
		}
		if !p.Conference.IsValid() {
			return fmt.Errorf("%w: participant %q has unknown conference %q", ErrValidationFailed, p.ID, p.Conference)
		}
		if p.Seed < 1 || p.Seed > maxSeedsPerConference {
			return fmt.Errorf("%w: participant %q seed %d out of range", ErrValidationFailed, p.ID, p.Seed)
		}
		if seeds[p.Conference] == nil {
			seeds[p.Conference] = make(map[int]bool)
		}
		if seeds[p.Conference][p.Seed] {
			return fmt.Errorf("%w: seed %d used twice in %s", ErrValidationFailed, p.Seed, p.Conference)
		}
		seeds[p.Conference][p.Seed] = true
	}
	return nil
}
