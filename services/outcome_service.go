package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories"
)

type OutcomeInput struct {
	SlotKey           string               `json:"slot_key"`
	HomeParticipantID models.ParticipantID `json:"home_participant_id"`
	AwayParticipantID models.ParticipantID `json:"away_participant_id"`
	WinnerID          models.ParticipantID `json:"winner_id"`
	IsFinal           bool                 `json:"is_final"`
}

// OutcomeView is an outcome placed in the catalog with its point value.
type OutcomeView struct {
	models.OutcomeSlot
	Round      models.Round      `json:"round"`
	Conference models.Conference `json:"conference,omitempty"`
	Points     int               `json:"points"`
}

// LeaderboardPublisher receives the recomputed leaderboard after outcomes change.
type LeaderboardPublisher interface {
	PublishLeaderboard(seasonYear int, entries []models.LeaderboardEntry)
}

type OutcomeService interface {
	RecordOutcomes(ctx context.Context, identity models.Identity, seasonYear int, inputs []OutcomeInput) ([]OutcomeView, error)
	ListOutcomes(ctx context.Context, seasonYear int) ([]OutcomeView, error)
	ClearOutcomes(ctx context.Context, identity models.Identity, seasonYear int) (int64, error)
}

type outcomeService struct {
	tx          repositories.Transactor
	outcomes    repositories.OutcomeRepository
	leaderboard LeaderboardService
	publisher   LeaderboardPublisher
	logger      *slog.Logger
}

func NewOutcomeService(
	tx repositories.Transactor,
	outcomeRepo repositories.OutcomeRepository,
	leaderboard LeaderboardService,
	publisher LeaderboardPublisher,
	logger *slog.Logger,
) OutcomeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &outcomeService{
		tx:          tx,
		outcomes:    outcomeRepo,
		leaderboard: leaderboard,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *outcomeService) RecordOutcomes(ctx context.Context, identity models.Identity, seasonYear int, inputs []OutcomeInput) ([]OutcomeView, error) {
	if !identity.Elevated {
		return nil, ErrForbiddenOperation
	}
	if err := checkSeason(seasonYear); err != nil {
		return nil, err
	}
	outcomes, err := validateOutcomes(seasonYear, inputs)
	if err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.outcomes.Upsert(ctx, exec, outcomes)
	})
	if err != nil {
		return nil, storageError("record outcomes", err)
	}

	s.logger.InfoContext(ctx, "outcomes recorded",
		slog.Int("season", seasonYear),
		slog.Int("count", len(outcomes)),
		slog.String("by", identity.Subject),
	)
	s.publish(ctx, seasonYear)

	return s.ListOutcomes(ctx, seasonYear)
}

func validateOutcomes(seasonYear int, inputs []OutcomeInput) ([]models.OutcomeSlot, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one outcome is required", ErrValidationFailed)
	}
	seen := make(map[string]bool, len(inputs))
	outcomes := make([]models.OutcomeSlot, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := brackets.SlotByKey(in.SlotKey); !ok {
			return nil, fmt.Errorf("%w: unknown slot %q", ErrValidationFailed, in.SlotKey)
		}
		if seen[in.SlotKey] {
			return nil, fmt.Errorf("%w: slot %q listed more than once", ErrValidationFailed, in.SlotKey)
		}
		seen[in.SlotKey] = true
		if err := checkParticipantIDs(in.SlotKey, in.HomeParticipantID, in.AwayParticipantID, in.WinnerID); err != nil {
			return nil, err
		}

		if in.IsFinal && in.WinnerID == "" {
			return nil, fmt.Errorf("%w: %s: final outcome requires a winner", ErrValidationFailed, in.SlotKey)
		}
		if in.WinnerID != "" && in.HomeParticipantID != "" && in.AwayParticipantID != "" &&
			in.WinnerID != in.HomeParticipantID && in.WinnerID != in.AwayParticipantID {
			return nil, fmt.Errorf("%w: %s: winner %q did not play in this game", ErrValidationFailed, in.SlotKey, in.WinnerID)
		}

		outcomes = append(outcomes, models.OutcomeSlot{
			SeasonYear:        seasonYear,
			SlotKey:           in.SlotKey,
			HomeParticipantID: in.HomeParticipantID,
			AwayParticipantID: in.AwayParticipantID,
			WinnerID:          in.WinnerID,
			IsFinal:           in.IsFinal,
		})
	}
	return outcomes, nil
}

// ListOutcomes returns stored outcomes in catalog order.
func (s *outcomeService) ListOutcomes(ctx context.Context, seasonYear int) ([]OutcomeView, error) {
	if err := checkSeason(seasonYear); err != nil {
		return nil, err
	}
	stored, err := s.outcomes.ListByTournament(ctx, seasonYear)
	if err != nil {
		return nil, storageError("list outcomes", err)
	}

	byKey := make(map[string]models.OutcomeSlot, len(stored))
	for _, o := range stored {
		byKey[o.SlotKey] = o
	}
	views := make([]OutcomeView, 0, len(stored))
	for _, def := range brackets.AllSlots() {
		o, ok := byKey[def.Key]
		if !ok {
			continue
		}
		views = append(views, OutcomeView{OutcomeSlot: o, Round: def.Round, Conference: def.Conference, Points: def.Points})
	}
	return views, nil
}

func (s *outcomeService) ClearOutcomes(ctx context.Context, identity models.Identity, seasonYear int) (int64, error) {
	if !identity.Elevated {
		return 0, ErrForbiddenOperation
	}
	if err := checkSeason(seasonYear); err != nil {
		return 0, err
	}
	n, err := s.outcomes.DeleteByTournament(ctx, seasonYear)
	if err != nil {
		return 0, storageError("clear outcomes", err)
	}
	s.logger.InfoContext(ctx, "outcomes cleared", slog.Int("season", seasonYear), slog.Int64("deleted", n))
	s.publish(ctx, seasonYear)
	return n, nil
}

// publish отправляет свежую таблицу подписчикам; ошибки только логируются.
func (s *outcomeService) publish(ctx context.Context, seasonYear int) {
	if s.publisher == nil || s.leaderboard == nil {
		return
	}
	board, err := s.leaderboard.GetLeaderboard(ctx, seasonYear)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to refresh leaderboard for subscribers",
			slog.Int("season", seasonYear), slog.Any("error", err))
		return
	}
	s.publisher.PublishLeaderboard(seasonYear, board)
}
