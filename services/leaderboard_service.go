package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories"
	"golang.org/x/sync/errgroup"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, seasonYear int) ([]models.LeaderboardEntry, error)
	ScoreBracket(ctx context.Context, bracketID int) (*models.LeaderboardEntry, error)
}

type leaderboardService struct {
	brackets    repositories.BracketRepository
	predictions repositories.PredictionRepository
	outcomes    repositories.OutcomeRepository
	logger      *slog.Logger
}

func NewLeaderboardService(
	bracketRepo repositories.BracketRepository,
	predictionRepo repositories.PredictionRepository,
	outcomeRepo repositories.OutcomeRepository,
	logger *slog.Logger,
) LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &leaderboardService{
		brackets:    bracketRepo,
		predictions: predictionRepo,
		outcomes:    outcomeRepo,
		logger:      logger,
	}
}

// GetLeaderboard всегда считает очки заново по текущим прогнозам и результатам.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, seasonYear int) ([]models.LeaderboardEntry, error) {
	if err := checkSeason(seasonYear); err != nil {
		return nil, err
	}

	var (
		list     []models.Bracket
		slots    map[int][]models.PredictionSlot
		outcomes []models.OutcomeSlot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.brackets.ListByTournament(gctx, seasonYear)
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = s.predictions.ListByTournament(gctx, seasonYear)
		return err
	})
	g.Go(func() error {
		var err error
		outcomes, err = s.outcomes.ListByTournament(gctx, seasonYear)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError("load leaderboard data", err)
	}

	board := brackets.BuildLeaderboard(list, slots, outcomes)
	s.logger.DebugContext(ctx, "leaderboard computed",
		slog.Int("season", seasonYear),
		slog.Int("brackets", len(board)),
		slog.Int("final_outcomes", len(brackets.FinalWinners(outcomes))),
	)
	return board, nil
}

// ScoreBracket returns one bracket's entry, ranked against its whole season.
func (s *leaderboardService) ScoreBracket(ctx context.Context, bracketID int) (*models.LeaderboardEntry, error) {
	bracket, err := s.brackets.GetByID(ctx, bracketID)
	if err != nil {
		if errors.Is(err, repositories.ErrBracketNotFound) {
			return nil, ErrBracketNotFound
		}
		return nil, storageError("fetch bracket", err)
	}

	board, err := s.GetLeaderboard(ctx, bracket.SeasonYear)
	if err != nil {
		return nil, err
	}
	for i := range board {
		if board[i].BracketID == bracketID {
			return &board[i], nil
		}
	}
	// Сетку удалили между запросами.
	return nil, ErrBracketNotFound
}
