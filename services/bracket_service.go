package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories"
)

type BracketView struct {
	Bracket     *models.Bracket           `json:"bracket"`
	Predictions *models.BracketPrediction `json:"predictions"`
}

type BracketService interface {
	SubmitBracket(ctx context.Context, identity models.Identity, sub models.BracketSubmission) (*models.Bracket, error)
	GetBracket(ctx context.Context, bracketID int) (*BracketView, error)
	ListBrackets(ctx context.Context, seasonYear int) ([]models.Bracket, error)
	ListMyBrackets(ctx context.Context, identity models.Identity) ([]BracketView, error)
	DeleteBracket(ctx context.Context, identity models.Identity, bracketID int) error
}

type bracketService struct {
	tx            repositories.Transactor
	brackets      repositories.BracketRepository
	predictions   repositories.PredictionRepository
	participants  repositories.ParticipantRepository
	users         repositories.UserRepository
	defaultSeason int
	logger        *slog.Logger
}

func NewBracketService(
	tx repositories.Transactor,
	bracketRepo repositories.BracketRepository,
	predictionRepo repositories.PredictionRepository,
	participantRepo repositories.ParticipantRepository,
	userRepo repositories.UserRepository,
	defaultSeason int,
	logger *slog.Logger,
) BracketService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bracketService{
		tx:            tx,
		brackets:      bracketRepo,
		predictions:   predictionRepo,
		participants:  participantRepo,
		users:         userRepo,
		defaultSeason: defaultSeason,
		logger:        logger,
	}
}

// SubmitBracket кодирует прогноз и сохраняет сетку вместе со всеми строками
// в одной транзакции. Ограничение "одна сетка на сезон" проверяет база.
func (s *bracketService) SubmitBracket(ctx context.Context, identity models.Identity, sub models.BracketSubmission) (*models.Bracket, error) {
	if identity.Subject == "" {
		return nil, ErrAuthenticationFailed
	}

	if sub.SeasonYear == 0 {
		sub.SeasonYear = s.defaultSeason
	}
	if err := checkSeason(sub.SeasonYear); err != nil {
		return nil, err
	}

	name, err := brackets.NormalizeName(sub.Name)
	if err != nil {
		return nil, validationError(err)
	}
	slots, err := brackets.Encode(sub)
	if err != nil {
		return nil, validationError(err)
	}

	qualified, err := s.participants.ListQualified(ctx, sub.SeasonYear)
	if err != nil {
		s.logger.WarnContext(ctx, "participant registry unavailable, skipping team check",
			slog.Int("season", sub.SeasonYear), slog.Any("error", err))
	} else if err := brackets.CheckParticipants(slots, qualifiedSet(qualified)); err != nil {
		return nil, validationError(err)
	}

	bracket := &models.Bracket{
		Name:       name,
		SeasonYear: sub.SeasonYear,
		Elevated:   identity.Elevated,
	}

	// Владелец создаётся в той же транзакции: неудачная отправка не оставляет строк.
	err = s.tx.InTx(ctx, func(exec repositories.SQLExecutor) error {
		user, err := s.users.Upsert(ctx, exec, identity.Subject, clipDisplayName(identity.DisplayName))
		if err != nil {
			return fmt.Errorf("resolve bracket owner: %w", err)
		}
		bracket.UserID = user.ID
		bracket.OwnerDisplayName = user.DisplayName

		if err := s.brackets.Create(ctx, exec, bracket); err != nil {
			return err
		}
		return s.predictions.CreateBatch(ctx, exec, bracket.ID, slots)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrBracketConflict) {
			return nil, fmt.Errorf("%w: season %d", ErrBracketConflict, sub.SeasonYear)
		}
		return nil, storageError("persist bracket", err)
	}
	bracket.PredictionCount = len(slots)

	s.logger.InfoContext(ctx, "bracket submitted",
		slog.Int("bracket_id", bracket.ID),
		slog.Int("season", bracket.SeasonYear),
		slog.Int("predictions", len(slots)),
		slog.Bool("elevated", bracket.Elevated),
	)
	return bracket, nil
}

func (s *bracketService) GetBracket(ctx context.Context, bracketID int) (*BracketView, error) {
	bracket, err := s.getBracket(ctx, bracketID)
	if err != nil {
		return nil, err
	}

	slots, err := s.predictions.ListByBracket(ctx, bracketID)
	if err != nil {
		return nil, storageError("fetch prediction slots", err)
	}
	prediction := brackets.Decode(slots)
	bracket.PredictionCount = len(slots)

	participants, err := s.participants.ListQualified(ctx, bracket.SeasonYear)
	if err != nil {
		s.logger.WarnContext(ctx, "participant registry unavailable, returning bare team ids",
			slog.Int("bracket_id", bracketID), slog.Any("error", err))
	} else {
		enrichPrediction(prediction, participants)
	}

	return &BracketView{Bracket: bracket, Predictions: prediction}, nil
}

func (s *bracketService) ListBrackets(ctx context.Context, seasonYear int) ([]models.Bracket, error) {
	if seasonYear == 0 {
		seasonYear = s.defaultSeason
	}
	if err := checkSeason(seasonYear); err != nil {
		return nil, err
	}
	list, err := s.brackets.ListByTournament(ctx, seasonYear)
	if err != nil {
		return nil, storageError("list brackets", err)
	}
	return list, nil
}

// ListMyBrackets returns the caller's brackets across all seasons, newest
// first, each with its decoded prediction.
func (s *bracketService) ListMyBrackets(ctx context.Context, identity models.Identity) ([]BracketView, error) {
	if identity.Subject == "" {
		return nil, ErrAuthenticationFailed
	}
	user, err := s.users.GetByExternalID(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return []BracketView{}, nil
		}
		return nil, storageError("resolve caller", err)
	}

	list, err := s.brackets.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, storageError("list user brackets", err)
	}
	slotsByBracket, err := s.predictions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, storageError("list user predictions", err)
	}

	registry := make(map[int][]models.Participant)
	views := make([]BracketView, 0, len(list))
	for i := range list {
		b := list[i]
		slots := slotsByBracket[b.ID]
		b.PredictionCount = len(slots)
		prediction := brackets.Decode(slots)

		participants, seen := registry[b.SeasonYear]
		if !seen {
			participants, err = s.participants.ListQualified(ctx, b.SeasonYear)
			if err != nil {
				s.logger.WarnContext(ctx, "participant registry unavailable, returning bare team ids",
					slog.Int("season", b.SeasonYear), slog.Any("error", err))
				participants = nil
			}
			registry[b.SeasonYear] = participants
		}
		enrichPrediction(prediction, participants)

		views = append(views, BracketView{Bracket: &b, Predictions: prediction})
	}
	return views, nil
}

// DeleteBracket удаляет сетку и все её прогнозы. Разрешено владельцу или
// привилегированному пользователю.
func (s *bracketService) DeleteBracket(ctx context.Context, identity models.Identity, bracketID int) error {
	if identity.Subject == "" {
		return ErrAuthenticationFailed
	}
	bracket, err := s.getBracket(ctx, bracketID)
	if err != nil {
		return err
	}

	if !identity.Elevated {
		user, err := s.users.GetByExternalID(ctx, identity.Subject)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrForbiddenOperation
			}
			return storageError("resolve caller", err)
		}
		if user.ID != bracket.UserID {
			return ErrForbiddenOperation
		}
	}

	if err := s.brackets.Delete(ctx, bracketID); err != nil {
		if errors.Is(err, repositories.ErrBracketNotFound) {
			return ErrBracketNotFound
		}
		return storageError("delete bracket", err)
	}

	s.logger.InfoContext(ctx, "bracket deleted",
		slog.Int("bracket_id", bracketID),
		slog.Bool("by_elevated", identity.Elevated),
	)
	return nil
}

func (s *bracketService) getBracket(ctx context.Context, bracketID int) (*models.Bracket, error) {
	bracket, err := s.brackets.GetByID(ctx, bracketID)
	if err != nil {
		if errors.Is(err, repositories.ErrBracketNotFound) {
			return nil, ErrBracketNotFound
		}
		return nil, storageError("fetch bracket", err)
	}
	return bracket, nil
}
