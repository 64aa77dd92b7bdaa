package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/Dosada05/playoff-bracket/repositories"
)

type UserService interface {
	UpdateDisplayName(ctx context.Context, identity models.Identity, displayName string) (*models.User, error)
}

type userService struct {
	users  repositories.UserRepository
	logger *slog.Logger
}

func NewUserService(userRepo repositories.UserRepository, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{users: userRepo, logger: logger}
}

// UpdateDisplayName задаёт имя, под которым сетки пользователя видны в таблице.
func (s *userService) UpdateDisplayName(ctx context.Context, identity models.Identity, displayName string) (*models.User, error) {
	if identity.Subject == "" {
		return nil, ErrAuthenticationFailed
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, fmt.Errorf("%w: display name is required", ErrValidationFailed)
	}
	if tooLong(name, MaxDisplayNameLength) {
		return nil, fmt.Errorf("%w: display name must be %d characters or less", ErrValidationFailed, MaxDisplayNameLength)
	}

	user, err := s.users.UpdateDisplayName(ctx, identity.Subject, name)
	if err != nil {
		return nil, storageError("update display name", err)
	}
	s.logger.InfoContext(ctx, "display name updated", slog.Int("user_id", user.ID))
	return user, nil
}
