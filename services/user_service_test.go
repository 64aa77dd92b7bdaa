package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDisplayName_Trims(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks()
	m.users.On("UpdateDisplayName", ctx, alice.Subject, "Alice B.").
		Return(&models.User{ID: 7, ExternalID: alice.Subject, DisplayName: "Alice B."}, nil)

	user, err := NewUserService(m.users, nil).UpdateDisplayName(ctx, alice, "  Alice B.  ")

	require.NoError(t, err)
	assert.Equal(t, "Alice B.", user.DisplayName)
	m.users.AssertExpectations(t)
}

func TestUpdateDisplayName_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"blank", "   ", ErrValidationFailed},
		{"too long", strings.Repeat("a", MaxDisplayNameLength+1), ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRepoMocks()

			_, err := NewUserService(m.users, nil).UpdateDisplayName(context.Background(), alice, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			m.users.AssertNotCalled(t, "UpdateDisplayName", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateDisplayName_LimitCountsCharacters(t *testing.T) {
	ctx := context.Background()
	m := newRepoMocks()
	name := strings.Repeat("ж", MaxDisplayNameLength)
	m.users.On("UpdateDisplayName", ctx, alice.Subject, name).Return(&models.User{ID: 7, DisplayName: name}, nil)

	_, err := NewUserService(m.users, nil).UpdateDisplayName(ctx, alice, name)

	assert.NoError(t, err)
}

func TestUpdateDisplayName_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewUserService(newRepoMocks().users, nil).UpdateDisplayName(ctx, models.Identity{}, "Anon")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	m := newRepoMocks()
	m.users.On("UpdateDisplayName", ctx, alice.Subject, "Alice").Return(nil, errors.New("connection reset"))
	_, err = NewUserService(m.users, nil).UpdateDisplayName(ctx, alice, "Alice")
	assert.ErrorIs(t, err, ErrStorage)
}
