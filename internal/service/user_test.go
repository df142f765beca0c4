package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:       "  camper  ",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "camper", user.Username)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.Zero(t, user.TrustScore)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "user"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Trust score ---

func TestUserService_RecordReviewGiven(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().AddTrustScore(mock.Anything, "guest", 5).Return(nil)

	require.NoError(t, svc.RecordReviewGiven(context.Background(), "guest"))
}

func TestUserService_RecordReservationCompletion(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().AddTrustScore(mock.Anything, "guest", 10).Return(nil)

	require.NoError(t, svc.RecordReservationCompletion(context.Background(), "guest"))
}

func TestUserService_RecordHostRating(t *testing.T) {
	tests := []struct {
		rating int
		delta  int
	}{
		{5, 15},
		{1, -10},
		{4, 0},
		{3, 0},
		{2, 0},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo)

			if tt.delta != 0 {
				repo.EXPECT().AddTrustScore(mock.Anything, "host", tt.delta).Return(nil)
			}

			require.NoError(t, svc.RecordHostRating(context.Background(), "host", tt.rating))
		})
	}
}

func TestUserService_RecordTrust_UserMissing(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().AddTrustScore(mock.Anything, "ghost", 10).Return(domain.ErrUserNotFound)

	err := svc.RecordReservationCompletion(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
