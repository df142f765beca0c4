package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCaravanService_Create_Success(t *testing.T) {
	repo := mocks.NewMockCaravanRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewCaravanService(repo, users)

	users.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.User{ID: "h1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), domain.CreateCaravanInput{
		HostID:      "h1",
		Name:        " Westfalia ",
		Location:    "Tallinn",
		Capacity:    4,
		PricePerDay: 100,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Westfalia", c.Name)
	assert.Equal(t, domain.CaravanStatusAvailable, c.Status)
}

func TestCaravanService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateCaravanInput
	}{
		{"no host", domain.CreateCaravanInput{Name: "x", Capacity: 1}},
		{"no name", domain.CreateCaravanInput{HostID: "h1", Capacity: 1}},
		{"zero capacity", domain.CreateCaravanInput{HostID: "h1", Name: "x"}},
		{"negative price", domain.CreateCaravanInput{HostID: "h1", Name: "x", Capacity: 1, PricePerDay: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCaravanService(nil, nil)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCaravanService_Create_HostNotFound(t *testing.T) {
	repo := mocks.NewMockCaravanRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewCaravanService(repo, users)

	users.EXPECT().GetByID(mock.Anything, "h1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateCaravanInput{HostID: "h1", Name: "x", Capacity: 2})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
