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

type reviewMocks struct {
	reviews  *mocks.MockReviewRepo
	caravans *mocks.MockCaravanRepo
	users    *mocks.MockUserRepo
}

func newReviewService(t *testing.T) (*ReviewService, *reviewMocks) {
	t.Helper()
	m := &reviewMocks{
		reviews:  mocks.NewMockReviewRepo(t),
		caravans: mocks.NewMockCaravanRepo(t),
		users:    mocks.NewMockUserRepo(t),
	}
	svc := NewReviewService(m.reviews, m.caravans, m.users, NewUserService(m.users), newTestLogger(t))
	return svc, m
}

func TestReviewService_Create_TopRating(t *testing.T) {
	svc, m := newReviewService(t)

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Caravan{ID: "c1", HostID: "h1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.User{ID: "g1"}, nil)
	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().AddTrustScore(mock.Anything, "g1", 5).Return(nil)
	m.users.EXPECT().AddTrustScore(mock.Anything, "h1", 15).Return(nil)

	r, err := svc.Create(context.Background(), domain.CreateReviewInput{
		CaravanID: "c1", GuestID: "g1", Rating: 5, Comment: "great",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 5, r.Rating)
}

func TestReviewService_Create_NeutralRatingLeavesHost(t *testing.T) {
	svc, m := newReviewService(t)

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Caravan{ID: "c1", HostID: "h1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.User{ID: "g1"}, nil)
	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().AddTrustScore(mock.Anything, "g1", 5).Return(nil)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{CaravanID: "c1", GuestID: "g1", Rating: 3})

	require.NoError(t, err)
	m.users.AssertNotCalled(t, "AddTrustScore", mock.Anything, "h1", mock.Anything)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	svc, _ := newReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), domain.CreateReviewInput{CaravanID: "c1", GuestID: "g1", Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestReviewService_Create_GuestNotFound(t *testing.T) {
	svc, m := newReviewService(t)

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Caravan{ID: "c1", HostID: "h1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "g1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{CaravanID: "c1", GuestID: "g1", Rating: 4})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReviewService_ListByCaravan(t *testing.T) {
	svc, m := newReviewService(t)

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Caravan{ID: "c1"}, nil)
	m.reviews.EXPECT().ListByCaravan(mock.Anything, "c1").Return([]*domain.Review{{ID: "v1"}}, nil)

	got, err := svc.ListByCaravan(context.Background(), "c1")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReviewService_ListByCaravan_NotFound(t *testing.T) {
	svc, m := newReviewService(t)

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCaravanNotFound)

	_, err := svc.ListByCaravan(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
