package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Me_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	expected := &domain.User{ID: renterID, DisplayName: "alice"}
	repo.EXPECT().GetByID(mock.Anything, renterID).Return(expected, nil)

	user, err := svc.Me(context.Background(), renter)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.DisplayName)
}

func TestUserService_Me_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	repo.EXPECT().GetByID(mock.Anything, renterID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Me(context.Background(), renter)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Counterpart(t *testing.T) {
	tests := []struct {
		name   string
		caller domain.Identity
		want   string
	}{
		{"renter sees owner", renter, ownerID},
		{"owner sees renter", owner, renterID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo, newMemRepo(newBooking("b-1", domain.BookingStatusConfirmed)))

			repo.EXPECT().GetByID(mock.Anything, tt.want).Return(&domain.User{ID: tt.want}, nil)

			user, err := svc.Counterpart(context.Background(), tt.caller, "b-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, user.ID)
		})
	}
}

func TestUserService_Counterpart_Stranger(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t), newMemRepo(newBooking("b-1", domain.BookingStatusConfirmed)))

	_, err := svc.Counterpart(context.Background(), domain.Identity{UserID: "stranger"}, "b-1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_Counterpart_RepoError(t *testing.T) {
	bookings := mocks.NewMockBookingRepo(t)
	svc := NewUserService(mocks.NewMockUserRepo(t), bookings)

	repoErr := errors.New("db error")
	bookings.EXPECT().GetByID(mock.Anything, "b-1").Return(nil, repoErr)

	_, err := svc.Counterpart(context.Background(), renter, "b-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
