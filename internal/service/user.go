package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/service/ports"
)

// UserService exposes read-only profiles; accounts are owned by the identity service.
type UserService struct {
	repo     ports.UserRepo
	bookings ports.BookingRepo
}

func NewUserService(repo ports.UserRepo, bookings ports.BookingRepo) *UserService {
	return &UserService{repo: repo, bookings: bookings}
}

func (s *UserService) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Counterpart returns the other party of a booking, the person the caller hands the item to.
func (s *UserService) Counterpart(ctx context.Context, id domain.Identity, bookingID string) (*domain.User, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	role, ok := b.RoleOf(id.UserID)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.repo.GetByID(ctx, b.PartyID(role.Counterpart()))
	if err != nil {
		return nil, fmt.Errorf("get counterpart: %w", err)
	}
	return u, nil
}
