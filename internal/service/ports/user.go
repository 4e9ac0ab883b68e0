package ports

import (
	"context"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
