package ports

import (
	"context"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

// Dispatcher is fire-and-forget: implementations log their own failures and must not block.
type Dispatcher interface {
	Dispatch(ctx context.Context, n domain.Notification)
}
