package realtime

import "github.com/stpnv0/RentalHandover/internal/domain"

var statusSignals = map[domain.BookingStatus]domain.SignalKind{
	domain.BookingStatusConfirmed: domain.SignalBookingConfirmed,
	domain.BookingStatusDisputed:  domain.SignalDisputeOpened,
	domain.BookingStatusCompleted: domain.SignalBookingCompleted,
	domain.BookingStatusCancelled: domain.SignalBookingCancelled,
}

// Classify translates a row change into lifecycle signals. old is nil for an insert.
func Classify(old, cur *RowImage) []domain.Signal {
	if cur == nil {
		return nil
	}

	var out []domain.Signal
	for _, cp := range []domain.Checkpoint{domain.CheckpointPickup, domain.CheckpointReturn} {
		if sig, ok := classifyCheckpoint(old, cur, cp); ok {
			out = append(out, sig)
		}
	}

	if old == nil || old.Status != cur.Status {
		if kind, ok := statusSignals[cur.Status]; ok {
			out = append(out, domain.Signal{Kind: kind, BookingID: cur.ID})
		}
	}

	return out
}

func classifyCheckpoint(old, cur *RowImage, cp domain.Checkpoint) (domain.Signal, bool) {
	var newly []domain.Role
	confirmed := 0
	for _, role := range []domain.Role{domain.RoleRenter, domain.RoleOwner} {
		if !cur.confirmed(cp, role) {
			continue
		}
		confirmed++
		if !old.confirmed(cp, role) {
			newly = append(newly, role)
		}
	}

	switch {
	case len(newly) == 0:
		return domain.Signal{}, false
	case confirmed == 2:
		return domain.Signal{Kind: domain.SignalCheckpointMutual, BookingID: cur.ID, Checkpoint: cp}, true
	default:
		return domain.Signal{
			Kind:       domain.SignalCheckpointConfirmedByOne,
			BookingID:  cur.ID,
			Checkpoint: cp,
			Role:       newly[0],
		}, true
	}
}
