package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

// RowImage is the projection of a booking row carried on the change feed.
type RowImage struct {
	ID       string               `json:"id"`
	OwnerID  string               `json:"owner_id"`
	RenterID string               `json:"renter_id"`
	Status   domain.BookingStatus `json:"status"`

	PickupConfirmedByRenter bool `json:"pickup_confirmed_by_renter"`
	PickupConfirmedByOwner  bool `json:"pickup_confirmed_by_owner"`
	ReturnConfirmedByRenter bool `json:"return_confirmed_by_renter"`
	ReturnConfirmedByOwner  bool `json:"return_confirmed_by_owner"`

	HasDamageReport bool `json:"has_damage_report"`
	HasOwnerNotes   bool `json:"has_owner_notes"`
}

func (r *RowImage) confirmed(cp domain.Checkpoint, role domain.Role) bool {
	if r == nil {
		return false
	}
	switch {
	case cp == domain.CheckpointPickup && role == domain.RoleRenter:
		return r.PickupConfirmedByRenter
	case cp == domain.CheckpointPickup:
		return r.PickupConfirmedByOwner
	case role == domain.RoleRenter:
		return r.ReturnConfirmedByRenter
	default:
		return r.ReturnConfirmedByOwner
	}
}

// ChangeEvent is one row change. Resync means changes may have been missed and every
// cached view must be dropped.
type ChangeEvent struct {
	Old    *RowImage `json:"old"`
	New    *RowImage `json:"new"`
	Resync bool      `json:"-"`
}

func (e ChangeEvent) BookingID() string {
	if e.New != nil {
		return e.New.ID
	}
	if e.Old != nil {
		return e.Old.ID
	}
	return ""
}

// Parties returns the distinct users on either side of the change.
func (e ChangeEvent) Parties() []string {
	seen := make(map[string]struct{}, 4)
	var out []string
	for _, img := range []*RowImage{e.Old, e.New} {
		if img == nil {
			continue
		}
		for _, id := range []string{img.OwnerID, img.RenterID} {
			if _, ok := seen[id]; ok || id == "" {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Feed delivers change events until it fails or is closed; then Events is closed.
type Feed interface {
	Events() <-chan ChangeEvent
	Close() error
}

// Filter selects the changes a view depends on: one booking for a detail view, or every
// booking a user is party to for a list view.
type Filter struct {
	BookingID string
	UserID    string
}

func (f Filter) Match(ev ChangeEvent) bool {
	if ev.Resync {
		return true
	}
	if f.BookingID != "" && ev.BookingID() != f.BookingID {
		return false
	}
	if f.UserID != "" {
		for _, id := range ev.Parties() {
			if id == f.UserID {
				return true
			}
		}
		return false
	}
	return true
}

func decodeChange(payload string) (ChangeEvent, error) {
	var ev ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return ChangeEvent{}, fmt.Errorf("decode change: %w", err)
	}
	if ev.New == nil && ev.Old == nil {
		return ChangeEvent{}, fmt.Errorf("decode change: empty payload")
	}
	return ev, nil
}
