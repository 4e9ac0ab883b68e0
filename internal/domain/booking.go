package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusDisputed   BookingStatus = "disputed"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusDisputed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// ParseBookingStatus rejects values outside the closed status set.
func ParseBookingStatus(v string) (BookingStatus, error) {
	s := BookingStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, v)
	}
	return s, nil
}

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
)

func (r Role) Counterpart() Role {
	if r == RoleOwner {
		return RoleRenter
	}
	return RoleOwner
}

type Checkpoint string

const (
	CheckpointPickup Checkpoint = "pickup"
	CheckpointReturn Checkpoint = "return"
)

func ParseCheckpoint(v string) (Checkpoint, error) {
	switch Checkpoint(v) {
	case CheckpointPickup, CheckpointReturn:
		return Checkpoint(v), nil
	}
	return "", fmt.Errorf("%w: unknown checkpoint %q", ErrValidation, v)
}

// OpenStatus is the only status in which the checkpoint accepts evidence and confirmations.
func (c Checkpoint) OpenStatus() BookingStatus {
	if c == CheckpointReturn {
		return BookingStatusInProgress
	}
	return BookingStatusConfirmed
}

type Confirmation struct {
	Confirmed bool       `json:"confirmed"`
	At        *time.Time `json:"at,omitempty"`
}

type CheckpointState struct {
	Evidence          []EvidenceRecord `json:"evidence"`
	ConfirmedByRenter Confirmation     `json:"confirmed_by_renter"`
	ConfirmedByOwner  Confirmation     `json:"confirmed_by_owner"`
}

func (c *CheckpointState) ConfirmedBy(role Role) Confirmation {
	if role == RoleOwner {
		return c.ConfirmedByOwner
	}
	return c.ConfirmedByRenter
}

func (c *CheckpointState) BothConfirmed() bool {
	return c.ConfirmedByRenter.Confirmed && c.ConfirmedByOwner.Confirmed
}

func (c *CheckpointState) FindEvidence(id string) (EvidenceRecord, bool) {
	for _, e := range c.Evidence {
		if e.ID == id {
			return e, true
		}
	}
	return EvidenceRecord{}, false
}

// CountBy counts records attributed to role (legacy records without uploader count as renter's).
func (c *CheckpointState) CountBy(role Role) int {
	n := 0
	for _, e := range c.Evidence {
		if e.AttributedRole() == role {
			n++
		}
	}
	return n
}

type DamageReport struct {
	Text       string     `json:"text"`
	ReportedBy string     `json:"reported_by,omitempty"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

type Booking struct {
	ID        string        `json:"id"`
	ListingID string        `json:"listing_id"`
	OwnerID   string        `json:"owner_id"`
	RenterID  string        `json:"renter_id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    BookingStatus `json:"status"`

	Pickup CheckpointState `json:"pickup"`
	Return CheckpointState `json:"return"`

	DamageReport DamageReport `json:"damage_report"`
	OwnerNotes   string       `json:"owner_notes"`

	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	DisputedAt         *time.Time `json:"disputed_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleOf reports which side of the booking userID is on.
func (b *Booking) RoleOf(userID string) (Role, bool) {
	switch userID {
	case "":
		return "", false
	case b.OwnerID:
		return RoleOwner, true
	case b.RenterID:
		return RoleRenter, true
	}
	return "", false
}

func (b *Booking) PartyID(role Role) string {
	if role == RoleOwner {
		return b.OwnerID
	}
	return b.RenterID
}

func (b *Booking) Checkpoint(c Checkpoint) *CheckpointState {
	if c == CheckpointReturn {
		return &b.Return
	}
	return &b.Pickup
}

func (b *Booking) HasDamageReport() bool { return b.DamageReport.Text != "" }

func (b *Booking) HasOwnerNotes() bool { return b.OwnerNotes != "" }

func (b *Booking) HasConditionReport() bool {
	return b.HasDamageReport() || b.HasOwnerNotes()
}

// StalledCheckpoint returns the checkpoint whose mutual confirmation has not yet moved the status.
func (b *Booking) StalledCheckpoint() (Checkpoint, bool) {
	switch {
	case b.Status == BookingStatusConfirmed && b.Pickup.BothConfirmed():
		return CheckpointPickup, true
	case b.Status == BookingStatusInProgress && b.Return.BothConfirmed():
		return CheckpointReturn, true
	}
	return "", false
}
