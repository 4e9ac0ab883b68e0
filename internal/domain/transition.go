package domain

import (
	"fmt"
	"time"
)

type BookingEvent string

const (
	EventApprove         BookingEvent = "approve"
	EventReject          BookingEvent = "reject"
	EventCancel          BookingEvent = "cancel"
	EventPickupConfirmed BookingEvent = "pickup_confirmed"
	EventReturnConfirmed BookingEvent = "return_confirmed"
	EventResolveComplete BookingEvent = "resolve_complete"
	EventResolveCancel   BookingEvent = "resolve_cancel"
)

// CheckpointEvent is the event requested when a checkpoint becomes mutually confirmed.
func CheckpointEvent(c Checkpoint) BookingEvent {
	if c == CheckpointReturn {
		return EventReturnConfirmed
	}
	return EventPickupConfirmed
}

// Actor is whoever requests a transition. System actors are internal sweeps acting on
// already-recorded confirmations.
type Actor struct {
	UserID string
	Role   Role
	Admin  bool
	System bool
}

// ReportGuard pins the condition-report state observed when the transition was decided,
// so the conditional write fails if a report arrives in between.
type ReportGuard int

const (
	ReportGuardAny ReportGuard = iota
	ReportGuardAbsent
	ReportGuardPresent
)

type Transition struct {
	BookingID string
	Event     BookingEvent
	From      BookingStatus
	To        BookingStatus
	Guard     ReportGuard
	Reason    string
	At        time.Time
}

type edge struct {
	from  BookingStatus
	event BookingEvent
}

type guardFunc func(b *Booking, a Actor) (BookingStatus, ReportGuard, error)

// transitions is the complete graph; any (status, event) pair missing here is rejected.
var transitions = map[edge]guardFunc{
	{BookingStatusPending, EventApprove}:            ownerOnly(BookingStatusConfirmed),
	{BookingStatusPending, EventReject}:             ownerOnly(BookingStatusCancelled),
	{BookingStatusPending, EventCancel}:             anyParty(BookingStatusCancelled),
	{BookingStatusConfirmed, EventCancel}:           anyParty(BookingStatusCancelled),
	{BookingStatusConfirmed, EventPickupConfirmed}:  pickupMutual,
	{BookingStatusInProgress, EventReturnConfirmed}: returnMutual,
	{BookingStatusDisputed, EventResolveComplete}:   adminOnly(BookingStatusCompleted),
	{BookingStatusDisputed, EventResolveCancel}:     adminOnly(BookingStatusCancelled),
}

// Next validates ev against the transition graph for b's current status.
func Next(b *Booking, ev BookingEvent, a Actor) (Transition, error) {
	guard, ok := transitions[edge{b.Status, ev}]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, b.Status)
	}

	to, rg, err := guard(b, a)
	if err != nil {
		return Transition{}, fmt.Errorf("%w: %s from %s: %s", ErrInvalidTransition, ev, b.Status, err.Error())
	}

	return Transition{
		BookingID: b.ID,
		Event:     ev,
		From:      b.Status,
		To:        to,
		Guard:     rg,
	}, nil
}

func ownerOnly(to BookingStatus) guardFunc {
	return func(_ *Booking, a Actor) (BookingStatus, ReportGuard, error) {
		if a.Role != RoleOwner {
			return "", ReportGuardAny, fmt.Errorf("actor must be the owner")
		}
		return to, ReportGuardAny, nil
	}
}

func anyParty(to BookingStatus) guardFunc {
	return func(_ *Booking, a Actor) (BookingStatus, ReportGuard, error) {
		if a.Role != RoleOwner && a.Role != RoleRenter {
			return "", ReportGuardAny, fmt.Errorf("actor must be a party")
		}
		return to, ReportGuardAny, nil
	}
}

func adminOnly(to BookingStatus) guardFunc {
	return func(_ *Booking, a Actor) (BookingStatus, ReportGuard, error) {
		if !a.Admin {
			return "", ReportGuardAny, fmt.Errorf("actor must be an operator")
		}
		return to, ReportGuardAny, nil
	}
}

func pickupMutual(b *Booking, _ Actor) (BookingStatus, ReportGuard, error) {
	if !b.Pickup.BothConfirmed() {
		return "", ReportGuardAny, fmt.Errorf("pickup not confirmed by both parties")
	}
	return BookingStatusInProgress, ReportGuardAny, nil
}

func returnMutual(b *Booking, _ Actor) (BookingStatus, ReportGuard, error) {
	switch DetectOutcome(b.Return.BothConfirmed(), b.HasDamageReport(), b.HasOwnerNotes()) {
	case OutcomeComplete:
		return BookingStatusCompleted, ReportGuardAbsent, nil
	case OutcomeDispute:
		return BookingStatusDisputed, ReportGuardPresent, nil
	default:
		return "", ReportGuardAny, fmt.Errorf("return not confirmed by both parties")
	}
}
