package domain

type Action string

const (
	ActionPickup  Action = "pickup"
	ActionReturn  Action = "return"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

func CheckpointAction(c Checkpoint) Action {
	if c == CheckpointReturn {
		return ActionReturn
	}
	return ActionPickup
}

// Notification is what the dispatcher receives after a party acts.
type Notification struct {
	BookingID string `json:"booking_id"`
	Action    Action `json:"action"`
	ActorID   string `json:"actor_id"`
}

type SignalKind string

const (
	SignalCheckpointConfirmedByOne SignalKind = "checkpoint.confirmed_by_one"
	SignalCheckpointMutual         SignalKind = "checkpoint.mutually_confirmed"
	SignalBookingConfirmed         SignalKind = "booking.confirmed"
	SignalDisputeOpened            SignalKind = "dispute.opened"
	SignalBookingCompleted         SignalKind = "booking.completed"
	SignalBookingCancelled         SignalKind = "booking.cancelled"
)

// Signal is derived from a row change on the feed.
type Signal struct {
	Kind       SignalKind `json:"kind"`
	BookingID  string     `json:"booking_id"`
	Checkpoint Checkpoint `json:"checkpoint,omitempty"`
	Role       Role       `json:"role,omitempty"`
}
