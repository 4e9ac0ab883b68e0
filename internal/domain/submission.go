package domain

import "time"

// CheckpointSubmission is one party's confirmation of a checkpoint, written in a single
// conditional update guarded on the checkpoint's open status.
type CheckpointSubmission struct {
	BookingID       string
	Checkpoint      Checkpoint
	ActorID         string
	Role            Role
	Evidence        []EvidenceRecord
	ConditionReport string
	At              time.Time
}

type EvidenceRemoval struct {
	BookingID  string
	Checkpoint Checkpoint
	EvidenceID string
	// Role is the uploader's side; its confirmation flag is cleared with the record.
	Role Role
}

// UploadRequest carries everything needed for a deterministic object name.
type UploadRequest struct {
	BookingID string
	ActorID   string
	AttemptAt time.Time
	Seq       int
	Record    EvidenceRecord
}

type SubmitInput struct {
	BookingID       string
	Checkpoint      Checkpoint
	ConditionReport string
}

// SubmitResult is the booking as re-read after the submission, with the checkpoint's outcome.
type SubmitResult struct {
	Booking      *Booking
	Outcome      Outcome
	Transitioned bool
}
