package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusInProgress, s)

	_, err = ParseBookingStatus("returned")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBooking_RoleOf(t *testing.T) {
	b := &Booking{OwnerID: "o", RenterID: "r"}

	role, ok := b.RoleOf("o")
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	role, ok = b.RoleOf("r")
	assert.True(t, ok)
	assert.Equal(t, RoleRenter, role)

	_, ok = b.RoleOf("stranger")
	assert.False(t, ok)

	_, ok = b.RoleOf("")
	assert.False(t, ok)
}

func TestEvidence_LegacyRecordAttributedToRenter(t *testing.T) {
	b := &Booking{OwnerID: "o", RenterID: "r"}
	legacy := EvidenceRecord{ID: "e1", Media: DurableMedia("https://cdn/x.jpg")}

	assert.Equal(t, RoleRenter, legacy.AttributedRole())
	assert.Equal(t, "r", legacy.AttributedUploader(b))

	owned := EvidenceRecord{ID: "e2", UploaderID: "o", UploaderRole: RoleOwner}
	assert.Equal(t, RoleOwner, owned.AttributedRole())
	assert.Equal(t, "o", owned.AttributedUploader(b))
}

func TestCheckpointState_CountBy(t *testing.T) {
	cp := CheckpointState{Evidence: []EvidenceRecord{
		{ID: "1", UploaderID: "r", UploaderRole: RoleRenter},
		{ID: "2"},
		{ID: "3", UploaderID: "o", UploaderRole: RoleOwner},
	}}

	assert.Equal(t, 2, cp.CountBy(RoleRenter))
	assert.Equal(t, 1, cp.CountBy(RoleOwner))
}

func TestMediaRef_Durable(t *testing.T) {
	assert.False(t, PendingMedia("/spool/a.jpg").Durable())
	assert.True(t, DurableMedia("https://cdn/a.jpg").Durable())
	assert.False(t, MediaRef{Kind: MediaDurable}.Durable())
}

func TestBooking_StalledCheckpoint(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	_, ok := b.StalledCheckpoint()
	assert.False(t, ok)

	b.Pickup.ConfirmedByOwner.Confirmed = true
	b.Pickup.ConfirmedByRenter.Confirmed = true
	cp, ok := b.StalledCheckpoint()
	assert.True(t, ok)
	assert.Equal(t, CheckpointPickup, cp)
}
