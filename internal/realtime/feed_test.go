package realtime

import (
	"testing"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func image(id string, status domain.BookingStatus) *RowImage {
	return &RowImage{ID: id, OwnerID: "owner-1", RenterID: "renter-1", Status: status}
}

func TestDecodeChange(t *testing.T) {
	payload := `{"old":{"id":"b1","owner_id":"o","renter_id":"r","status":"in_progress"},
		"new":{"id":"b1","owner_id":"o","renter_id":"r","status":"disputed","has_damage_report":true,
		"return_confirmed_by_renter":true,"return_confirmed_by_owner":true}}`

	ev, err := decodeChange(payload)

	require.NoError(t, err)
	require.NotNil(t, ev.Old)
	require.NotNil(t, ev.New)
	assert.Equal(t, domain.BookingStatusInProgress, ev.Old.Status)
	assert.Equal(t, domain.BookingStatusDisputed, ev.New.Status)
	assert.True(t, ev.New.HasDamageReport)
	assert.True(t, ev.New.ReturnConfirmedByOwner)
	assert.False(t, ev.Resync)
}

func TestDecodeChange_Insert(t *testing.T) {
	ev, err := decodeChange(`{"old":null,"new":{"id":"b1","status":"pending"}}`)

	require.NoError(t, err)
	assert.Nil(t, ev.Old)
	assert.Equal(t, "b1", ev.BookingID())
}

func TestDecodeChange_Invalid(t *testing.T) {
	_, err := decodeChange(`not json`)
	assert.Error(t, err)

	_, err = decodeChange(`{}`)
	assert.Error(t, err)
}

func TestChangeEvent_Parties(t *testing.T) {
	old := image("b1", domain.BookingStatusPending)
	cur := image("b1", domain.BookingStatusConfirmed)
	cur.RenterID = "renter-2"

	parties := ChangeEvent{Old: old, New: cur}.Parties()

	assert.ElementsMatch(t, []string{"owner-1", "renter-1", "renter-2"}, parties)
}

func TestFilter_Match(t *testing.T) {
	ev := ChangeEvent{Old: image("b1", domain.BookingStatusPending), New: image("b1", domain.BookingStatusConfirmed)}

	tests := []struct {
		name   string
		filter Filter
		event  ChangeEvent
		want   bool
	}{
		{name: "same booking", filter: Filter{BookingID: "b1"}, event: ev, want: true},
		{name: "other booking", filter: Filter{BookingID: "b2"}, event: ev, want: false},
		{name: "owner list", filter: Filter{UserID: "owner-1"}, event: ev, want: true},
		{name: "renter list", filter: Filter{UserID: "renter-1"}, event: ev, want: true},
		{name: "stranger list", filter: Filter{UserID: "someone"}, event: ev, want: false},
		{name: "resync reaches everyone", filter: Filter{UserID: "someone"}, event: ChangeEvent{Resync: true}, want: true},
		{name: "empty filter", filter: Filter{}, event: ev, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.event))
		})
	}
}
