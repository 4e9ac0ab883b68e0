package domain

import "time"

type MediaKind string

const (
	MediaPending MediaKind = "pending"
	MediaDurable MediaKind = "durable"
)

// MediaRef is either a local capture handle or a durable URL, never both.
type MediaRef struct {
	Kind   MediaKind `json:"kind"`
	Handle string    `json:"handle,omitempty"`
	URL    string    `json:"url,omitempty"`
}

func PendingMedia(handle string) MediaRef {
	return MediaRef{Kind: MediaPending, Handle: handle}
}

func DurableMedia(url string) MediaRef {
	return MediaRef{Kind: MediaDurable, URL: url}
}

func (m MediaRef) Durable() bool { return m.Kind == MediaDurable && m.URL != "" }

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type EvidenceRecord struct {
	ID           string     `json:"id"`
	Media        MediaRef   `json:"media"`
	ContentType  string     `json:"content_type,omitempty"`
	CapturedAt   time.Time  `json:"captured_at"`
	UploadedAt   *time.Time `json:"uploaded_at,omitempty"`
	UploaderID   string     `json:"uploader_id,omitempty"`
	UploaderRole Role       `json:"uploader_role,omitempty"`
	Location     *Location  `json:"location,omitempty"`
}

// AttributedRole treats records without an uploader as the renter's.
func (e EvidenceRecord) AttributedRole() Role {
	if e.UploaderID == "" || e.UploaderRole == "" {
		return RoleRenter
	}
	return e.UploaderRole
}

// AttributedUploader resolves the user allowed to delete the record.
func (e EvidenceRecord) AttributedUploader(b *Booking) string {
	if e.UploaderID == "" {
		return b.RenterID
	}
	return e.UploaderID
}

func (e EvidenceRecord) MarkDurable(url string, at time.Time) EvidenceRecord {
	e.Media = DurableMedia(url)
	e.UploadedAt = &at
	return e
}

const (
	PickupMinRenterEvidence = 3
	PickupMaxEvidence       = 8
	ReturnMinEvidence       = 2
	ReturnMaxEvidence       = 10
)

func MaxEvidence(c Checkpoint) int {
	if c == CheckpointReturn {
		return ReturnMaxEvidence
	}
	return PickupMaxEvidence
}
