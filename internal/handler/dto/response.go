package dto

import (
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

type LocationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type EvidenceResponse struct {
	ID           string            `json:"id"`
	URL          string            `json:"url,omitempty"`
	Pending      bool              `json:"pending"`
	ContentType  string            `json:"content_type,omitempty"`
	UploadedBy   string            `json:"uploaded_by,omitempty"`
	UploaderRole string            `json:"uploader_role,omitempty"`
	CapturedAt   string            `json:"captured_at"`
	UploadedAt   string            `json:"uploaded_at,omitempty"`
	Location     *LocationResponse `json:"location,omitempty"`
}

type ConfirmationResponse struct {
	Confirmed bool   `json:"confirmed"`
	At        string `json:"at,omitempty"`
}

type CheckpointResponse struct {
	Evidence          []EvidenceResponse   `json:"evidence"`
	ConfirmedByRenter ConfirmationResponse `json:"confirmed_by_renter"`
	ConfirmedByOwner  ConfirmationResponse `json:"confirmed_by_owner"`
}

type BookingResponse struct {
	ID                 string             `json:"id"`
	ListingID          string             `json:"listing_id"`
	OwnerID            string             `json:"owner_id"`
	RenterID           string             `json:"renter_id"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	Status             string             `json:"status"`
	Pickup             CheckpointResponse `json:"pickup"`
	Return             CheckpointResponse `json:"return"`
	DamageReport       string             `json:"damage_report,omitempty"`
	DamageReportedBy   string             `json:"damage_reported_by,omitempty"`
	OwnerNotes         string             `json:"owner_notes,omitempty"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
	ConfirmedAt        string             `json:"confirmed_at,omitempty"`
	StartedAt          string             `json:"started_at,omitempty"`
	DisputedAt         string             `json:"disputed_at,omitempty"`
	CompletedAt        string             `json:"completed_at,omitempty"`
	CancelledAt        string             `json:"cancelled_at,omitempty"`
	CreatedAt          string             `json:"created_at"`
	UpdatedAt          string             `json:"updated_at"`
}

type SubmitResponse struct {
	Booking      BookingResponse `json:"booking"`
	Outcome      string          `json:"outcome"`
	Transitioned bool            `json:"transitioned"`
}

type UserResponse struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	TelegramLinked bool   `json:"telegram_linked"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		ListingID:          b.ListingID,
		OwnerID:            b.OwnerID,
		RenterID:           b.RenterID,
		StartDate:          b.StartDate.Format(time.RFC3339),
		EndDate:            b.EndDate.Format(time.RFC3339),
		Status:             string(b.Status),
		Pickup:             toCheckpointResponse(&b.Pickup),
		Return:             toCheckpointResponse(&b.Return),
		DamageReport:       b.DamageReport.Text,
		DamageReportedBy:   b.DamageReport.ReportedBy,
		OwnerNotes:         b.OwnerNotes,
		CancellationReason: b.CancellationReason,
		ConfirmedAt:        formatTime(b.ConfirmedAt),
		StartedAt:          formatTime(b.StartedAt),
		DisputedAt:         formatTime(b.DisputedAt),
		CompletedAt:        formatTime(b.CompletedAt),
		CancelledAt:        formatTime(b.CancelledAt),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToEvidenceResponse(e domain.EvidenceRecord) EvidenceResponse {
	resp := EvidenceResponse{
		ID:           e.ID,
		URL:          e.Media.URL,
		Pending:      !e.Media.Durable(),
		ContentType:  e.ContentType,
		UploadedBy:   e.UploaderID,
		UploaderRole: string(e.UploaderRole),
		CapturedAt:   e.CapturedAt.Format(time.RFC3339),
		UploadedAt:   formatTime(e.UploadedAt),
	}
	if e.Location != nil {
		resp.Location = &LocationResponse{Lat: e.Location.Lat, Lng: e.Location.Lng, Address: e.Location.Address}
	}
	return resp
}

func ToEvidenceResponses(records []domain.EvidenceRecord) []EvidenceResponse {
	resp := make([]EvidenceResponse, 0, len(records))
	for _, e := range records {
		resp = append(resp, ToEvidenceResponse(e))
	}
	return resp
}

func ToSubmitResponse(r *domain.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Booking:      ToBookingResponse(r.Booking),
		Outcome:      string(r.Outcome),
		Transitioned: r.Transitioned,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		DisplayName:    u.DisplayName,
		TelegramLinked: u.TelegramChatID != nil,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func toCheckpointResponse(c *domain.CheckpointState) CheckpointResponse {
	return CheckpointResponse{
		Evidence:          ToEvidenceResponses(c.Evidence),
		ConfirmedByRenter: ConfirmationResponse{Confirmed: c.ConfirmedByRenter.Confirmed, At: formatTime(c.ConfirmedByRenter.At)},
		ConfirmedByOwner:  ConfirmationResponse{Confirmed: c.ConfirmedByOwner.Confirmed, At: formatTime(c.ConfirmedByOwner.At)},
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
