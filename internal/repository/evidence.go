package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

// evidenceJSON is one element of the pickup_images / return_images arrays. Rows written before
// uploader attribution existed have no uploaded_by and are treated as the renter's.
type evidenceJSON struct {
	ID           string           `json:"id"`
	URL          string           `json:"url"`
	UploadedBy   string           `json:"uploaded_by,omitempty"`
	UploaderRole domain.Role      `json:"uploader_role,omitempty"`
	UploadedAt   *time.Time       `json:"uploaded_at,omitempty"`
	CapturedAt   time.Time        `json:"captured_at"`
	ContentType  string           `json:"content_type,omitempty"`
	Location     *domain.Location `json:"location,omitempty"`
}

func decodeEvidence(raw []byte) ([]domain.EvidenceRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []evidenceJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode evidence: %w", err)
	}

	res := make([]domain.EvidenceRecord, 0, len(items))
	for _, it := range items {
		res = append(res, domain.EvidenceRecord{
			ID:           it.ID,
			Media:        domain.DurableMedia(it.URL),
			ContentType:  it.ContentType,
			CapturedAt:   it.CapturedAt,
			UploadedAt:   it.UploadedAt,
			UploaderID:   it.UploadedBy,
			UploaderRole: it.UploaderRole,
			Location:     it.Location,
		})
	}

	return res, nil
}

// encodeEvidence refuses records that are not durable: only public URLs reach the booking row.
func encodeEvidence(records []domain.EvidenceRecord) ([]byte, error) {
	items := make([]evidenceJSON, 0, len(records))
	for _, rec := range records {
		if !rec.Media.Durable() {
			return nil, fmt.Errorf("%w: evidence %s is not durable", domain.ErrValidation, rec.ID)
		}
		items = append(items, evidenceJSON{
			ID:           rec.ID,
			URL:          rec.Media.URL,
			UploadedBy:   rec.UploaderID,
			UploaderRole: rec.UploaderRole,
			UploadedAt:   rec.UploadedAt,
			CapturedAt:   rec.CapturedAt,
			ContentType:  rec.ContentType,
			Location:     rec.Location,
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode evidence: %w", err)
	}
	return raw, nil
}

// mergeEvidence appends added to existing, skipping ids already present.
func mergeEvidence(existing, added []domain.EvidenceRecord) []domain.EvidenceRecord {
	seen := make(map[string]struct{}, len(existing)+len(added))
	res := make([]domain.EvidenceRecord, 0, len(existing)+len(added))
	for _, rec := range existing {
		seen[rec.ID] = struct{}{}
		res = append(res, rec)
	}
	for _, rec := range added {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		res = append(res, rec)
	}
	return res
}

// appendEvidence merges added into existing and enforces the checkpoint's record cap
// against the locked row.
func appendEvidence(cp domain.Checkpoint, existing, added []domain.EvidenceRecord) ([]domain.EvidenceRecord, error) {
	merged := mergeEvidence(existing, added)
	if limit := domain.MaxEvidence(cp); len(merged) > limit {
		return nil, fmt.Errorf("%w: %s allows at most %d records, got %d",
			domain.ErrEvidenceLimitExceeded, cp, limit, len(merged))
	}
	return merged, nil
}

func withoutEvidence(records []domain.EvidenceRecord, id string) ([]domain.EvidenceRecord, bool) {
	res := make([]domain.EvidenceRecord, 0, len(records))
	removed := false
	for _, rec := range records {
		if rec.ID == id {
			removed = true
			continue
		}
		res = append(res, rec)
	}
	return res, removed
}
