package ports

import (
	"context"

	"github.com/stpnv0/RentalHandover/internal/capture"
	"github.com/stpnv0/RentalHandover/internal/domain"
)

type EvidenceStore interface {
	Upload(ctx context.Context, req domain.UploadRequest) (string, error)
}

type EvidenceCapturer interface {
	Capture(ctx context.Context, cam capture.Camera, uploaderID string, role domain.Role) (domain.EvidenceRecord, error)
	Discard(handle string) error
}
