package capture

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const defaultContentType = "image/jpeg"

type Photo struct {
	Data        io.Reader
	ContentType string
	TakenAt     time.Time
}

// Camera is the device capability producing a single photo.
type Camera interface {
	TakePhoto(ctx context.Context) (Photo, error)
}

// Locator is optionally implemented by a Camera that can geotag its photos.
type Locator interface {
	Locate(ctx context.Context) (lat, lng float64, ok bool)
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// Capturer turns a photo into a pending evidence record backed by a spool file.
type Capturer struct {
	spool    *Spool
	geocoder Geocoder
	logger   logger.Logger
	now      func() time.Time
}

func NewCapturer(spool *Spool, geocoder Geocoder, logger logger.Logger) *Capturer {
	return &Capturer{
		spool:    spool,
		geocoder: geocoder,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (c *Capturer) Capture(ctx context.Context, cam Camera, uploaderID string, role domain.Role) (domain.EvidenceRecord, error) {
	photo, err := cam.TakePhoto(ctx)
	if err != nil {
		return domain.EvidenceRecord{}, fmt.Errorf("take photo: %w", err)
	}

	handle, err := c.spool.Save(photo.Data)
	if err != nil {
		return domain.EvidenceRecord{}, fmt.Errorf("spool photo: %w", err)
	}

	capturedAt := photo.TakenAt
	if capturedAt.IsZero() {
		capturedAt = c.now()
	}
	contentType := photo.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	rec := domain.EvidenceRecord{
		ID:           uuid.New().String(),
		Media:        domain.PendingMedia(handle),
		ContentType:  contentType,
		CapturedAt:   capturedAt.UTC(),
		UploaderID:   uploaderID,
		UploaderRole: role,
		Location:     c.locate(ctx, cam),
	}

	return rec, nil
}

// locate is best effort: a photo without a position is still valid evidence.
func (c *Capturer) locate(ctx context.Context, cam Camera) *domain.Location {
	loc, ok := cam.(Locator)
	if !ok {
		return nil
	}
	lat, lng, ok := loc.Locate(ctx)
	if !ok {
		return nil
	}

	res := &domain.Location{Lat: lat, Lng: lng}
	if c.geocoder == nil {
		return res
	}

	addr, err := c.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		c.logger.Warn("reverse geocoding failed",
			logger.Any("lat", lat),
			logger.Any("lng", lng),
			logger.String("error", err.Error()),
		)
		return res
	}
	res.Address = addr

	return res
}

func (c *Capturer) Discard(handle string) error {
	return c.spool.Remove(handle)
}
