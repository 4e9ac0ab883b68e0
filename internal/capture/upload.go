package capture

import (
	"context"
	"io"
	"time"
)

// UploadedPhoto adapts a photo sent by a client device, with the position it reported.
type UploadedPhoto struct {
	Body        io.Reader
	ContentType string
	TakenAt     time.Time
	Lat, Lng    *float64
}

func (u UploadedPhoto) TakePhoto(context.Context) (Photo, error) {
	return Photo{Data: u.Body, ContentType: u.ContentType, TakenAt: u.TakenAt}, nil
}

func (u UploadedPhoto) Locate(context.Context) (float64, float64, bool) {
	if u.Lat == nil || u.Lng == nil {
		return 0, 0, false
	}
	return *u.Lat, *u.Lng, true
}
