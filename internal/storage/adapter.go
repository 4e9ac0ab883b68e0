package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Transport is one way of putting bytes into a bucket.
type Transport interface {
	Name() string
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

type Target struct {
	Name      string
	Bucket    string
	PublicURL string
}

func (t Target) URL(key string) string {
	return strings.TrimRight(t.PublicURL, "/") + "/" + key
}

type mediaReader interface {
	Read(handle string) ([]byte, error)
}

// Adapter persists captures. Each target is tried with every transport in order before
// falling back to the next target.
type Adapter struct {
	transports []Transport
	targets    []Target
	media      mediaReader
	logger     logger.Logger
	tracer     trace.Tracer
}

func NewAdapter(media mediaReader, transports []Transport, targets []Target, logger logger.Logger) (*Adapter, error) {
	if len(transports) == 0 || len(targets) == 0 {
		return nil, errors.New("storage adapter needs at least one transport and one target")
	}
	return &Adapter{
		transports: transports,
		targets:    targets,
		media:      media,
		logger:     logger,
		tracer:     otel.Tracer("github.com/stpnv0/RentalHandover/internal/storage"),
	}, nil
}

func (a *Adapter) Upload(ctx context.Context, req domain.UploadRequest) (string, error) {
	rec := req.Record
	if rec.Media.Durable() {
		return rec.Media.URL, nil
	}

	key := ObjectKey(req)
	ctx, span := a.tracer.Start(ctx, "storage.Upload", trace.WithAttributes(
		attribute.String("booking.id", req.BookingID),
		attribute.String("object.key", key),
	))
	defer span.End()

	body, err := a.media.Read(rec.Media.Handle)
	if err != nil {
		span.SetStatus(codes.Error, "read capture")
		return "", fmt.Errorf("%w: read capture %s: %w", domain.ErrUploadFailed, rec.ID, err)
	}

	var errs []error
	for _, target := range a.targets {
		for _, tr := range a.transports {
			if err = ctx.Err(); err != nil {
				errs = append(errs, err)
				return "", a.fail(span, key, errs)
			}

			err = tr.Put(ctx, target.Bucket, key, body, rec.ContentType)
			if err == nil {
				span.SetAttributes(
					attribute.String("storage.target", target.Name),
					attribute.String("storage.transport", tr.Name()),
				)
				return target.URL(key), nil
			}

			a.logger.Warn("evidence upload attempt failed",
				logger.String("key", key),
				logger.String("target", target.Name),
				logger.String("transport", tr.Name()),
				logger.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s/%s: %w", target.Name, tr.Name(), err))
		}
	}

	return "", a.fail(span, key, errs)
}

func (a *Adapter) fail(span trace.Span, key string, errs []error) error {
	span.SetStatus(codes.Error, "all upload attempts failed")
	a.logger.Error("evidence upload failed",
		logger.String("key", key),
		logger.Int("attempts", len(errs)),
	)
	return fmt.Errorf("%w: %s after %d attempts: %w", domain.ErrUploadFailed, key, len(errs), errors.Join(errs...))
}

// ObjectKey names an upload deterministically from booking, actor, attempt time and sequence.
func ObjectKey(req domain.UploadRequest) string {
	return fmt.Sprintf("bookings/%s/%s_%d_%d%s",
		req.BookingID, req.ActorID, req.AttemptAt.UnixMilli(), req.Seq, extension(req.Record.ContentType))
}

func extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ".jpg"
	}
}
