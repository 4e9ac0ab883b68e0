package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type memMedia map[string][]byte

func (m memMedia) Read(handle string) ([]byte, error) {
	b, ok := m[handle]
	if !ok {
		return nil, errors.New("no such capture")
	}
	return b, nil
}

type attempt struct {
	transport, bucket, key string
}

// scriptedTransport fails for every bucket listed in failOn and records each call.
type scriptedTransport struct {
	name   string
	failOn map[string]bool
	calls  *[]attempt
}

func (s scriptedTransport) Name() string { return s.name }

func (s scriptedTransport) Put(_ context.Context, bucket, key string, _ []byte, _ string) error {
	*s.calls = append(*s.calls, attempt{s.name, bucket, key})
	if s.failOn[bucket] {
		return errors.New("boom")
	}
	return nil
}

var (
	primary  = Target{Name: "primary", Bucket: "evidence", PublicURL: "https://cdn.example.com/"}
	fallback = Target{Name: "fallback", Bucket: "evidence-dr", PublicURL: "https://dr.example.com"}
)

func request() domain.UploadRequest {
	return domain.UploadRequest{
		BookingID: "b1",
		ActorID:   "u1",
		AttemptAt: time.UnixMilli(1700000000000),
		Seq:       2,
		Record: domain.EvidenceRecord{
			ID:    "e1",
			Media: domain.PendingMedia("h1"),
		},
	}
}

func newAdapter(t *testing.T, calls *[]attempt, sdkFails, presignFails map[string]bool) *Adapter {
	t.Helper()
	a, err := NewAdapter(
		memMedia{"h1": []byte("img")},
		[]Transport{
			scriptedTransport{name: "sdk", failOn: sdkFails, calls: calls},
			scriptedTransport{name: "presigned", failOn: presignFails, calls: calls},
		},
		[]Target{primary, fallback},
		newTestLogger(t),
	)
	require.NoError(t, err)
	return a
}

func TestObjectKey_Deterministic(t *testing.T) {
	assert.Equal(t, "bookings/b1/u1_1700000000000_2.jpg", ObjectKey(request()))

	req := request()
	req.Record.ContentType = "image/png"
	assert.Equal(t, "bookings/b1/u1_1700000000000_2.png", ObjectKey(req))
}

func TestAdapter_Upload_PrimarySucceeds(t *testing.T) {
	var calls []attempt
	a := newAdapter(t, &calls, nil, nil)

	url, err := a.Upload(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/bookings/b1/u1_1700000000000_2.jpg", url)
	assert.Equal(t, []attempt{{"sdk", "evidence", "bookings/b1/u1_1700000000000_2.jpg"}}, calls)
}

func TestAdapter_Upload_SecondaryTransport(t *testing.T) {
	var calls []attempt
	a := newAdapter(t, &calls, map[string]bool{"evidence": true}, nil)

	url, err := a.Upload(context.Background(), request())

	require.NoError(t, err)
	assert.Contains(t, url, "https://cdn.example.com/")
	require.Len(t, calls, 2)
	assert.Equal(t, "presigned", calls[1].transport)
	assert.Equal(t, "evidence", calls[1].bucket)
}

func TestAdapter_Upload_FallbackTargetOrder(t *testing.T) {
	var calls []attempt
	down := map[string]bool{"evidence": true, "evidence-dr": true}
	a := newAdapter(t, &calls, down, map[string]bool{"evidence": true})

	url, err := a.Upload(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, "https://dr.example.com/bookings/b1/u1_1700000000000_2.jpg", url)

	var order []string
	for _, c := range calls {
		order = append(order, c.transport+"@"+c.bucket)
	}
	assert.Equal(t, []string{"sdk@evidence", "presigned@evidence", "sdk@evidence-dr", "presigned@evidence-dr"}, order)
}

func TestAdapter_Upload_TerminalFailure(t *testing.T) {
	var calls []attempt
	down := map[string]bool{"evidence": true, "evidence-dr": true}
	a := newAdapter(t, &calls, down, down)

	_, err := a.Upload(context.Background(), request())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Len(t, calls, 4)
}

func TestAdapter_Upload_DurablePassesThrough(t *testing.T) {
	var calls []attempt
	a := newAdapter(t, &calls, nil, nil)

	req := request()
	req.Record.Media = domain.DurableMedia("https://cdn.example.com/already.jpg")
	url, err := a.Upload(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/already.jpg", url)
	assert.Empty(t, calls)
}

func TestAdapter_Upload_MissingCapture(t *testing.T) {
	var calls []attempt
	a := newAdapter(t, &calls, nil, nil)

	req := request()
	req.Record.Media = domain.PendingMedia("gone")
	_, err := a.Upload(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Empty(t, calls)
}

func TestNewAdapter_RequiresTransportAndTarget(t *testing.T) {
	_, err := NewAdapter(memMedia{}, nil, []Target{primary}, newTestLogger(t))
	assert.Error(t, err)
}
