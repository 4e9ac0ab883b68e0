package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, listing_id, owner_id, renter_id, start_date, end_date, status,
	pickup_images, pickup_confirmed_by_renter, pickup_confirmed_by_renter_at,
	pickup_confirmed_by_owner, pickup_confirmed_by_owner_at,
	return_images, return_confirmed_by_renter, return_confirmed_by_renter_at,
	return_confirmed_by_owner, return_confirmed_by_owner_at,
	damage_report, damage_reported_by, damage_reported_at, owner_notes,
	confirmed_at, started_at, disputed_at, completed_at, cancelled_at, cancellation_reason,
	created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE owner_id = $1 OR renter_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

// ListStalled returns bookings whose open checkpoint is confirmed by both parties.
func (r *BookingRepository) ListStalled(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE (status = $1 AND pickup_confirmed_by_renter AND pickup_confirmed_by_owner)
			     OR (status = $2 AND return_confirmed_by_renter AND return_confirmed_by_owner)
			  ORDER BY updated_at`

	return r.list(ctx, query, domain.BookingStatusConfirmed, domain.BookingStatusInProgress)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// UpdateStatus commits t only if the row is still in t.From and the condition-report
// state matches t.Guard.
func (r *BookingRepository) UpdateStatus(ctx context.Context, t domain.Transition) error {
	query := `UPDATE bookings
			  SET status = $3::text,
			      updated_at = $4::timestamptz,
			      confirmed_at = CASE WHEN $3::text = 'confirmed' THEN $4::timestamptz ELSE confirmed_at END,
			      started_at = CASE WHEN $3::text = 'in_progress' THEN $4::timestamptz ELSE started_at END,
			      disputed_at = CASE WHEN $3::text = 'disputed' THEN $4::timestamptz ELSE disputed_at END,
			      completed_at = CASE WHEN $3::text = 'completed' THEN $4::timestamptz ELSE completed_at END,
			      cancelled_at = CASE WHEN $3::text = 'cancelled' THEN $4::timestamptz ELSE cancelled_at END,
			      cancellation_reason = CASE WHEN $3::text = 'cancelled' THEN $5::text ELSE cancellation_reason END
			  WHERE id = $1 AND status = $2` + reportGuardClause(t.Guard)

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		t.BookingID, t.From, t.To, t.At, t.Reason,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return r.missOrLost(ctx, t.BookingID)
	}

	return nil
}

func reportGuardClause(g domain.ReportGuard) string {
	switch g {
	case domain.ReportGuardAbsent:
		return ` AND damage_report = '' AND owner_notes = ''`
	case domain.ReportGuardPresent:
		return ` AND (damage_report <> '' OR owner_notes <> '')`
	}
	return ""
}

func (r *BookingRepository) missOrLost(ctx context.Context, id string) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("scan booking existence: %w", err)
	}
	if !exists {
		return domain.ErrBookingNotFound
	}
	return domain.ErrConcurrentTransitionLost
}

// ConfirmCheckpoint appends the submitted evidence, sets the submitter's flag and routes the
// condition report while the row is locked in the checkpoint's open status. The evidence cap is
// checked again under the lock, so concurrent submitters cannot overshoot it together.
func (r *BookingRepository) ConfirmCheckpoint(ctx context.Context, s domain.CheckpointSubmission) error {
	cols, ok := checkpointColumnSet[s.Checkpoint]
	if !ok {
		return fmt.Errorf("%w: unknown checkpoint %q", domain.ErrValidation, s.Checkpoint)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	existing, err := lockCheckpoint(ctx, tx, s.BookingID, s.Checkpoint, cols)
	if err != nil {
		return err
	}

	merged, err := appendEvidence(s.Checkpoint, existing, s.Evidence)
	if err != nil {
		return err
	}

	images, err := encodeEvidence(merged)
	if err != nil {
		return err
	}

	flag, flagAt := cols.flag(s.Role)
	query := fmt.Sprintf(`UPDATE bookings
			  SET %s = $2, %s = true, %s = $3, updated_at = $3
			  WHERE id = $1`, cols.images, flag, flagAt)
	if _, err = tx.ExecContext(ctx, query, s.BookingID, images, s.At); err != nil {
		return fmt.Errorf("confirm checkpoint: %w", err)
	}

	if s.ConditionReport != "" {
		if s.Role == domain.RoleRenter {
			query = `UPDATE bookings
					 SET damage_report = $2, damage_reported_by = $3, damage_reported_at = $4
					 WHERE id = $1`
			_, err = tx.ExecContext(ctx, query, s.BookingID, s.ConditionReport, s.ActorID, s.At)
		} else {
			query = `UPDATE bookings SET owner_notes = $2 WHERE id = $1`
			_, err = tx.ExecContext(ctx, query, s.BookingID, s.ConditionReport)
		}
		if err != nil {
			return fmt.Errorf("record condition report: %w", err)
		}
	}

	return tx.Commit()
}

// RemoveEvidence drops one record and clears the uploader's confirmation of that checkpoint.
func (r *BookingRepository) RemoveEvidence(ctx context.Context, rm domain.EvidenceRemoval) error {
	cols, ok := checkpointColumnSet[rm.Checkpoint]
	if !ok {
		return fmt.Errorf("%w: unknown checkpoint %q", domain.ErrValidation, rm.Checkpoint)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	existing, err := lockCheckpoint(ctx, tx, rm.BookingID, rm.Checkpoint, cols)
	if err != nil {
		return err
	}

	kept, removed := withoutEvidence(existing, rm.EvidenceID)
	if !removed {
		return domain.ErrEvidenceNotFound
	}

	images, err := encodeEvidence(kept)
	if err != nil {
		return err
	}

	flag, flagAt := cols.flag(rm.Role)
	query := fmt.Sprintf(`UPDATE bookings
			  SET %s = $2, %s = false, %s = NULL, updated_at = now()
			  WHERE id = $1`, cols.images, flag, flagAt)
	if _, err = tx.ExecContext(ctx, query, rm.BookingID, images); err != nil {
		return fmt.Errorf("remove evidence: %w", err)
	}

	return tx.Commit()
}

func lockCheckpoint(
	ctx context.Context,
	tx *sql.Tx,
	bookingID string,
	cp domain.Checkpoint,
	cols checkpointColumns,
) ([]domain.EvidenceRecord, error) {
	query := fmt.Sprintf(`SELECT status, %s FROM bookings WHERE id = $1 FOR UPDATE`, cols.images)

	var (
		status domain.BookingStatus
		raw    []byte
	)
	if err := tx.QueryRowContext(ctx, query, bookingID).Scan(&status, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if status != cp.OpenStatus() {
		return nil, domain.ErrConcurrentTransitionLost
	}

	return decodeEvidence(raw)
}

type checkpointColumns struct {
	images   string
	renter   string
	renterAt string
	owner    string
	ownerAt  string
}

func (c checkpointColumns) flag(role domain.Role) (string, string) {
	if role == domain.RoleOwner {
		return c.owner, c.ownerAt
	}
	return c.renter, c.renterAt
}

// checkpointColumnSet is the only source of column names interpolated into queries.
var checkpointColumnSet = map[domain.Checkpoint]checkpointColumns{
	domain.CheckpointPickup: {
		images:   "pickup_images",
		renter:   "pickup_confirmed_by_renter",
		renterAt: "pickup_confirmed_by_renter_at",
		owner:    "pickup_confirmed_by_owner",
		ownerAt:  "pickup_confirmed_by_owner_at",
	},
	domain.CheckpointReturn: {
		images:   "return_images",
		renter:   "return_confirmed_by_renter",
		renterAt: "return_confirmed_by_renter_at",
		owner:    "return_confirmed_by_owner",
		ownerAt:  "return_confirmed_by_owner_at",
	},
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                          domain.Booking
		pickupImages, returnImages []byte
		pickupRenterAt             sql.NullTime
		pickupOwnerAt              sql.NullTime
		returnRenterAt             sql.NullTime
		returnOwnerAt              sql.NullTime
		damageReportedBy           sql.NullString
		damageReportedAt           sql.NullTime
		confirmedAt, startedAt     sql.NullTime
		disputedAt, completedAt    sql.NullTime
		cancelledAt                sql.NullTime
	)

	err := row.Scan(
		&b.ID, &b.ListingID, &b.OwnerID, &b.RenterID, &b.StartDate, &b.EndDate, &b.Status,
		&pickupImages, &b.Pickup.ConfirmedByRenter.Confirmed, &pickupRenterAt,
		&b.Pickup.ConfirmedByOwner.Confirmed, &pickupOwnerAt,
		&returnImages, &b.Return.ConfirmedByRenter.Confirmed, &returnRenterAt,
		&b.Return.ConfirmedByOwner.Confirmed, &returnOwnerAt,
		&b.DamageReport.Text, &damageReportedBy, &damageReportedAt, &b.OwnerNotes,
		&confirmedAt, &startedAt, &disputedAt, &completedAt, &cancelledAt, &b.CancellationReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if b.Pickup.Evidence, err = decodeEvidence(pickupImages); err != nil {
		return nil, err
	}
	if b.Return.Evidence, err = decodeEvidence(returnImages); err != nil {
		return nil, err
	}

	b.Pickup.ConfirmedByRenter.At = timePtr(pickupRenterAt)
	b.Pickup.ConfirmedByOwner.At = timePtr(pickupOwnerAt)
	b.Return.ConfirmedByRenter.At = timePtr(returnRenterAt)
	b.Return.ConfirmedByOwner.At = timePtr(returnOwnerAt)
	b.DamageReport.ReportedBy = damageReportedBy.String
	b.DamageReport.ReportedAt = timePtr(damageReportedAt)
	b.ConfirmedAt = timePtr(confirmedAt)
	b.StartedAt = timePtr(startedAt)
	b.DisputedAt = timePtr(disputedAt)
	b.CompletedAt = timePtr(completedAt)
	b.CancelledAt = timePtr(cancelledAt)

	return &b, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
