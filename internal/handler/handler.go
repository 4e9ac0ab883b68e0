package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RentalHandover/internal/capture"
	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/stpnv0/RentalHandover/internal/handler/dto"
	"github.com/stpnv0/RentalHandover/internal/middleware"
	"github.com/stpnv0/RentalHandover/internal/realtime"
	"github.com/wb-go/wbf/ginext"
)

const maxPhotoSize = 15 << 20

type BookingSvc interface {
	Get(ctx context.Context, id domain.Identity, bookingID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, id domain.Identity) ([]*domain.Booking, error)
	Approve(ctx context.Context, id domain.Identity, bookingID string) (*domain.Booking, error)
	Reject(ctx context.Context, id domain.Identity, bookingID, reason string) (*domain.Booking, error)
	Cancel(ctx context.Context, id domain.Identity, bookingID, reason string) (*domain.Booking, error)
	Resolve(ctx context.Context, id domain.Identity, bookingID string, complete bool, note string) (*domain.Booking, error)
}

type VerificationSvc interface {
	Capture(ctx context.Context, id domain.Identity, bookingID string, cp domain.Checkpoint, cam capture.Camera) (domain.EvidenceRecord, error)
	WorkingSet(id domain.Identity, bookingID string, cp domain.Checkpoint) []domain.EvidenceRecord
	Submit(ctx context.Context, id domain.Identity, in domain.SubmitInput) (*domain.SubmitResult, error)
	Remove(ctx context.Context, id domain.Identity, bookingID string, cp domain.Checkpoint, evidenceID string) error
}

type UserSvc interface {
	Me(ctx context.Context, id domain.Identity) (*domain.User, error)
	Counterpart(ctx context.Context, id domain.Identity, bookingID string) (*domain.User, error)
}

type LiveHub interface {
	Serve(w http.ResponseWriter, r *http.Request, f realtime.Filter) error
}

type Handler struct {
	bookingService      BookingSvc
	verificationService VerificationSvc
	userService         UserSvc
	live                LiveHub
}

func NewHandler(bookingService BookingSvc, verificationService VerificationSvc, userService UserSvc, live LiveHub) *Handler {
	return &Handler{
		bookingService:      bookingService,
		verificationService: verificationService,
		userService:         userService,
		live:                live,
	}
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return
	}

	b, err := h.bookingService.Get(c.Request.Context(), id, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return
	}

	b, err := h.bookingService.Approve(c.Request.Context(), id, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.withReason(c, h.bookingService.Reject)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.withReason(c, h.bookingService.Cancel)
}

func (h *Handler) withReason(
	c *ginext.Context,
	act func(ctx context.Context, id domain.Identity, bookingID, reason string) (*domain.Booking, error),
) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return
	}

	var req dto.ReasonRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	b, err := act(c.Request.Context(), id, bookingID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) ResolveDispute(c *ginext.Context) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return
	}

	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.bookingService.Resolve(c.Request.Context(), id, bookingID, req.Outcome == "complete", req.Note)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

// Checkpoints

func (h *Handler) CapturePhoto(c *ginext.Context) {
	id, bookingID, cp, ok := h.checkpointRequest(c)
	if !ok {
		return
	}

	var form dto.CaptureForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	takenAt := time.Now().UTC()
	if form.TakenAt != "" {
		t, err := time.Parse(time.RFC3339, form.TakenAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid taken_at format, expected RFC3339",
			})
			return
		}
		takenAt = t.UTC()
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "photo file is required"})
		return
	}
	if fh.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: fmt.Sprintf("photo exceeds %d bytes", maxPhotoSize),
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read photo"})
		return
	}
	defer f.Close()

	cam := capture.UploadedPhoto{
		Body:        f,
		ContentType: fh.Header.Get("Content-Type"),
		TakenAt:     takenAt,
		Lat:         form.Lat,
		Lng:         form.Lng,
	}

	rec, err := h.verificationService.Capture(c.Request.Context(), id, bookingID, cp, cam)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEvidenceResponse(rec))
}

func (h *Handler) ListCaptures(c *ginext.Context) {
	id, bookingID, cp, ok := h.checkpointRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToEvidenceResponses(h.verificationService.WorkingSet(id, bookingID, cp)))
}

func (h *Handler) RemoveEvidence(c *ginext.Context) {
	id, bookingID, cp, ok := h.checkpointRequest(c)
	if !ok {
		return
	}

	if err := h.verificationService.Remove(c.Request.Context(), id, bookingID, cp, c.Param("evidence_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) SubmitCheckpoint(c *ginext.Context) {
	id, bookingID, cp, ok := h.checkpointRequest(c)
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	res, err := h.verificationService.Submit(c.Request.Context(), id, domain.SubmitInput{
		BookingID:       bookingID,
		Checkpoint:      cp,
		ConditionReport: req.ConditionReport,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmitResponse(res))
}

// Users

func (h *Handler) GetMe(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	u, err := h.userService.Me(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

func (h *Handler) GetCounterpart(c *ginext.Context) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return
	}

	u, err := h.userService.Counterpart(c.Request.Context(), id, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Live updates

func (h *Handler) LiveBooking(c *ginext.Context) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return
	}

	if _, err := h.bookingService.Get(c.Request.Context(), id, bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	h.serveLive(c, realtime.Filter{BookingID: bookingID})
}

func (h *Handler) LiveBookings(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	h.serveLive(c, realtime.Filter{UserID: id.UserID})
}

func (h *Handler) serveLive(c *ginext.Context, f realtime.Filter) {
	if err := h.live.Serve(c.Writer, c.Request, f); err != nil {
		// The upgrader has already answered the client.
		c.Set("error", err.Error())
	}
}

func (h *Handler) identity(c *ginext.Context) (domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return domain.Identity{}, false
	}
	return id, true
}

func (h *Handler) bookingRequest(c *ginext.Context) (domain.Identity, string, bool) {
	id, ok := h.identity(c)
	if !ok {
		return domain.Identity{}, "", false
	}

	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return domain.Identity{}, "", false
	}

	return id, bookingID, true
}

func (h *Handler) checkpointRequest(c *ginext.Context) (domain.Identity, string, domain.Checkpoint, bool) {
	id, bookingID, ok := h.bookingRequest(c)
	if !ok {
		return domain.Identity{}, "", "", false
	}

	cp, err := domain.ParseCheckpoint(c.Param("checkpoint"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.Identity{}, "", "", false
	}

	return id, bookingID, cp, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEvidenceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientEvidence),
		errors.Is(err, domain.ErrEvidenceLimitExceeded):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
