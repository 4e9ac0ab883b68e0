package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ResolveDispute(c *ginext.Context)
	CapturePhoto(c *ginext.Context)
	ListCaptures(c *ginext.Context)
	RemoveEvidence(c *ginext.Context)
	SubmitCheckpoint(c *ginext.Context)
	GetMe(c *ginext.Context)
	GetCounterpart(c *ginext.Context)
	LiveBooking(c *ginext.Context)
	LiveBookings(c *ginext.Context)
}

// InitRouter mounts the API behind auth; mw applies to every route, /health included.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", auth)
	{
		// Bookings
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/resolve", h.ResolveDispute)
		api.GET("/bookings/:id/counterpart", h.GetCounterpart)

		// Checkpoints
		cp := api.Group("/bookings/:id/checkpoints/:checkpoint")
		cp.POST("/captures", h.CapturePhoto)
		cp.GET("/captures", h.ListCaptures)
		cp.DELETE("/evidence/:evidence_id", h.RemoveEvidence)
		cp.POST("/submit", h.SubmitCheckpoint)

		// Users
		api.GET("/me", h.GetMe)

		// Live updates
		api.GET("/bookings/:id/live", h.LiveBooking)
		api.GET("/live", h.LiveBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
