package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	h "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/handlers"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Auth(env.JWTSecret)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		bookings := api.Group("/bookings", auth)
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/approve", h.ApproveBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.POST("/:id/reschedule", h.RescheduleBooking)
		bookings.POST("/:id/resubmit", h.ResubmitBooking)
		bookings.POST("/:id/complete", h.CompleteBooking)
		bookings.POST("/:id/reassign", adminOnly, h.ReassignBooking)
		bookings.GET("/:id/session", h.GetBookingSession)
		bookings.GET("/:id/invoice.pdf", h.GetBookingInvoicePDF)

		teachers := api.Group("/teachers", auth)
		teachers.GET("/:id/rates", h.GetRates)
		teachers.PUT("/:id/rates", h.PutRates)
		teachers.GET("/:id/earnings/upcoming", h.GetUpcomingEarnings)
		teachers.GET("/:id/earnings/statement.pdf", h.GetEarningsStatementPDF)
		teachers.GET("/:id/payouts", h.ListTeacherPayouts)
		teachers.GET("/:id/documents", h.ListTeacherDocuments)

		payouts := api.Group("/payouts", auth)
		payouts.POST("", h.RequestPayout)
		payouts.POST("/:id/process", adminOnly, h.ProcessPayout)
		payouts.POST("/restriction", adminOnly, h.FlagPayoutRestriction)

		documents := api.Group("/documents", auth)
		documents.POST("", h.UploadDocument)
		documents.POST("/:id/review", adminOnly, h.ReviewDocument)

		verification := api.Group("/verification/requests", auth)
		verification.POST("", h.RequestVerification)
		verification.POST("/:id/schedule-call", adminOnly, h.ScheduleVerificationCall)
		verification.POST("/:id/call-status", adminOnly, h.AdvanceVerificationCall)
		verification.POST("/:id/review", adminOnly, h.ReviewVerification)

		sessions := api.Group("/sessions", auth)
		sessions.PATCH("/:id/meeting", h.UpdateSessionMeeting)
		sessions.POST("/reminders/run", adminOnly, h.RunSessionReminders)
		sessions.POST("/requests", h.RequestExtraSession)

		notifications := api.Group("/notifications", auth)
		notifications.GET("", h.ListNotifications)
		notifications.POST("/:id/read", h.MarkNotificationRead)

		messages := api.Group("/messages", auth)
		messages.POST("", h.SendMessage)
		messages.GET("/:userId", h.GetConversation)

		users := api.Group("/users", auth)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id/status", adminOnly, h.SetAccountStatus)
	}

	h.SetRouter(r)
	return r
}
