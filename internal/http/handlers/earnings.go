package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

func earningsService(c *gin.Context) services.EarningsService {
	return services.EarningsService{
		RateRepo:    repositories.RateRepository{},
		SessionRepo: repositories.SessionRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/teachers/:id/earnings/upcoming
func GetUpcomingEarnings(c *gin.Context) {
	teacherID, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := earningsService(c).Upcoming(teacherID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/teachers/:id/earnings/statement.pdf
func GetEarningsStatementPDF(c *gin.Context) {
	teacherID, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		UserRepo:    repositories.UserRepository{},
		Earnings:    earningsService(c),
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateStatement(teacherID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/bookings/:id/invoice.pdf
func GetBookingInvoicePDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		UserRepo:    repositories.UserRepository{},
		Earnings:    earningsService(c),
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
