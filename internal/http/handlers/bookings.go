package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{},
		HistoryRepo: repositories.HistoryRepository{},
		SessionRepo: repositories.SessionRepository{},
		UserRepo:    repositories.UserRepository{},
		Dispatcher:  requestDispatcher(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var in services.CreateBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := bookingService(c).Create(in, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// GET /api/bookings?teacher_id=&student_id=&status=
func ListBookings(c *gin.Context) {
	var f repositories.BookingFilter
	if v := c.Query("teacher_id"); v != "" {
		f.TeacherID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.Query("student_id"); v != "" {
		f.StudentID, _ = strconv.ParseInt(v, 10, 64)
	}
	f.Status = c.Query("status")

	list, err := bookingService(c).List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := bookingService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings/:id/approve
func ApproveBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := bookingService(c).Approve(id, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := bookingService(c).Cancel(id, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings/:id/reschedule
func RescheduleBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.RescheduleInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := bookingService(c).Reschedule(id, in, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings/:id/resubmit
func ResubmitBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := bookingService(c).Resubmit(id, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings/:id/complete
func CompleteBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := bookingService(c).Complete(id, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

type reassignRequest struct {
	TeacherID int64 `json:"teacher_id"`
}

// POST /api/bookings/:id/reassign
func ReassignBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in reassignRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := bookingService(c).Reassign(id, in.TeacherID, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
