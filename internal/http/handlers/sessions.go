package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

func sessionService(c *gin.Context) services.SessionService {
	return services.SessionService{
		SessionRepo: repositories.SessionRepository{},
		BookingRepo: repositories.BookingRepository{},
		UserRepo:    repositories.UserRepository{},
		Dispatcher:  requestDispatcher(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/bookings/:id/session
func GetBookingSession(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sess, err := sessionService(c).GetByBooking(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

type meetingRequest struct {
	Platform *string `json:"platform"`
	Link     *string `json:"link"`
	ID       *string `json:"meeting_id"`
	Password *string `json:"password"`
}

// PATCH /api/sessions/:id/meeting
func UpdateSessionMeeting(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in meetingRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	u := models.MeetingUpdate{
		Platform: in.Platform,
		Link:     in.Link,
		ID:       in.ID,
		Password: in.Password,
	}
	if err := sessionService(c).UpdateMeeting(id, u, middleware.GetActor(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meeting updated"})
}

// POST /api/sessions/reminders/run
//
// Sweeps today's sessions that have not been reminded yet. Exposed for
// the cron runner; admin only.
func RunSessionReminders(c *gin.Context) {
	count, err := sessionService(c).SendReminders()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminded": count})
}

type sessionRequestPayload struct {
	TeacherID int64 `json:"teacher_id"`
	SubjectID int64 `json:"subject_id"`
}

// POST /api/sessions/requests
func RequestExtraSession(c *gin.Context) {
	actor := middleware.GetActor(c)

	var in sessionRequestPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := sessionService(c).RequestExtra(int64(actor.UserID), in.TeacherID, in.SubjectID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "session request sent"})
}
