package services

import (
	"fmt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// SessionService manages teaching sessions after approval: meeting
// metadata and the reminder sweep.
type SessionService struct {
	SessionRepo repositories.SessionRepository
	BookingRepo repositories.BookingRepository
	UserRepo    repositories.UserRepository
	Dispatcher  notify.Dispatcher
	RequestID   string
}

func (s SessionService) GetByBooking(bookingID int64) (models.TeachingSession, error) {
	return s.SessionRepo.GetByBookingID(bookingID)
}

// UpdateMeeting patches meeting metadata written back by the external
// meeting-creation collaborators (Zoom, Google Meet).
func (s SessionService) UpdateMeeting(sessionID int64, u models.MeetingUpdate, actor domain.Actor) error {
	if actor.Role == domain.RoleStudent {
		return domain.PolicyError{Actor: string(actor.Role), Action: "update meeting details"}
	}
	return s.SessionRepo.UpdateMeeting(sessionID, u)
}

// SendReminders sweeps today's unreminded sessions and mails both
// parties. Sessions stay unmarked when every delivery failed so the
// next sweep retries them.
func (s SessionService) SendReminders() (int, error) {
	due, err := s.SessionRepo.ListDueReminders()
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, session := range due {
		session := session
		ev := notify.Event{
			Type:    notify.SessionReminder,
			Session: &session,
			Recipients: []notify.Recipient{
				s.recipient(session.TeacherID),
				s.recipient(session.StudentID),
			},
		}
		if name, err := s.UserRepo.SubjectName(session.SubjectID); err == nil {
			ev.SubjectName = name
		}

		results := s.Dispatcher.Dispatch(ev)
		delivered := false
		for _, r := range results {
			if r.Err == nil {
				delivered = true
				break
			}
		}
		if !delivered {
			continue
		}
		if err := s.SessionRepo.MarkReminderSent(session.ID); err != nil {
			utils.LogEvent(s.RequestID, "session", "reminder",
				fmt.Sprintf("mark session %d failed: %v", session.ID, err))
		}
		sent++
	}
	return sent, nil
}

// RequestExtra relays a student's ad hoc session request to the teacher.
func (s SessionService) RequestExtra(studentID, teacherID, subjectID int64) error {
	if teacherID <= 0 {
		return domain.ValidationError{Field: "teacher_id", Msg: "required"}
	}

	ev := notify.Event{Type: notify.SessionRequest}
	if name, err := s.UserRepo.SubjectName(subjectID); err == nil {
		ev.SubjectName = name
	}
	if student, err := s.UserRepo.GetByID(studentID); err == nil {
		ev.StudentName = student.Name
	}
	ev.Recipients = []notify.Recipient{s.recipient(teacherID)}
	s.Dispatcher.Dispatch(ev)
	return nil
}

func (s SessionService) recipient(userID int64) notify.Recipient {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "session", "recipients",
			fmt.Sprintf("user %d lookup failed: %v", userID, err))
		return notify.Recipient{UserID: userID}
	}
	return notify.Recipient{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
