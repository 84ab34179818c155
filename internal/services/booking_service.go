package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// BookingService drives the booking lifecycle. Every status change goes
// through the transition table, writes an audit row, and fans out its
// notification event. Notification failures never roll back the
// underlying mutation.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	HistoryRepo repositories.HistoryRepository
	SessionRepo repositories.SessionRepository
	UserRepo    repositories.UserRepository
	Dispatcher  notify.Dispatcher
	RequestID   string
}

// CreateBookingInput is the POST /bookings payload.
type CreateBookingInput struct {
	StudentID   int64   `json:"student_id"`
	TeacherID   int64   `json:"teacher_id"`
	SubjectID   int64   `json:"subject_id"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Fee         float64 `json:"fee"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes"`
}

func (in CreateBookingInput) validate() error {
	if in.StudentID <= 0 {
		return domain.ValidationError{Field: "student_id", Msg: "required"}
	}
	if in.TeacherID <= 0 {
		return domain.ValidationError{Field: "teacher_id", Msg: "required"}
	}
	if _, err := utils.ParseDate(in.BookingDate); err != nil {
		return domain.ValidationError{Field: "booking_date", Msg: "invalid date", Err: err}
	}
	start, err := utils.ParseClock(in.StartTime)
	if err != nil {
		return domain.ValidationError{Field: "start_time", Msg: "invalid time", Err: err}
	}
	end, err := utils.ParseClock(in.EndTime)
	if err != nil {
		return domain.ValidationError{Field: "end_time", Msg: "invalid time", Err: err}
	}
	if !end.After(start) {
		return domain.ValidationError{Field: "end_time", Msg: "must be after start_time"}
	}
	return nil
}

// Create stores a pending booking and notifies teacher, student and
// admins.
func (s BookingService) Create(in CreateBookingInput, actor domain.Actor) (models.Booking, error) {
	if err := in.validate(); err != nil {
		return models.Booking{}, err
	}

	currency := strings.ToUpper(utils.TrimOrEmpty(in.Currency))
	if currency == "" {
		currency = "NGN"
	}

	b := models.Booking{
		UUID:        uuid.NewString(),
		StudentID:   in.StudentID,
		TeacherID:   in.TeacherID,
		SubjectID:   in.SubjectID,
		BookingDate: in.BookingDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Status:      domain.BookingPending,
		Fee:         in.Fee,
		Currency:    currency,
		Notes:       in.Notes,
		CreatedBy:   int64(actor.UserID),
	}
	id, err := s.BookingRepo.Create(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d", id))

	ev := s.eventFor(notify.BookingCreated, &b)
	ev.Recipients = append(s.partyRecipients(b), s.adminRecipients()...)
	s.Dispatcher.Dispatch(ev)
	return b, nil
}

// Approve moves pending -> approved, creates the teaching session and
// notifies both parties.
func (s BookingService) Approve(id int64, actor domain.Actor) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	next, err := domain.Transition(b.Status, domain.ActionApprove, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.applyTransition(&b, next, actor); err != nil {
		return models.Booking{}, err
	}

	if _, err := s.SessionRepo.Create(models.TeachingSession{
		BookingID:   b.ID,
		StudentID:   b.StudentID,
		TeacherID:   b.TeacherID,
		SubjectID:   b.SubjectID,
		SessionDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
	}); err != nil {
		// The approval already stands; session creation is retried by
		// support tooling.
		utils.LogEvent(s.RequestID, "booking", "approve", "session create failed: "+err.Error())
	}

	ev := s.eventFor(notify.BookingApproved, &b)
	ev.Recipients = s.partyRecipients(b)
	s.Dispatcher.Dispatch(ev)
	return b, nil
}

// Cancel is allowed from pending or approved, by admin, teacher or
// student.
func (s BookingService) Cancel(id int64, actor domain.Actor) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	next, err := domain.Transition(b.Status, domain.ActionCancel, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.applyTransition(&b, next, actor); err != nil {
		return models.Booking{}, err
	}

	ev := s.eventFor(notify.BookingCancelled, &b)
	ev.Recipients = s.partyRecipients(b)
	s.Dispatcher.Dispatch(ev)
	return b, nil
}

// RescheduleInput carries the new slot.
type RescheduleInput struct {
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// Reschedule moves an approved booking to a new slot. The old date and
// time are captured before the row is mutated so the notification can
// show the diff.
func (s BookingService) Reschedule(id int64, in RescheduleInput, actor domain.Actor) (models.Booking, error) {
	if _, err := utils.ParseDate(in.BookingDate); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "booking_date", Msg: "invalid date", Err: err}
	}
	start, err := utils.ParseClock(in.StartTime)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "start_time", Msg: "invalid time", Err: err}
	}
	end, err := utils.ParseClock(in.EndTime)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "end_time", Msg: "invalid time", Err: err}
	}
	if !end.After(start) {
		return models.Booking{}, domain.ValidationError{Field: "end_time", Msg: "must be after start_time"}
	}

	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	next, err := domain.Transition(b.Status, domain.ActionReschedule, actor)
	if err != nil {
		return models.Booking{}, err
	}

	oldDate, oldTime := b.BookingDate, b.StartTime

	if err := s.BookingRepo.UpdateSchedule(b.ID, in.BookingDate, in.StartTime, in.EndTime); err != nil {
		return models.Booking{}, err
	}
	s.recordHistory(b, next, actor)

	b.BookingDate, b.StartTime, b.EndTime = in.BookingDate, in.StartTime, in.EndTime
	b.Status = next

	ev := s.eventFor(notify.BookingRescheduled, &b)
	ev.OldDate, ev.OldTime = oldDate, oldTime
	ev.Recipients = s.partyRecipients(b)
	s.Dispatcher.Dispatch(ev)
	return b, nil
}

// Resubmit re-enters the approval queue after a reschedule.
func (s BookingService) Resubmit(id int64, actor domain.Actor) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	next, err := domain.Transition(b.Status, domain.ActionResubmit, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.applyTransition(&b, next, actor); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// Complete closes out a delivered session. No notification fires; the
// earnings view picks the session up from its own tables.
func (s BookingService) Complete(id int64, actor domain.Actor) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	next, err := domain.Transition(b.Status, domain.ActionComplete, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.applyTransition(&b, next, actor); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// Reassign swaps the teacher without changing status. Emits exactly
// three notification variants: assigned (new teacher), removed (old
// teacher) and student.
func (s BookingService) Reassign(id, newTeacherID int64, actor domain.Actor) (models.Booking, error) {
	if actor.Role != domain.RoleAdmin {
		return models.Booking{}, domain.PolicyError{Actor: string(actor.Role), Action: "reassign"}
	}
	if newTeacherID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "teacher_id", Msg: "required"}
	}

	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.TeacherID == newTeacherID {
		return models.Booking{}, domain.ValidationError{Field: "teacher_id", Msg: "booking already assigned to this teacher"}
	}

	oldTeacherID := b.TeacherID
	if err := s.BookingRepo.UpdateTeacher(b.ID, newTeacherID); err != nil {
		return models.Booking{}, err
	}
	b.TeacherID = newTeacherID
	utils.LogEvent(s.RequestID, "booking", "reassign",
		fmt.Sprintf("booking_id=%d teacher %d -> %d", b.ID, oldTeacherID, newTeacherID))

	ev := s.eventFor(notify.BookingReassigned, &b)
	ev.Recipients = []notify.Recipient{
		s.recipient(newTeacherID, notify.VariantAssigned),
		s.recipient(oldTeacherID, notify.VariantRemoved),
		s.recipient(b.StudentID, notify.VariantStudent),
	}
	s.Dispatcher.Dispatch(ev)
	return b, nil
}

func (s BookingService) Get(id int64) (models.Booking, error) {
	return s.BookingRepo.GetByID(id)
}

func (s BookingService) List(f repositories.BookingFilter) ([]models.Booking, error) {
	return s.BookingRepo.List(f)
}

// applyTransition persists the new status and its audit row.
func (s BookingService) applyTransition(b *models.Booking, next domain.BookingStatus, actor domain.Actor) error {
	if err := s.BookingRepo.UpdateStatus(b.ID, next); err != nil {
		return err
	}
	s.recordHistory(*b, next, actor)
	b.Status = next
	return nil
}

func (s BookingService) recordHistory(b models.Booking, next domain.BookingStatus, actor domain.Actor) {
	if err := s.HistoryRepo.Insert(models.BookingHistory{
		BookingID:  b.ID,
		FromStatus: string(b.Status),
		ToStatus:   string(next),
		ActorID:    int64(actor.UserID),
		ActorRole:  string(actor.Role),
	}); err != nil {
		utils.LogEvent(s.RequestID, "booking", "history", "audit insert failed: "+err.Error())
	}
}

// eventFor assembles the shared payload: subject label (with fallback)
// and party names for interpolation.
func (s BookingService) eventFor(t notify.EventType, b *models.Booking) notify.Event {
	ev := notify.Event{Type: t, Booking: b}

	name, err := s.UserRepo.SubjectName(b.SubjectID)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "subject", "label lookup failed: "+err.Error())
	}
	ev.SubjectName = name

	if teacher, err := s.UserRepo.GetByID(b.TeacherID); err == nil {
		ev.TeacherName = teacher.Name
	}
	if student, err := s.UserRepo.GetByID(b.StudentID); err == nil {
		ev.StudentName = student.Name
	}
	return ev
}

func (s BookingService) partyRecipients(b models.Booking) []notify.Recipient {
	return []notify.Recipient{
		s.recipient(b.TeacherID, ""),
		s.recipient(b.StudentID, ""),
	}
}

func (s BookingService) adminRecipients() []notify.Recipient {
	admins, err := s.UserRepo.ListAdmins()
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "recipients", "admin list failed: "+err.Error())
		return nil
	}
	out := make([]notify.Recipient, 0, len(admins))
	for _, a := range admins {
		out = append(out, notify.Recipient{UserID: a.ID, Role: a.Role, Name: a.Name, Email: a.Email, Phone: a.Phone})
	}
	return out
}

// recipient loads delivery details; an unknown user still gets a
// database record keyed by id.
func (s BookingService) recipient(userID int64, variant string) notify.Recipient {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "recipients",
			fmt.Sprintf("user %d lookup failed: %v", userID, err))
		return notify.Recipient{UserID: userID, Variant: variant}
	}
	return notify.Recipient{UserID: u.ID, Role: u.Role, Variant: variant, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
