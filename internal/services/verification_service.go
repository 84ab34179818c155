package services

import (
	"fmt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// VerificationService covers teacher onboarding: document review and
// the verification call.
type VerificationService struct {
	DocumentRepo     repositories.DocumentRepository
	VerificationRepo repositories.VerificationRepository
	UserRepo         repositories.UserRepository
	Dispatcher       notify.Dispatcher
	RequestID        string
}

// UploadInput registers an uploaded document's metadata; file storage
// itself is handled upstream.
type UploadInput struct {
	Type     string `json:"type"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}

func (s VerificationService) UploadDocument(teacherID int64, in UploadInput) (models.Document, error) {
	if utils.TrimOrEmpty(in.Type) == "" {
		return models.Document{}, domain.ValidationError{Field: "type", Msg: "required"}
	}
	if utils.TrimOrEmpty(in.FileName) == "" {
		return models.Document{}, domain.ValidationError{Field: "file_name", Msg: "required"}
	}

	d := models.Document{
		TeacherID: teacherID,
		Type:      in.Type,
		FileName:  in.FileName,
		FilePath:  in.FilePath,
		Status:    models.DocumentPending,
	}
	id, err := s.DocumentRepo.Create(d)
	if err != nil {
		return models.Document{}, err
	}
	d.ID = id

	ev := notify.Event{Type: notify.DocumentUploaded, Document: &d}
	teacher := s.recipient(teacherID)
	ev.TeacherName = teacher.Name
	ev.Recipients = append([]notify.Recipient{teacher}, s.adminRecipients()...)
	s.Dispatcher.Dispatch(ev)
	return d, nil
}

// ReviewDocument records an admin verdict and fans out the matching
// event to the document owner.
func (s VerificationService) ReviewDocument(id int64, verified bool, reason string, actor domain.Actor) (models.Document, error) {
	if actor.Role != domain.RoleAdmin {
		return models.Document{}, domain.PolicyError{Actor: string(actor.Role), Action: "review documents"}
	}

	d, err := s.DocumentRepo.GetByID(id)
	if err != nil {
		return models.Document{}, err
	}
	if d.Status != models.DocumentPending {
		return models.Document{}, domain.ConflictError{Resource: "document", Msg: "already reviewed"}
	}

	status := models.DocumentVerified
	eventType := notify.DocumentVerified
	if !verified {
		status = models.DocumentRejected
		eventType = notify.DocumentRejected
		if utils.TrimOrEmpty(reason) == "" {
			return models.Document{}, domain.ValidationError{Field: "reason", Msg: "required when rejecting"}
		}
	} else {
		reason = ""
	}

	if err := s.DocumentRepo.SetStatus(id, status, reason, int64(actor.UserID)); err != nil {
		return models.Document{}, err
	}
	d.Status = status
	d.Reason = reason

	s.Dispatcher.Dispatch(notify.Event{
		Type:       eventType,
		Document:   &d,
		Recipients: []notify.Recipient{s.recipient(d.TeacherID)},
	})
	return d, nil
}

func (s VerificationService) ListDocuments(teacherID int64) ([]models.Document, error) {
	return s.DocumentRepo.ListByTeacher(teacherID)
}

// RequestVerification opens (or returns) the teacher's verification
// request.
func (s VerificationService) RequestVerification(teacherID int64) (models.VerificationRequest, error) {
	if existing, err := s.VerificationRepo.GetByTeacher(teacherID); err == nil {
		return existing, nil
	} else if !domain.IsNotFound(err) {
		return models.VerificationRequest{}, err
	}
	id, err := s.VerificationRepo.Create(teacherID)
	if err != nil {
		return models.VerificationRequest{}, err
	}
	return s.VerificationRepo.GetByID(id)
}

// ScheduleCallInput sets the verification call slot.
type ScheduleCallInput struct {
	CallDate string `json:"call_date"`
	CallTime string `json:"call_time"`
	CallLink string `json:"call_link"`
}

func (s VerificationService) ScheduleCall(id int64, in ScheduleCallInput, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.PolicyError{Actor: string(actor.Role), Action: "schedule verification calls"}
	}
	if _, err := utils.ParseDate(in.CallDate); err != nil {
		return domain.ValidationError{Field: "call_date", Msg: "invalid date", Err: err}
	}
	if _, err := utils.ParseClock(in.CallTime); err != nil {
		return domain.ValidationError{Field: "call_time", Msg: "invalid time", Err: err}
	}

	v, err := s.VerificationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.VerificationRepo.ScheduleCall(id, in.CallDate, in.CallTime, in.CallLink); err != nil {
		return err
	}

	s.Dispatcher.Dispatch(notify.Event{
		Type:       notify.VerificationCallScheduled,
		Recipients: []notify.Recipient{s.recipient(v.TeacherID)},
	})
	return nil
}

// AdvanceCall moves the call through started -> completed, emitting the
// matching event at each step.
func (s VerificationService) AdvanceCall(id int64, callStatus string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.PolicyError{Actor: string(actor.Role), Action: "update verification calls"}
	}

	var eventType notify.EventType
	switch callStatus {
	case models.CallStarted:
		eventType = notify.VerificationCallStarted
	case models.CallCompleted:
		eventType = notify.VerificationCallCompleted
	default:
		return domain.ValidationError{Field: "call_status", Msg: "unknown call status"}
	}

	v, err := s.VerificationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.VerificationRepo.SetCallStatus(id, callStatus); err != nil {
		return err
	}

	s.Dispatcher.Dispatch(notify.Event{
		Type:       eventType,
		Recipients: []notify.Recipient{s.recipient(v.TeacherID)},
	})
	return nil
}

// Review finalizes the verification with an approve/reject decision.
func (s VerificationService) Review(id int64, approved bool, reason string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.PolicyError{Actor: string(actor.Role), Action: "review verifications"}
	}

	v, err := s.VerificationRepo.GetByID(id)
	if err != nil {
		return err
	}

	status := "approved"
	eventType := notify.VerificationApproved
	if !approved {
		status = "rejected"
		eventType = notify.VerificationRejected
	}

	if err := s.VerificationRepo.Review(id, status, reason, int64(actor.UserID)); err != nil {
		return err
	}

	s.Dispatcher.Dispatch(notify.Event{
		Type:       eventType,
		Recipients: []notify.Recipient{s.recipient(v.TeacherID)},
	})
	return nil
}

func (s VerificationService) recipient(userID int64) notify.Recipient {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "verification", "recipients",
			fmt.Sprintf("user %d lookup failed: %v", userID, err))
		return notify.Recipient{UserID: userID, Role: "teacher"}
	}
	return notify.Recipient{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

func (s VerificationService) adminRecipients() []notify.Recipient {
	admins, err := s.UserRepo.ListAdmins()
	if err != nil {
		utils.LogEvent(s.RequestID, "verification", "recipients", "admin list failed: "+err.Error())
		return nil
	}
	out := make([]notify.Recipient, 0, len(admins))
	for _, a := range admins {
		out = append(out, notify.Recipient{UserID: a.ID, Role: a.Role, Name: a.Name, Email: a.Email, Phone: a.Phone})
	}
	return out
}
