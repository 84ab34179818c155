package services

import (
	"fmt"
	"strings"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// PayoutService handles payout requests and gateway outcomes.
type PayoutService struct {
	PayoutRepo repositories.PayoutRepository
	UserRepo   repositories.UserRepository
	Dispatcher notify.Dispatcher
	RequestID  string
}

// RequestInput is the teacher's payout request.
type RequestInput struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
}

func (s PayoutService) Request(teacherID int64, in RequestInput) (models.PayoutRequest, error) {
	if in.Amount <= 0 {
		return models.PayoutRequest{}, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	currency := strings.ToUpper(utils.TrimOrEmpty(in.Currency))
	if currency != "USD" && currency != "NGN" {
		return models.PayoutRequest{}, domain.ValidationError{Field: "currency", Msg: "must be USD or NGN"}
	}
	method := utils.TrimOrEmpty(in.PaymentMethod)
	if method == "" {
		return models.PayoutRequest{}, domain.ValidationError{Field: "payment_method", Msg: "required"}
	}

	p := models.PayoutRequest{
		TeacherID:     teacherID,
		Amount:        in.Amount,
		Currency:      currency,
		PaymentMethod: method,
		Status:        models.PayoutPending,
	}
	id, err := s.PayoutRepo.Create(p)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	p.ID = id
	utils.LogEvent(s.RequestID, "payout", "request",
		fmt.Sprintf("payout_id=%d teacher_id=%d amount=%s", id, teacherID, utils.FormatAmount(in.Amount, currency)))
	return p, nil
}

// Process records a gateway outcome and notifies the teacher: an inbox
// record (database only) and an SMS, each its own logical event.
func (s PayoutService) Process(id int64, status, reference string, actor domain.Actor) (models.PayoutRequest, error) {
	if actor.Role != domain.RoleAdmin {
		return models.PayoutRequest{}, domain.PolicyError{Actor: string(actor.Role), Action: "process payout"}
	}
	switch status {
	case models.PayoutSuccess, models.PayoutFailed, models.PayoutRequiresManual:
	default:
		return models.PayoutRequest{}, domain.ValidationError{Field: "status", Msg: "unknown payout status"}
	}

	p, err := s.PayoutRepo.GetByID(id)
	if err != nil {
		return models.PayoutRequest{}, err
	}
	if p.Status != models.PayoutPending && p.Status != models.PayoutRequiresManual {
		return models.PayoutRequest{}, domain.ConflictError{Resource: "payout", Msg: "already processed"}
	}

	if err := s.PayoutRepo.UpdateStatus(id, status, reference); err != nil {
		return models.PayoutRequest{}, err
	}
	p.Status = status
	if reference != "" {
		p.Reference = reference
	}

	if status == models.PayoutSuccess {
		rec := s.teacherRecipient(p.TeacherID)
		s.Dispatcher.Dispatch(notify.Event{
			Type:       notify.PayoutProcessed,
			Payout:     &p,
			Recipients: []notify.Recipient{rec},
		})
		s.Dispatcher.Dispatch(notify.Event{
			Type:       notify.PayoutSMS,
			Payout:     &p,
			Recipients: []notify.Recipient{rec},
		})
	}
	return p, nil
}

// FlagRestriction relays a gateway restriction callback to the teacher.
func (s PayoutService) FlagRestriction(teacherID int64) {
	s.Dispatcher.Dispatch(notify.Event{
		Type:       notify.PaystackRestriction,
		Recipients: []notify.Recipient{s.teacherRecipient(teacherID)},
	})
}

func (s PayoutService) ListByTeacher(teacherID int64) ([]models.PayoutRequest, error) {
	return s.PayoutRepo.ListByTeacher(teacherID)
}

func (s PayoutService) teacherRecipient(teacherID int64) notify.Recipient {
	u, err := s.UserRepo.GetByID(teacherID)
	if err != nil {
		utils.LogEvent(s.RequestID, "payout", "recipients",
			fmt.Sprintf("teacher %d lookup failed: %v", teacherID, err))
		return notify.Recipient{UserID: teacherID, Role: "teacher"}
	}
	return notify.Recipient{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
