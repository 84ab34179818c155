package services

import (
	"fmt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// AccountService handles admin moderation of user accounts.
type AccountService struct {
	UserRepo   repositories.UserRepository
	Dispatcher notify.Dispatcher
	RequestID  string
}

// SetStatus suspends, reinstates or deletes an account and notifies the
// user. The notification goes out after the mutation; a mail failure
// never reverts the status change.
func (s AccountService) SetStatus(userID int64, status string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.PolicyError{Actor: string(actor.Role), Action: "moderate accounts"}
	}

	var eventType notify.EventType
	switch status {
	case "suspended":
		eventType = notify.AccountSuspended
	case "active":
		eventType = notify.AccountUnsuspended
	case "deleted":
		eventType = notify.AccountDeleted
	default:
		return domain.ValidationError{Field: "status", Msg: "unknown account status"}
	}

	// Capture contact details before a delete wipes access to them.
	rec := s.recipient(userID)

	if err := s.UserRepo.SetStatus(userID, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "account", "set_status",
		fmt.Sprintf("user_id=%d status=%s", userID, status))

	s.Dispatcher.Dispatch(notify.Event{
		Type:       eventType,
		Recipients: []notify.Recipient{rec},
	})
	return nil
}

func (s AccountService) recipient(userID int64) notify.Recipient {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "account", "recipients",
			fmt.Sprintf("user %d lookup failed: %v", userID, err))
		return notify.Recipient{UserID: userID}
	}
	return notify.Recipient{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
