package services

import (
	"fmt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// MessageService stores direct messages and notifies recipients.
type MessageService struct {
	MessageRepo repositories.MessageRepository
	UserRepo    repositories.UserRepository
	Dispatcher  notify.Dispatcher
	RequestID   string
}

func (s MessageService) Send(senderID, receiverID int64, body string) (repositories.Message, error) {
	body = utils.TrimOrEmpty(body)
	if body == "" {
		return repositories.Message{}, domain.ValidationError{Field: "body", Msg: "required"}
	}
	if receiverID <= 0 {
		return repositories.Message{}, domain.ValidationError{Field: "receiver_id", Msg: "required"}
	}

	m := repositories.Message{SenderID: senderID, ReceiverID: receiverID, Body: body}
	id, err := s.MessageRepo.Insert(m)
	if err != nil {
		return repositories.Message{}, err
	}
	m.ID = id

	sender := ""
	if u, err := s.UserRepo.GetByID(senderID); err == nil {
		sender = u.Name
	}

	s.Dispatcher.Dispatch(notify.Event{
		Type:       notify.MessageReceived,
		Message:    fmt.Sprintf("New message from %s.", sender),
		Recipients: []notify.Recipient{s.recipient(receiverID)},
	})
	return m, nil
}

func (s MessageService) Conversation(a, b int64) ([]repositories.Message, error) {
	return s.MessageRepo.ListConversation(a, b)
}

func (s MessageService) recipient(userID int64) notify.Recipient {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "message", "recipients",
			fmt.Sprintf("user %d lookup failed: %v", userID, err))
		return notify.Recipient{UserID: userID}
	}
	return notify.Recipient{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
