package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

func messageService(c *gin.Context) services.MessageService {
	return services.MessageService{
		MessageRepo: repositories.MessageRepository{},
		UserRepo:    repositories.UserRepository{},
		Dispatcher:  requestDispatcher(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

type sendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Body       string `json:"body"`
}

// POST /api/messages
func SendMessage(c *gin.Context) {
	actor := middleware.GetActor(c)

	var in sendMessageRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	m, err := messageService(c).Send(int64(actor.UserID), in.ReceiverID, in.Body)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": m})
}

// GET /api/messages/:userId
func GetConversation(c *gin.Context) {
	otherID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	actor := middleware.GetActor(c)

	list, err := messageService(c).Conversation(int64(actor.UserID), otherID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}
