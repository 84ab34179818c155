package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

type accountStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/users/:id/status
func SetAccountStatus(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in accountStatusRequest
	if !BindJSONOrError(c, &in) {
		return
	}

	svc := services.AccountService{
		UserRepo:   repositories.UserRepository{},
		Dispatcher: requestDispatcher(c),
		RequestID:  middleware.GetRequestID(c),
	}
	if err := svc.SetStatus(userID, in.Status, middleware.GetActor(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// GET /api/users/:id
func GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
