package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

func payoutService(c *gin.Context) services.PayoutService {
	return services.PayoutService{
		PayoutRepo: repositories.PayoutRepository{},
		UserRepo:   repositories.UserRepository{},
		Dispatcher: requestDispatcher(c),
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/payouts
func RequestPayout(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.Role != domain.RoleTeacher {
		respondError(c, http.StatusForbidden, "forbidden", "only teachers request payouts", nil)
		return
	}

	var in services.RequestInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := payoutService(c).Request(int64(actor.UserID), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payout": p})
}

type processPayoutRequest struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// POST /api/payouts/:id/process
func ProcessPayout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in processPayoutRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := payoutService(c).Process(id, in.Status, in.Reference, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payout": p})
}

type restrictionRequest struct {
	TeacherID int64 `json:"teacher_id"`
}

// POST /api/payouts/restriction
//
// Gateway restriction callback relay; admin only.
func FlagPayoutRestriction(c *gin.Context) {
	var in restrictionRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if in.TeacherID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "teacher_id required", nil)
		return
	}
	payoutService(c).FlagRestriction(in.TeacherID)
	c.JSON(http.StatusOK, gin.H{"message": "restriction flagged"})
}

// GET /api/teachers/:id/payouts
func ListTeacherPayouts(c *gin.Context) {
	teacherID, ok := pathID(c, "id")
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	if actor.Role != domain.RoleAdmin && int64(actor.UserID) != teacherID {
		respondError(c, http.StatusForbidden, "forbidden", "cannot view another teacher's payouts", nil)
		return
	}

	list, err := payoutService(c).ListByTeacher(teacherID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": list})
}
