package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
)

// GET /api/teachers/:id/rates
func GetRates(c *gin.Context) {
	teacherID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rate, err := repositories.RateRepository{}.Get(teacherID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rate})
}

type rateRequest struct {
	RateUSD float64 `json:"rate_usd"`
	RateNGN float64 `json:"rate_ngn"`
}

// PUT /api/teachers/:id/rates
func PutRates(c *gin.Context) {
	teacherID, ok := pathID(c, "id")
	if !ok {
		return
	}

	// Teachers set their own rates; admins may set anyone's.
	actor := middleware.GetActor(c)
	if actor.Role != domain.RoleAdmin && int64(actor.UserID) != teacherID {
		respondError(c, http.StatusForbidden, "forbidden", "cannot set another teacher's rates", nil)
		return
	}

	var in rateRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if in.RateUSD < 0 || in.RateNGN < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "rates cannot be negative", nil)
		return
	}

	rate := models.HourlyRate{TeacherID: teacherID, RateUSD: in.RateUSD, RateNGN: in.RateNGN}
	if err := (repositories.RateRepository{}).Upsert(rate); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rate})
}
