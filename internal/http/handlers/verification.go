package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/services"
)

func verificationService(c *gin.Context) services.VerificationService {
	return services.VerificationService{
		DocumentRepo:     repositories.DocumentRepository{},
		VerificationRepo: repositories.VerificationRepository{},
		UserRepo:         repositories.UserRepository{},
		Dispatcher:       requestDispatcher(c),
		RequestID:        middleware.GetRequestID(c),
	}
}

// POST /api/documents
func UploadDocument(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.Role != domain.RoleTeacher {
		respondError(c, http.StatusForbidden, "forbidden", "only teachers upload verification documents", nil)
		return
	}

	var in services.UploadInput
	if !BindJSONOrError(c, &in) {
		return
	}
	d, err := verificationService(c).UploadDocument(int64(actor.UserID), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": d})
}

// GET /api/teachers/:id/documents
func ListTeacherDocuments(c *gin.Context) {
	teacherID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := verificationService(c).ListDocuments(teacherID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": list})
}

type reviewDocumentRequest struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason"`
}

// POST /api/documents/:id/review
func ReviewDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in reviewDocumentRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	d, err := verificationService(c).ReviewDocument(id, in.Verified, in.Reason, middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": d})
}

// POST /api/verification/requests
func RequestVerification(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.Role != domain.RoleTeacher {
		respondError(c, http.StatusForbidden, "forbidden", "only teachers request verification", nil)
		return
	}
	vr, err := verificationService(c).RequestVerification(int64(actor.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"verification_request": vr})
}

// POST /api/verification/requests/:id/schedule-call
func ScheduleVerificationCall(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.ScheduleCallInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := verificationService(c).ScheduleCall(id, in, middleware.GetActor(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "call scheduled"})
}

type callStatusRequest struct {
	Status string `json:"status"`
}

// POST /api/verification/requests/:id/call-status
func AdvanceVerificationCall(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in callStatusRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := verificationService(c).AdvanceCall(id, in.Status, middleware.GetActor(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "call status updated"})
}

type reviewVerificationRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// POST /api/verification/requests/:id/review
func ReviewVerification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in reviewVerificationRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := verificationService(c).Review(id, in.Approved, in.Reason, middleware.GetActor(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification reviewed"})
}
