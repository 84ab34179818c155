package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

var jwtSecret = []byte("change-me-in-production")

// SetJWTSecret installs the signing key from config.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, hash, err := repo.GetByEmailWithHash(utils.TrimOrEmpty(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "invalid_credentials", "email or password incorrect", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	if user.Status != "active" {
		respondError(c, http.StatusUnauthorized, "account_inactive", "account is not active", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "email or password incorrect", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_error", "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if utils.TrimOrEmpty(req.Name) == "" || utils.TrimOrEmpty(req.Email) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name and email are required", nil)
		return
	}
	if len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "validation_error", "password must be at least 8 characters", nil)
		return
	}
	role := utils.TrimOrEmpty(req.Role)
	if role == "" {
		role = string(domain.RoleStudent)
	}
	if role != string(domain.RoleStudent) && role != string(domain.RoleTeacher) {
		respondError(c, http.StatusBadRequest, "validation_error", "role must be student or teacher", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "hash_error", "failed to hash password", err)
		return
	}

	repo := repositories.UserRepository{}
	u := models.User{
		Name:   utils.NormalizeSpace(req.Name),
		Email:  utils.TrimOrEmpty(req.Email),
		Phone:  utils.TrimOrEmpty(req.Phone),
		Role:   role,
		Status: "active",
	}
	id, err := repo.Create(u, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	u.ID = id

	c.JSON(http.StatusCreated, gin.H{"user": u})
}
