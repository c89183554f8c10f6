package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-registry-api/models"
	"vehicle-registry-api/repositories"
	"vehicle-registry-api/services"
	"vehicle-registry-api/utils"
)

type AuthController struct {
	users        *repositories.UserRepository
	tokens       *services.TokenService
	emailService *services.EmailService
}

func NewAuthController(users *repositories.UserRepository, tokens *services.TokenService, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        users,
		tokens:       tokens,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}

	user, err := ac.users.Register(repositories.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		var validationErr *repositories.ValidationError
		switch {
		case errors.Is(err, repositories.ErrDuplicateEmail):
			utils.SendError(c, http.StatusBadRequest, utils.CodeDuplicateEmail, err.Error())
		case errors.As(err, &validationErr):
			utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, validationErr.Message)
		default:
			utils.SendInternalError(c)
		}
		return
	}

	token, err := ac.tokens.Issue(user.ID, user.Email)
	if err != nil {
		utils.SendInternalError(c)
		return
	}

	// Fire and forget; a mail failure must not fail the registration.
	if ac.emailService != nil {
		go func(email, name string) {
			if err := ac.emailService.SendWelcomeEmail(email, name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    *user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusUnauthorized, utils.CodeInvalidCredentials, "Invalid credentials")
			return
		}
		utils.SendInternalError(c)
		return
	}

	if !ac.users.VerifySecret(user, req.Password) {
		utils.SendError(c, http.StatusUnauthorized, utils.CodeInvalidCredentials, "Invalid credentials")
		return
	}

	token, err := ac.tokens.Issue(user.ID, user.Email)
	if err != nil {
		utils.SendInternalError(c)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := ac.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, utils.CodeNotFound, "User not found")
			return
		}
		utils.SendInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req repositories.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}

	user, err := ac.users.UpdateProfile(userID, req)
	if err != nil {
		var validationErr *repositories.ValidationError
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			utils.SendError(c, http.StatusNotFound, utils.CodeNotFound, "User not found")
		case errors.As(err, &validationErr):
			utils.SendError(c, http.StatusBadRequest, utils.CodeValidation, validationErr.Message)
		default:
			utils.SendInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
