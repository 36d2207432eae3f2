package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	userUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/user"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	userService *userUseCase.Service
	tokens      coreport.TokenProvider
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *userUseCase.Service, tokens coreport.TokenProvider, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register handles the POST /api/auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), userUseCase.RegisterRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Login handles the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}
