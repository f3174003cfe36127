package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rtlite/movieworld/internal/service"
	"github.com/rtlite/movieworld/internal/service/domain"
)

type AccountHandler struct {
	accounts domain.AccountService
}

func NewAccountHandler(accounts domain.AccountService) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
	}
}

func (h *AccountHandler) HandleRegister(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"message": "invalid request format",
		})
		return
	}

	if err := h.accounts.Register(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			ctx.JSON(400, gin.H{
				"message": "user already exists",
			})
			return
		}
		if errors.Is(err, service.ErrValidation) {
			ctx.JSON(400, gin.H{
				"message": validationMessage(err),
			})
			return
		}
		if errors.Is(err, service.ErrUnavailable) {
			ctx.JSON(503, gin.H{
				"message": "service temporarily unavailable, please try again later",
			})
			return
		}
		ctx.JSON(500, gin.H{
			"message": "registration failed, please try again later",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"message": "registration successful",
	})
}

func (h *AccountHandler) HandleLogin(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"message": "invalid request format",
		})
		return
	}

	user, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(400, gin.H{
				"message": "invalid email or password",
			})
			return
		}
		if errors.Is(err, service.ErrValidation) {
			ctx.JSON(400, gin.H{
				"message": validationMessage(err),
			})
			return
		}
		if errors.Is(err, service.ErrUnavailable) {
			ctx.JSON(503, gin.H{
				"message": "service temporarily unavailable, please try again later",
			})
			return
		}
		ctx.JSON(500, gin.H{
			"message": "login failed, please try again later",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"message": "login successful",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// HandleLogout is a stateless acknowledgement: the server holds no session
// state, the client owns the session record.
func (h *AccountHandler) HandleLogout(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"message": "logged out",
	})
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
