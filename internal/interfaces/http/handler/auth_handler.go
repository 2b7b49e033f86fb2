package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Prawin5557/Uzhavar-Connect/internal/application/auth"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

type AuthHandler struct {
	svc *app.Service
}

func NewAuthHandler(svc *app.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// userResponse is the account shape returned to clients. The password
// hash never leaves the server.
type userResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	Role    user.Role `json:"role"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var cmd app.SignupCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.svc.Signup(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var cmd app.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.svc.Login(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}
