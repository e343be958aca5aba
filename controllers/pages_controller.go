package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesController serves the dashboard page shells. The UI itself is rendered
// client-side; these handlers exist as the session guard's targets.
type PagesController struct{}

func NewPagesController() *PagesController {
	return &PagesController{}
}

// Home handles GET /
func (pc *PagesController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "dashboard"})
}

// Login handles GET /login
func (pc *PagesController) Login(ctx *gin.Context) {
	resp := gin.H{"page": "login"}
	if msg := ctx.Query("message"); msg != "" {
		resp["message"] = msg
	}
	ctx.JSON(http.StatusOK, resp)
}

// Signup handles GET /signup
func (pc *PagesController) Signup(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "signup"})
}

// ForgotPassword handles GET /forgot-password
func (pc *PagesController) ForgotPassword(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "forgot-password"})
}

// ResetPassword handles GET /reset-password
func (pc *PagesController) ResetPassword(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "reset-password"})
}

// ConfirmEmail handles GET /confirm-email
func (pc *PagesController) ConfirmEmail(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "confirm-email"})
}
