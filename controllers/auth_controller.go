package controllers

import (
	"net/http"

	"agrodoc/middleware"
	"agrodoc/services"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles login, signup, logout and email confirmation.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(svc services.AuthService) *AuthController {
	return &AuthController{authService: svc}
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(ctx *gin.Context) {
	var req credentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, svcErr := ac.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pair, err := middleware.GenerateTokenPair(user.ID.String(), user.Email, user.EmailConfirmed)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	middleware.SetSessionCookies(ctx, pair)

	ctx.JSON(http.StatusOK, gin.H{
		"email":           user.Email,
		"email_confirmed": user.EmailConfirmed,
	})
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(ctx *gin.Context) {
	var req credentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, svcErr := ac.authService.Signup(ctx.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"email":   user.Email,
		"message": "confirm your email before signing in",
	})
}

// Logout handles POST /api/auth/logout
func (ac *AuthController) Logout(ctx *gin.Context) {
	middleware.ClearSessionCookies(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Confirm handles GET /api/auth/confirm?token=...
func (ac *AuthController) Confirm(ctx *gin.Context) {
	if svcErr := ac.authService.Confirm(ctx.Request.Context(), ctx.Query("token")); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.Redirect(http.StatusFound, "/login?message=email-confirmed")
}
