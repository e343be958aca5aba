package routes

import (
	"time"

	"agrodoc/controllers"
	"agrodoc/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// APIControllers bundles the controllers behind /api.
type APIControllers struct {
	Ships  *controllers.ShipsController
	Files  *controllers.FilesController
	Upload *controllers.UploadController
	Auth   *controllers.AuthController
}

// RegisterAPIRoutes sets up every /api endpoint. API routes are not behind
// the session guard; upload has its own shared-secret check.
func RegisterAPIRoutes(r *gin.Engine, c APIControllers) {
	api := r.Group("/api")

	api.GET("/available-dates", c.Ships.GetAvailableDates)
	api.GET("/ships", c.Ships.GetShips)
	api.GET("/list-csv", c.Files.ListCSV)
	api.GET("/list-csv-embarque", c.Files.ListCSVEmbarque)

	api.GET("/upload", c.Upload.Usage)
	api.POST("/upload", c.Upload.Upload)
	api.POST("/validate-csv", c.Upload.ValidateCSV)

	auth := api.Group("/auth")
	auth.Use(middleware.NewRateLimiter(rate.Every(time.Minute/30), 10, 10*time.Minute).Middleware())
	auth.POST("/login", c.Auth.Login)
	auth.POST("/signup", c.Auth.Signup)
	auth.POST("/logout", c.Auth.Logout)
	auth.GET("/confirm", c.Auth.Confirm)
}

// RegisterPageRoutes sets up the dashboard pages behind the session guard.
func RegisterPageRoutes(r *gin.Engine, pc *controllers.PagesController, authBypass bool, logger *zap.Logger) {
	pages := r.Group("/")
	pages.Use(middleware.SessionGuard(authBypass, logger))

	pages.GET("/", pc.Home)
	pages.GET("/login", pc.Login)
	pages.GET("/signup", pc.Signup)
	pages.GET("/forgot-password", pc.ForgotPassword)
	pages.GET("/reset-password", pc.ResetPassword)
	pages.GET("/confirm-email", pc.ConfirmEmail)
}
