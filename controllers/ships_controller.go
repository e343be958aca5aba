package controllers

import (
	"net/http"
	"strconv"

	"agrodoc/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// The year window is a sanity guard: the schedule data never predates 1900,
// and anything past 2200 is a client bug, not a query.
type shipsQuery struct {
	Year  int `validate:"required,gte=1900,lte=2200"`
	Month int `validate:"required,gte=1,lte=12"`
}

// ShipsController handles HTTP requests for ship listings.
type ShipsController struct {
	shipsService services.ShipsService
	cache        *CacheManager
	validate     *validator.Validate
}

// NewShipsController creates a new ShipsController.
func NewShipsController(svc services.ShipsService, cache *CacheManager) *ShipsController {
	return &ShipsController{
		shipsService: svc,
		cache:        cache,
		validate:     validator.New(),
	}
}

// GetShips handles GET /api/ships?year=YYYY&month=MM
func (sc *ShipsController) GetShips(ctx *gin.Context) {
	yearStr := ctx.Query("year")
	monthStr := ctx.Query("month")
	if yearStr == "" || monthStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year and month are required"})
		return
	}

	year, yearErr := strconv.Atoi(yearStr)
	month, monthErr := strconv.Atoi(monthStr)
	if yearErr != nil || monthErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be numeric"})
		return
	}

	if err := sc.validate.Struct(shipsQuery{Year: year, Month: month}); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year or month out of range"})
		return
	}

	shipsByDate, svcErr := sc.shipsService.ListByMonth(ctx.Request.Context(), year, month)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"shipsByDate": shipsByDate})
}

// GetAvailableDates handles GET /api/available-dates
func (sc *ShipsController) GetAvailableDates(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-store")

	if dates, ok := sc.cache.GetDates(ctx.Request.Context()); ok {
		ctx.JSON(http.StatusOK, gin.H{"dates": dates})
		return
	}

	dates, svcErr := sc.shipsService.AvailableDates(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	sc.cache.SetDatesAsync(dates)
	ctx.JSON(http.StatusOK, gin.H{"dates": dates})
}
