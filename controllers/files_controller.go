package controllers

import (
	"net/http"

	"agrodoc/services"

	"github.com/gin-gonic/gin"
)

// FilesController handles the CSV listing endpoints.
type FilesController struct {
	filesService services.FilesService
	cache        *CacheManager
}

// NewFilesController creates a new FilesController.
func NewFilesController(svc services.FilesService, cache *CacheManager) *FilesController {
	return &FilesController{filesService: svc, cache: cache}
}

// ListCSV handles GET /api/list-csv (truck files).
func (fc *FilesController) ListCSV(ctx *gin.Context) {
	listing, svcErr := fc.listing(ctx, "caminhoes")
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"data": gin.H{}, "error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": listing})
}

// ListCSVEmbarque handles GET /api/list-csv-embarque (ship files). Returns
// the mapping directly.
func (fc *FilesController) ListCSVEmbarque(ctx *gin.Context) {
	listing, svcErr := fc.listing(ctx, "navios")
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, listing)
}

func (fc *FilesController) listing(ctx *gin.Context, dir string) (map[string][]string, *services.ServiceError) {
	if listing, ok := fc.cache.GetListing(ctx.Request.Context(), dir); ok {
		return listing, nil
	}

	listing, svcErr := fc.filesService.ListCSV(ctx.Request.Context(), dir)
	if svcErr != nil {
		return nil, svcErr
	}

	fc.cache.SetListingAsync(dir, listing)
	return listing, nil
}
