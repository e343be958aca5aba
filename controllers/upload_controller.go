package controllers

import (
	"io"
	"net/http"
	"strings"

	"agrodoc/services"

	"github.com/gin-gonic/gin"
)

// UploadKeyHeader carries the shared upload secret.
const UploadKeyHeader = "x-upload-key"

// UploadController handles CSV upload and pre-upload validation.
type UploadController struct {
	uploadService services.UploadService
}

// NewUploadController creates a new UploadController.
func NewUploadController(svc services.UploadService) *UploadController {
	return &UploadController{uploadService: svc}
}

// Upload handles POST /api/upload?dir=caminhoes|navios
func (uc *UploadController) Upload(ctx *gin.Context) {
	dir := ctx.Query("dir")
	presentedKey := ctx.GetHeader(UploadKeyHeader)

	// nil file is handled by the gate itself (INVALID_FILE).
	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	outcome := uc.uploadService.Upload(ctx.Request.Context(), dir, presentedKey, file)
	ctx.JSON(outcome.HTTPStatus(), outcome)
}

// Usage handles GET /api/upload. Informational, no auth required.
func (uc *UploadController) Usage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"method":      "POST",
		"query":       gin.H{"dir": "caminhoes | navios"},
		"headers":     gin.H{UploadKeyHeader: "<shared secret>"},
		"body":        "multipart/form-data with a single 'file' field (.csv or .txt, max 5MB)",
		"description": "Uploads a CSV to storage, overwriting any existing file with the same name.",
	})
}

// ValidateCSV handles POST /api/validate-csv, running structural validation
// on a file before upload. Optional query 'required' lists comma-separated
// header names that must be present.
func (uc *UploadController) ValidateCSV(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a single 'file' field is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, services.MaxCSVSize+1))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	var required []string
	if raw := strings.TrimSpace(ctx.Query("required")); raw != "" {
		for _, h := range strings.Split(raw, ",") {
			if h = strings.TrimSpace(h); h != "" {
				required = append(required, h)
			}
		}
	}

	result := services.ValidateCSV(file.Filename, file.Size, content, required)
	ctx.JSON(http.StatusOK, result)
}
