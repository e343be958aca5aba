package models

import "net/http"

// CSVValidationResult reports the structural checks run against an uploaded
// delimited file. It is a value, not an error: callers inspect it.
type CSVValidationResult struct {
	IsValid     bool     `json:"isValid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	RowCount    int      `json:"rowCount"`
	ColumnCount int      `json:"columnCount"`
	Headers     []string `json:"headers"`
}

// Upload outcome codes. Stable, machine-readable.
const (
	UploadCodeConfigError  = "CONFIG_ERROR"
	UploadCodeUnauthorized = "UNAUTHORIZED"
	UploadCodeInvalidDir   = "INVALID_DIR"
	UploadCodeInvalidFile  = "INVALID_FILE"
	UploadCodeInvalidExt   = "INVALID_EXT"
	UploadCodeInvalidName  = "INVALID_NAME"
	UploadCodeTooLarge     = "TOO_LARGE"
	UploadCodeUnknownError = "UNKNOWN_ERROR"
)

// UploadOutcome is the result of one upload attempt: either success with the
// stored location or failure with a stable code plus human-readable message.
type UploadOutcome struct {
	Success   bool   `json:"success"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Path      string `json:"path,omitempty"`
	PublicURL string `json:"publicUrl,omitempty"`
	FileName  string `json:"fileName,omitempty"`
}

// HTTPStatus maps the outcome to the HTTP status the handler should emit.
func (o *UploadOutcome) HTTPStatus() int {
	if o.Success {
		return http.StatusOK
	}
	switch o.Code {
	case UploadCodeUnauthorized:
		return http.StatusUnauthorized
	case UploadCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case UploadCodeConfigError, UploadCodeUnknownError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// CSVUploadedEvent is published to SNS after a file lands in storage.
type CSVUploadedEvent struct {
	EventType string `json:"event_type"`
	Dir       string `json:"dir"`
	Path      string `json:"path"`
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
	Timestamp string `json:"timestamp"`
}
