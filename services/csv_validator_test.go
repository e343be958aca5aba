package services_test

import (
	"fmt"
	"strings"
	"testing"

	"agrodoc/models"
	"agrodoc/services"

	"github.com/stretchr/testify/assert"
)

func validate(content string, required ...string) *models.CSVValidationResult {
	return services.ValidateCSV("data.csv", int64(len(content)), []byte(content), required)
}

func TestValidateCSV_ColumnMismatchWarning(t *testing.T) {
	result := validate("a,b,c\n1,2,3\n4,5\n")

	assert.True(t, result.IsValid)
	assert.Equal(t, 2, result.RowCount)
	assert.Equal(t, 3, result.ColumnCount)
	assert.Equal(t, []string{"a", "b", "c"}, result.Headers)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "3")
}

func TestValidateCSV_SemicolonDelimiterAndDuplicate(t *testing.T) {
	result := validate("a;b\n1;2\n1;2\n")

	assert.True(t, result.IsValid)
	assert.Equal(t, []string{"a", "b"}, result.Headers)
	assert.Equal(t, 2, result.RowCount)
	// The semicolons themselves must not trigger suspicious-character
	// warnings once they are the delimiter.
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "duplicates")
}

func TestValidateCSV_TooLarge(t *testing.T) {
	result := services.ValidateCSV("big.csv", services.MaxCSVSize+1, []byte("a,b\n"), nil)

	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)
}

func TestValidateCSV_BadExtension(t *testing.T) {
	result := services.ValidateCSV("report.pdf", 10, []byte("a,b\n1,2\n"), nil)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], ".csv or .txt")
}

func TestValidateCSV_EmptyFile(t *testing.T) {
	result := validate("\n\n   \n")

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestValidateCSV_RequiredHeaders(t *testing.T) {
	result := validate("Name,Weight\n1,2\n", "name", "destination")

	// Matching is case-insensitive; only the truly absent header errors,
	// and the remaining checks still ran.
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "destination")
	assert.Equal(t, 1, result.RowCount)
}

func TestValidateCSV_SuspiciousCharacters(t *testing.T) {
	result := validate("a,b\n<script>,2\n")

	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "suspicious")
}

func TestValidateCSV_SuspiciousCharactersInHeader(t *testing.T) {
	result := validate("a|b,c\n1,2\n")

	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "line 1")
}

func TestValidateCSV_MismatchLinesCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("a,b,c\n")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "1,%d\n", i)
	}
	result := validate(sb.String())

	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "...")
}

func TestValidateCSV_BlankLinesIgnored(t *testing.T) {
	result := validate("a,b\n\n1,2\n\n\n3,4\n")

	assert.True(t, result.IsValid)
	assert.Equal(t, 2, result.RowCount)
	assert.Empty(t, result.Warnings)
}

func TestPreviewCSV(t *testing.T) {
	rows := services.PreviewCSV([]byte("a; b ;c\n 1 ;2;3\n4;5;6\n7;8;9\n"), 2)

	assert.Len(t, rows, 3) // header + 2 data rows
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, rows[1])
}

func TestPreviewCSV_Empty(t *testing.T) {
	assert.Empty(t, services.PreviewCSV([]byte(""), 5))
}
