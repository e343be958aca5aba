package services

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"agrodoc/models"
)

// MaxCSVSize is the upload/validation size cap (5 MiB).
const MaxCSVSize = 5 << 20

// mismatchLinesShown caps how many offending line numbers a column-count
// warning lists before truncating with an ellipsis.
const mismatchLinesShown = 5

var allowedCSVExtensions = map[string]bool{
	".csv": true,
	".txt": true,
}

// suspiciousChars flag content likely to break downstream consumers or to
// carry injected markup. The active delimiter is exempted.
const suspiciousChars = `<>"|;'`

// ValidateCSV runs structural checks against a delimited file, independent of
// domain semantics. Hard errors make the result invalid; warnings do not.
func ValidateCSV(filename string, size int64, content []byte, requiredHeaders []string) *models.CSVValidationResult {
	result := &models.CSVValidationResult{
		Errors:   []string{},
		Warnings: []string{},
		Headers:  []string{},
	}

	if size > MaxCSVSize {
		result.Errors = append(result.Errors, fmt.Sprintf("file exceeds the %dMB limit", MaxCSVSize/(1024*1024)))
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedCSVExtensions[ext] {
		result.Errors = append(result.Errors, "file must be .csv or .txt")
		return result
	}

	lines := splitNonBlankLines(content)
	if len(lines) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := detectDelimiter(lines[0])
	headers := strings.Split(lines[0], delimiter)
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "") {
		result.Errors = append(result.Errors, "header row has no columns")
		return result
	}

	result.Headers = headers
	result.ColumnCount = len(headers)
	result.RowCount = len(lines) - 1

	if len(requiredHeaders) > 0 {
		present := make(map[string]bool, len(headers))
		for _, h := range headers {
			present[strings.ToLower(h)] = true
		}
		for _, required := range requiredHeaders {
			if !present[strings.ToLower(strings.TrimSpace(required))] {
				result.Errors = append(result.Errors, fmt.Sprintf("missing required header: %s", required))
			}
		}
	}

	if hasSuspiciousChars(lines[0], delimiter) {
		result.Warnings = append(result.Warnings, "line 1 contains suspicious characters")
	}

	var mismatchLines []int
	seen := make(map[string]int, len(lines))
	for i, line := range lines[1:] {
		lineNo := i + 2 // header is line 1

		if len(strings.Split(line, delimiter)) != result.ColumnCount {
			mismatchLines = append(mismatchLines, lineNo)
		}

		if hasSuspiciousChars(line, delimiter) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d contains suspicious characters", lineNo))
		}

		// Duplicates compare raw post-header lines as opaque strings.
		if firstSeen, ok := seen[line]; ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d duplicates line %d", lineNo, firstSeen))
		} else {
			seen[line] = lineNo
		}
	}

	if len(mismatchLines) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"column count mismatch on lines: %s", formatLineNumbers(mismatchLines)))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// PreviewCSV splits up to limit+1 raw rows (header included) by the inferred
// delimiter, trimming each cell. It performs no validation.
func PreviewCSV(content []byte, limit int) [][]string {
	lines := splitNonBlankLines(content)
	if len(lines) == 0 {
		return [][]string{}
	}

	delimiter := detectDelimiter(lines[0])
	if len(lines) > limit+1 {
		lines = lines[:limit+1]
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := strings.Split(line, delimiter)
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, cells)
	}
	return rows
}

// detectDelimiter infers the delimiter from the header line alone: a
// semicolon anywhere in it wins, otherwise comma. The choice applies to the
// whole file.
func detectDelimiter(header string) string {
	if strings.Contains(header, ";") {
		return ";"
	}
	return ","
}

func splitNonBlankLines(content []byte) []string {
	raw := strings.Split(string(content), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func hasSuspiciousChars(line, delimiter string) bool {
	for _, ch := range suspiciousChars {
		if string(ch) == delimiter {
			continue
		}
		if strings.ContainsRune(line, ch) {
			return true
		}
	}
	return false
}

func formatLineNumbers(lines []int) string {
	shown := lines
	truncated := false
	if len(shown) > mismatchLinesShown {
		shown = shown[:mismatchLinesShown]
		truncated = true
	}

	parts := make([]string, 0, len(shown)+1)
	for _, n := range shown {
		parts = append(parts, strconv.Itoa(n))
	}
	if truncated {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}
