package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SaveMarkdown writes exported text under a dated directory:
// outputDir/2025/01/23/20250123_143022_build_a_react_app.md
func SaveMarkdown(outputDir, name, text string, now time.Time) (string, error) {
	dateDir := filepath.Join(outputDir,
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fmt.Sprintf("%02d", now.Day()))

	if err := os.MkdirAll(dateDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create date directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.md", now.Format("20060102_150405"), sanitizeFilename(name))
	path := filepath.Join(dateDir, filename)

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to save tutorial: %w", err)
	}
	return path, nil
}

// sanitizeFilename keeps a short, filesystem-safe version of name
func sanitizeFilename(name string) string {
	result := strings.ToLower(strings.TrimSpace(name))
	result = unsafeChars.ReplaceAllString(result, "_")
	result = strings.Trim(result, "_.")
	if len(result) > 100 {
		result = result[:100]
	}
	if result == "" {
		result = "tutorial"
	}
	return result
}
