package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BackupSuffix is appended to a file's name to form its backup path.
const BackupSuffix = ".backup"

// GetTimestamp returns a formatted timestamp string.
func GetTimestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}

// CreateBackup copies the file at filePath next to itself with BackupSuffix
// appended and returns the backup path.
func CreateBackup(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", NewFileSystemError("backup", filePath, err)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return "", NewFileSystemError("backup", filePath, err)
	}

	backupPath := filePath + BackupSuffix
	if err := os.WriteFile(backupPath, content, info.Mode().Perm()); err != nil {
		return "", NewFileSystemError("backup", backupPath, err)
	}
	return backupPath, nil
}

// CapitalizeWords capitalizes the first letter of each word in a string.
func CapitalizeWords(s string) string {
	// Using golang.org/x/text/cases for robust capitalization, as strings.Title is deprecated.
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// FormatFileSize converts a file size in bytes to a human-readable string (e.g., "1.2 MB", "345 KB").
func FormatFileSize(size int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	switch {
	case size < KB:
		return fmt.Sprintf("%d B", size)
	case size < MB:
		return fmt.Sprintf("%.1f KB", float64(size)/KB)
	case size < GB:
		return fmt.Sprintf("%.1f MB", float64(size)/MB)
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/GB)
	}
}

// TruncateString truncates a string to a specified maximum length,
// appending "..." if truncation occurs.
func TruncateString(s string, maxLength int) string {
	if maxLength < 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
