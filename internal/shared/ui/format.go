package ui

import "fmt"

// Success formats a per-item success line.
func Success(format string, args ...interface{}) string {
	return StatusSuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...)
}

// Warning formats a per-item skip/warning line.
func Warning(format string, args ...interface{}) string {
	return StatusWarningStyle.Render("⚠") + " " + fmt.Sprintf(format, args...)
}

// Failure formats a per-item failure line.
func Failure(format string, args ...interface{}) string {
	return StatusErrorStyle.Render("❌") + " " + fmt.Sprintf(format, args...)
}

// FormatSize renders a byte count in human units.
func FormatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	if size < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	}
	if size < 1024*1024*1024 {
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
	return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
}
