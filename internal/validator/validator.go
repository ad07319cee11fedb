// Package validator holds the input checks the shell runs before a task is
// created or edited. Every function is pure and total.
package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate reports whether s is a real calendar date written as YYYY-MM-DD.
func ValidateDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	// time.Parse rejects month 13, day 32 and Feb 30 for the fixed layout,
	// but not year 0000.
	d, err := time.Parse(dateLayout, s)
	return err == nil && d.Year() >= 1
}

// ValidatePriority reports whether s is exactly High, Medium or Low.
func ValidatePriority(s string) bool {
	_, err := models.ParsePriority(s)
	return err == nil
}

// ValidateTitle reports whether s has any non-blank content.
func ValidateTitle(s string) bool {
	return strings.TrimSpace(s) != ""
}
