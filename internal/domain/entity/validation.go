package entity

import "unicode/utf8"

// Title length bounds, counted in characters, not bytes. The lower bound is
// exclusive and the upper bound is inclusive: valid titles are 11 to 50
// characters long.
const (
	minTitleLen = 10
	maxTitleLen = 50
)

// ValidateTitle checks the advertisement title length rule.
// It applies identically on creation and on update when a title is supplied.
// Returns nil if the title is valid.
func ValidateTitle(title string) *ValidationError {
	n := utf8.RuneCountInString(title)
	if n <= minTitleLen {
		return &ValidationError{Field: "title", Reason: "title is too short"}
	}
	if n > maxTitleLen {
		return &ValidationError{Field: "title", Reason: "title is too long"}
	}
	return nil
}
