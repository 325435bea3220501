package bucketlist

import (
	"strings"
	"unicode/utf8"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxItemPoints     = 10_000

	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Title       string
	Description *string
	IsPublic    *bool // nil = public
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddItemInput holds the parameters for adding an item to a list.
type AddItemInput struct {
	Title  string
	Points int
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Points < 0 || i.Points > maxItemPoints {
		errs = append(errs, domain.FieldError{Field: "points", Message: "must be between 0 and 10000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// clampLimit maps a requested leaderboard size onto [1, MaxLeaderboardLimit].
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	default:
		return limit
	}
}
