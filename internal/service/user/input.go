package user

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// SyncProfileInput holds the public profile fields the client may set.
type SyncProfileInput struct {
	Username    string
	DisplayName string
	AvatarURL   *string
}

// Validate validates the sync profile input.
func (i SyncProfileInput) Validate() error {
	var errs []domain.FieldError

	if !usernamePattern.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "3-32 lowercase letters, digits or underscores"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.DisplayName)) > 255 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if i.AvatarURL != nil {
		if len(*i.AvatarURL) > 512 {
			errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
		} else if u, err := url.Parse(*i.AvatarURL); err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
