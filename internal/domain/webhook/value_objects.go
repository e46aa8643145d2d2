package webhook

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidSlug        = errors.New("invalid slug")
	ErrDescriptionTooLong = errors.New("description must be 500 characters or less")
)

const (
	SlugLength        = 12
	maxDescriptionLen = 500
)

var slugRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// Slug is the opaque random token identifying a webhook endpoint in its
// public URL.
type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	if len(s) != SlugLength || !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) Value() string {
	return s.value
}

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxDescriptionLen {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: s}, nil
}

func (d Description) Value() string {
	return d.value
}

func (d Description) IsEmpty() bool {
	return d.value == ""
}
