package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tag operations.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTagNotFound         = errors.New("tag not found")
	ErrTagExists           = errors.New("tag already exists")
	ErrInvalidTag          = errors.New("tag not recognized by upstream")
	ErrPictureNotFound     = errors.New("nothing found by this tag")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// InvalidTagError is returned when a tag is not part of the upstream universe.
// Suggestions holds example tags the upstream does know about.
type InvalidTagError struct {
	Tag         string
	Suggestions []string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("there are no cat pictures for tag %q, try such tags as %s", e.Tag, strings.Join(e.Suggestions, ", "))
}

// Is makes errors.Is(err, ErrInvalidTag) match.
func (e *InvalidTagError) Is(target error) bool {
	return target == ErrInvalidTag
}
