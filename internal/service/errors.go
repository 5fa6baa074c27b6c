package service

import (
	"errors"
	"regexp"
)

var (
	// ErrNotInitialized is returned when a service is used before its
	// collaborators were wired. It is a programming error.
	ErrNotInitialized = errors.New("service not initialized")

	// ErrInvalidHousehold is returned for household ids outside [a-z0-9-]{1,64}.
	ErrInvalidHousehold = errors.New("invalid household id")

	// ErrInvalidDate is returned for date keys that are not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

var householdPattern = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// ValidHousehold reports whether id can be used as a household key.
func ValidHousehold(id string) bool {
	return householdPattern.MatchString(id)
}
