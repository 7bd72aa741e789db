package services

import "errors"

// Sentinel errors returned by the services. Controllers map these to
// HTTP status codes and response bodies with errors.Is.
var (
	// ErrRestaurantNotFound indicates the requested restaurant id does
	// not resolve to a row
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrPizzaNotFound indicates the requested pizza id does not
	// resolve to a row
	ErrPizzaNotFound = errors.New("pizza not found")

	// ErrIntegrityViolation indicates the store rejected a write at
	// commit time (foreign key or uniqueness constraint)
	ErrIntegrityViolation = errors.New("database integrity violation")
)
