package utils

import "errors"

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrNotOwner          = errors.New("not authorized to access this trip")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrGenerationFailed  = errors.New("failed to generate itinerary")
)
