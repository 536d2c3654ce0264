package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrNoGeocodeResult    = errors.New("no geocoding results found")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpstreamFailure    = errors.New("upstream service failure")
	ErrMalformedForecast  = errors.New("malformed forecast payload")
)
