package shared

import "errors"

var (
	// common errors
	ErrorNotFound   = errors.New("not found")
	ErrorValidation = errors.New("validation error")

	// startup errors
	ErrorConfiguration = errors.New("configuration error")

	// billing-specific errors
	ErrorExternalService     = errors.New("external service error")
	ErrorInsufficientBalance = errors.New("insufficient credit balance")
)
