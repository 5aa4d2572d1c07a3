package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing catalog credentials")

	// Catalog provider errors
	ErrAuthRejected        = fmt.Errorf("provider rejected credentials")
	ErrMalformedQuery      = fmt.Errorf("provider rejected query")
	ErrProviderUnavailable = fmt.Errorf("catalog provider unavailable")
	ErrTokenExchange       = fmt.Errorf("token exchange failed")

	// Store errors
	ErrStoreFailure      = fmt.Errorf("store operation failed")
	ErrDuplicateUsername = fmt.Errorf("username already exists")
	ErrNotFound          = fmt.Errorf("not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
