package kernel

import "github.com/go-playground/validator/v10"

// validate is safe for concurrent use and caches rule parsing across calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validator returns the shared rule engine so other domain packages reuse
// the same instance for field rules.
func Validator() *validator.Validate {
	return validate
}
