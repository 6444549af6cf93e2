package service

import "errors"

// Messages of the first three errors are rendered to users verbatim.
var (
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrBusinessNotFound   = errors.New("No business found for user")
	ErrModuleNotFound     = errors.New("Module not found")
	ErrModuleNotInstalled = errors.New("module is not installed")
	ErrInvalidTransition  = errors.New("invalid module status transition")
	ErrAlreadyOnboarded   = errors.New("business already exists for user")
	ErrBusinessNameEmpty  = errors.New("business name is required")
	ErrItemNotFound       = errors.New("checklist item not found")
	ErrInvalidStatus      = errors.New("invalid checklist status")
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrAPIKeyNotFound     = errors.New("API key not found")
	ErrAPIKeyNameEmpty    = errors.New("API key name is required")
	ErrInvalidLeadSource  = errors.New("invalid lead source")
)

// ModuleNotFoundError carries the identifier that failed to resolve.
// errors.Is(err, ErrModuleNotFound) holds for it.
type ModuleNotFoundError struct {
	Identifier string
}

func (e *ModuleNotFoundError) Error() string {
	return "Module not found: " + e.Identifier
}

func (e *ModuleNotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}
