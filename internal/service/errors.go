package service

import "errors"

// Error kinds the HTTP layer maps to status codes. Operations wrap these
// with fmt.Errorf("%w: ...") to carry detail; callers match with errors.Is.
var (
	ErrValidation         = errors.New("invalid input")          // 400
	ErrAuthRequired       = errors.New("authentication required") // 401
	ErrInvalidCredentials = errors.New("invalid credentials")     // 401
	ErrConflict           = errors.New("already exists")          // 409
	ErrNotFound           = errors.New("not found")               // 404
	ErrInternal           = errors.New("internal server error")   // 500
)
