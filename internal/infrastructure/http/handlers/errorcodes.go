package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for
// stable client handling.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeBusinessRule   = "business_rule_violation"
	ErrCodeForbidden      = "forbidden"
	ErrCodeInternal       = "internal_error"
)
