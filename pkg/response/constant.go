package response

const (
	MessageSuccess      = "Success"
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
	MessageInternal     = "Something went wrong"
	MessageValidation   = "Validation failed"
	MessageUnavailable  = "Service unavailable"

	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeInternal     = 500
	CodeValidation   = 400
	CodeUnavailable  = 503
)
