package http

var (
	PanicRecoveryMiddleware = panicRecoveryMiddleware
	LoggingMiddleware       = loggingMiddleware
	ValidateGoogleIDToken   = validateGoogleIDToken
	AuthorizeWithPolicy     = authorizeWithPolicy
	WithIDTokenValidator    = withIDTokenValidator
)
