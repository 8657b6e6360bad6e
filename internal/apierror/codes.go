package apierror

// Error type URIs following the urn:serene:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:serene:error:validation"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:serene:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:serene:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:serene:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:serene:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
