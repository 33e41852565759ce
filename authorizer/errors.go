package authorizer

import "errors"

// API Gateway matches the exact text of "Unauthorized" to answer 401; any
// other error from an authorizer becomes a 500. That is why these messages
// are capitalized.
var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrInvalidToken = errors.New("Error: Invalid token")
)

var (
	ErrInvalidMethodArn      = errors.New("invalid methodArn")
	ErrInvalidRequestContext = errors.New("request context cannot identify the method being authorized")
)
