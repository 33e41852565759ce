package authorizerutil

// Identity handed to API Gateway for every allowed or denied caller. None of
// it is derived from a verified credential.
const (
	PrincipalId = "user:test"

	Sub      = "sub" // response context key
	SubValue = "test"
)

// The request authorizer's one rule.
const (
	QueryStringName  = "QueryString1"
	QueryStringValue = "queryValue1"
)

// The token authorizer's rules.
const (
	AllowToken        = "Bearer allow"
	UnauthorizedToken = "unauthorized"
)

// Context returns a fresh response context so no two responses share a map.
func Context() map[string]string {
	return map[string]string{Sub: SubValue}
}
