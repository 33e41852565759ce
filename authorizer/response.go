package authorizer

import (
	"github.com/src-bin/apigateway-authorizers/authorizerutil"
	"github.com/src-bin/apigateway-authorizers/policies"
)

// Response is what API Gateway expects back from a Lambda authorizer. Context
// is limited to strings, which is the narrowest of the types API Gateway
// forwards to the integration.
type Response struct {
	PrincipalId    string             `json:"principalId"`
	PolicyDocument *policies.Document `json:"policyDocument"`
	Context        map[string]string  `json:"context"`
}

func newResponse(effect policies.Effect, resource string) (*Response, error) {
	doc := policies.Invoke(effect, resource)
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &Response{
		PrincipalId:    authorizerutil.PrincipalId,
		PolicyDocument: doc,
		Context:        authorizerutil.Context(),
	}, nil
}

// Effect is a convenience for callers and tests that only care about the
// decision. It agrees with the JSON form, so an unset Effect is Deny.
func (r *Response) Effect() policies.Effect {
	if r == nil || r.PolicyDocument == nil || len(r.PolicyDocument.Statement) == 0 {
		return policies.Deny
	}
	if effect := r.PolicyDocument.Statement[0].Effect; effect != "" {
		return effect
	}
	return policies.Deny
}

func (r *Response) Resource() string {
	if r == nil || r.PolicyDocument == nil || len(r.PolicyDocument.Statement) == 0 {
		return ""
	}
	return r.PolicyDocument.Statement[0].Resource
}
