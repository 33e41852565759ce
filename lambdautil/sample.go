package lambdautil

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/apigateway-authorizers/authorizerutil"
	"github.com/src-bin/apigateway-authorizers/policies"
)

// TokenFunctionPrefix marks deployed functions that are token authorizers,
// e.g. tokenAuthorizerGo; every other function is sent REQUEST events.
const TokenFunctionPrefix = "token"

// SampleEvent returns an event the authorizer deployed as functionName
// allows, for the method arn identifies.
func SampleEvent(functionName string, arn policies.ExecuteAPIArn) *AuthorizerEvent {
	if strings.HasPrefix(functionName, TokenFunctionPrefix) {
		return &AuthorizerEvent{
			Type:               TokenEventType,
			AuthorizationToken: authorizerutil.AllowToken,
			MethodArn:          arn.String(),
		}
	}
	path := "/" + strings.TrimPrefix(arn.Resource, "/")
	return &AuthorizerEvent{
		Type:       RequestEventType,
		MethodArn:  arn.String(),
		Resource:   path,
		Path:       path,
		HTTPMethod: arn.HTTPMethod,
		QueryStringParameters: map[string]string{
			authorizerutil.QueryStringName: authorizerutil.QueryStringValue,
		},
		RequestContext: events.APIGatewayCustomAuthorizerRequestTypeRequestContext{
			Path:         "/" + arn.Stage + path,
			AccountID:    arn.AccountId,
			Stage:        arn.Stage,
			ResourcePath: path,
			HTTPMethod:   arn.HTTPMethod,
			APIID:        arn.APIId,
		},
	}
}

// Payload encodes e as the narrower event type its EventType names, which is
// what API Gateway itself would send.
func (e *AuthorizerEvent) Payload() ([]byte, error) {
	if e.EventType() == TokenEventType {
		return json.Marshal(e.TokenEvent())
	}
	return json.Marshal(e.RequestEvent())
}
