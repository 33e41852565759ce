package lambdautil

import (
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Values API Gateway puts in an authorizer event's type field.
const (
	RequestEventType = "REQUEST"
	TokenEventType   = "TOKEN"
)

// AuthorizerEvent has every field from both
// APIGatewayCustomAuthorizerRequest and
// APIGatewayCustomAuthorizerRequestTypeRequest so one JSON decode is enough
// to decide which kind of authorizer a payload is meant for.
type AuthorizerEvent struct {
	Type                            string                                                      `json:"type"`
	AuthorizationToken              string                                                      `json:"authorizationToken"`
	MethodArn                       string                                                      `json:"methodArn"`
	Resource                        string                                                      `json:"resource"`
	Path                            string                                                      `json:"path"`
	HTTPMethod                      string                                                      `json:"httpMethod"`
	Headers                         map[string]string                                           `json:"headers"`
	MultiValueHeaders               map[string][]string                                         `json:"multiValueHeaders"`
	QueryStringParameters           map[string]string                                           `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string                                         `json:"multiValueQueryStringParameters"`
	PathParameters                  map[string]string                                           `json:"pathParameters"`
	StageVariables                  map[string]string                                           `json:"stageVariables"`
	RequestContext                  events.APIGatewayCustomAuthorizerRequestTypeRequestContext `json:"requestContext"`
}

// EventType normalizes Type. Payloads with no type but an authorizationToken
// are treated as TOKEN, which is what `sam local` and the API Gateway console
// test tool send for token authorizers.
func (e *AuthorizerEvent) EventType() string {
	t := strings.ToUpper(e.Type)
	if t == "" && e.AuthorizationToken != "" {
		t = TokenEventType
	}
	return t
}

func (e *AuthorizerEvent) RequestEvent() *events.APIGatewayCustomAuthorizerRequestTypeRequest {
	return &events.APIGatewayCustomAuthorizerRequestTypeRequest{
		Type:                            e.Type,
		MethodArn:                       e.MethodArn,
		Resource:                        e.Resource,
		Path:                            e.Path,
		HTTPMethod:                      e.HTTPMethod,
		Headers:                         e.Headers,
		MultiValueHeaders:               e.MultiValueHeaders,
		QueryStringParameters:           e.QueryStringParameters,
		MultiValueQueryStringParameters: e.MultiValueQueryStringParameters,
		PathParameters:                  e.PathParameters,
		StageVariables:                  e.StageVariables,
		RequestContext:                  e.RequestContext,
	}
}

func (e *AuthorizerEvent) TokenEvent() *events.APIGatewayCustomAuthorizerRequest {
	return &events.APIGatewayCustomAuthorizerRequest{
		Type:               e.Type,
		AuthorizationToken: e.AuthorizationToken,
		MethodArn:          e.MethodArn,
	}
}
