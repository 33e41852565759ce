package authorizer

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/apigateway-authorizers/policies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const prodGetArn = "arn:aws:execute-api:us-east-1:111122223333:abcd1234/prod/GET/*"

func requestEvent(query map[string]string) *events.APIGatewayCustomAuthorizerRequestTypeRequest {
	return &events.APIGatewayCustomAuthorizerRequestTypeRequest{
		Type:                  "REQUEST",
		QueryStringParameters: query,
		RequestContext: events.APIGatewayCustomAuthorizerRequestTypeRequestContext{
			AccountID:  "111122223333",
			APIID:      "abcd1234",
			Stage:      "prod",
			HTTPMethod: "GET",
			Identity: events.APIGatewayCustomAuthorizerRequestTypeRequestIdentity{
				SourceIP: "203.0.113.7",
			},
		},
	}
}

func TestRequestAuthorizerAllow(t *testing.T) {
	resp, err := NewRequestAuthorizer("us-east-1", nil).Authorize(
		context.Background(),
		requestEvent(map[string]string{"QueryString1": "queryValue1"}),
	)
	require.NoError(t, err)
	assert.Equal(t, policies.Allow, resp.Effect())
	assert.Equal(t, prodGetArn, resp.Resource())
	assert.Equal(t, "user:test", resp.PrincipalId)
	assert.Equal(t, map[string]string{"sub": "test"}, resp.Context)
}

func TestRequestAuthorizerWrongValue(t *testing.T) {
	resp, err := NewRequestAuthorizer("us-east-1", nil).Authorize(
		context.Background(),
		requestEvent(map[string]string{"QueryString1": "wrongValue"}),
	)
	require.NoError(t, err)
	assert.Equal(t, policies.Deny, resp.Effect())
	assert.Equal(t, prodGetArn, resp.Resource())
}

func TestRequestAuthorizerMissingQueryStringDenies(t *testing.T) {
	a := NewRequestAuthorizer("us-east-1", nil)
	for _, query := range []map[string]string{
		nil,
		{},
		{"QueryString2": "queryValue1"},
		{"QueryString1": ""},
		{"QueryString1": "QUERYVALUE1"},
		{"QueryString1": "queryValue1 "},
	} {
		resp, err := a.Authorize(context.Background(), requestEvent(query))
		require.NoError(t, err, query)
		assert.Equal(t, policies.Deny, resp.Effect(), query)
		assert.Equal(t, prodGetArn, resp.Resource(), query)
		assert.Equal(t, "user:test", resp.PrincipalId)
		assert.Equal(t, map[string]string{"sub": "test"}, resp.Context)
	}
}

func TestRequestAuthorizerResourceShape(t *testing.T) {
	re := regexp.MustCompile(`^arn:aws:execute-api:([^:]*):([^:]+):([^/]+)/([^/]+)/([^/]+)/\*$`)
	for _, tc := range []struct{ region, stage, method string }{
		{"us-east-1", "prod", "GET"},
		{"eu-central-1", "dev", "POST"},
		{"", "v1", "DELETE"},
	} {
		e := requestEvent(map[string]string{"QueryString1": "queryValue1"})
		e.RequestContext.Stage = tc.stage
		e.RequestContext.HTTPMethod = tc.method
		resp, err := NewRequestAuthorizer(tc.region, nil).Authorize(context.Background(), e)
		require.NoError(t, err)

		m := re.FindStringSubmatch(resp.Resource())
		require.NotNil(t, m, resp.Resource())
		assert.Equal(t, []string{tc.region, "111122223333", "abcd1234", tc.stage, tc.method}, m[1:])
	}
}

func TestRequestAuthorizerInvalidRequestContext(t *testing.T) {
	a := NewRequestAuthorizer("us-east-1", nil)

	_, err := a.Authorize(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidRequestContext)

	for _, unset := range []func(*events.APIGatewayCustomAuthorizerRequestTypeRequestContext){
		func(rc *events.APIGatewayCustomAuthorizerRequestTypeRequestContext) { rc.AccountID = "" },
		func(rc *events.APIGatewayCustomAuthorizerRequestTypeRequestContext) { rc.APIID = "" },
		func(rc *events.APIGatewayCustomAuthorizerRequestTypeRequestContext) { rc.Stage = "" },
		func(rc *events.APIGatewayCustomAuthorizerRequestTypeRequestContext) { rc.HTTPMethod = "" },
	} {
		e := requestEvent(map[string]string{"QueryString1": "queryValue1"})
		unset(&e.RequestContext)
		resp, err := a.Authorize(context.Background(), e)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrInvalidRequestContext)
	}
}

func TestRequestAuthorizerJSON(t *testing.T) {
	resp, err := NewRequestAuthorizer("us-east-1", nil).Authorize(
		context.Background(),
		requestEvent(map[string]string{"QueryString1": "queryValue1"}),
	)
	require.NoError(t, err)
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"principalId": "user:test",
		"policyDocument": {
			"Version": "2012-10-17",
			"Statement": [{
				"Action": "execute-api:Invoke",
				"Effect": "Allow",
				"Resource": "arn:aws:execute-api:us-east-1:111122223333:abcd1234/prod/GET/*"
			}]
		},
		"context": {"sub": "test"}
	}`, string(b))
}

func TestRequestAuthorizerLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := NewRequestAuthorizer("", zap.New(core)).Authorize(
		context.Background(),
		requestEvent(map[string]string{"QueryString1": "wrongValue"}),
	)
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("no AWS region configured; policy resources will have an empty region").Len())
	decisions := logs.FilterMessage("authorized").All()
	require.Len(t, decisions, 1)
	assert.Equal(t, "Deny", decisions[0].ContextMap()["effect"])
}
