package lambdautil

import (
	"encoding/json"
	"testing"

	"github.com/src-bin/apigateway-authorizers/policies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleArn = policies.ExecuteAPIArn{
	Region:     "eu-west-1",
	AccountId:  "111122223333",
	APIId:      "abcd1234",
	Stage:      "v1",
	HTTPMethod: "GET",
	Resource:   "pets",
}

func TestSampleEventToken(t *testing.T) {
	e := SampleEvent("tokenAuthorizerGo", sampleArn)
	assert.Equal(t, TokenEventType, e.EventType())

	b, err := e.Payload()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "TOKEN",
		"authorizationToken": "Bearer allow",
		"methodArn": "arn:aws:execute-api:eu-west-1:111122223333:abcd1234/v1/GET/pets"
	}`, string(b))
}

func TestSampleEventRequest(t *testing.T) {
	e := SampleEvent("requestAuthorizerJava", sampleArn)
	assert.Equal(t, RequestEventType, e.EventType())

	b, err := e.Payload()
	require.NoError(t, err)
	var decoded AuthorizerEvent
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "queryValue1", decoded.QueryStringParameters["QueryString1"])
	assert.Equal(t, "111122223333", decoded.RequestContext.AccountID)
	assert.Equal(t, "abcd1234", decoded.RequestContext.APIID)
	assert.Equal(t, "v1", decoded.RequestContext.Stage)
	assert.Equal(t, "GET", decoded.RequestContext.HTTPMethod)
	assert.Equal(t, "/v1/pets", decoded.RequestContext.Path)
	assert.Equal(t, "/pets", decoded.Path)
}
