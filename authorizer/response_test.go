package authorizer

import (
	"encoding/json"
	"testing"

	"github.com/src-bin/apigateway-authorizers/policies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEffectUnsetIsDeny(t *testing.T) {
	r, err := newResponse("", prodGetArn)
	require.NoError(t, err)
	assert.Equal(t, policies.Deny, r.Effect())

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var decoded Response
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, r.Effect(), decoded.Effect())
}

func TestResponseEffectEmpty(t *testing.T) {
	var r *Response
	assert.Equal(t, policies.Deny, r.Effect())
	assert.Equal(t, "", r.Resource())

	r = &Response{PolicyDocument: &policies.Document{}}
	assert.Equal(t, policies.Deny, r.Effect())
}

func TestResponseEffectAllow(t *testing.T) {
	r, err := newResponse(policies.Allow, prodGetArn)
	require.NoError(t, err)
	assert.Equal(t, policies.Allow, r.Effect())
	assert.Equal(t, prodGetArn, r.Resource())
}
