package awslambda

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLambda struct {
	in  *lambda.InvokeInput
	out *lambda.InvokeOutput
	err error
}

func (f *fakeLambda) Invoke(_ context.Context, in *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.in = in
	return f.out, f.err
}

func TestInvoke(t *testing.T) {
	f := &fakeLambda{out: &lambda.InvokeOutput{StatusCode: 200, Payload: []byte(`{"principalId":"user:test"}`)}}
	b, err := Invoke(context.Background(), f, "requestAuthorizerGo", []byte(`{"type":"REQUEST"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"principalId":"user:test"}`, string(b))
	assert.Equal(t, "requestAuthorizerGo", aws.ToString(f.in.FunctionName))
	assert.Equal(t, types.InvocationTypeRequestResponse, f.in.InvocationType)
	assert.Equal(t, `{"type":"REQUEST"}`, string(f.in.Payload))
}

func TestInvokeFunctionError(t *testing.T) {
	f := &fakeLambda{out: &lambda.InvokeOutput{
		StatusCode:    200,
		FunctionError: aws.String("Unhandled"),
		Payload:       []byte(`{"errorMessage":"Unauthorized","errorType":"errorString"}`),
	}}
	_, err := Invoke(context.Background(), f, "tokenAuthorizerGo", nil)
	var fe FunctionError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "tokenAuthorizerGo", fe.FunctionName)
	assert.Equal(t, "Unhandled", fe.Kind)
	assert.Contains(t, err.Error(), `"errorMessage":"Unauthorized"`)
}

func TestInvokeNotFound(t *testing.T) {
	f := &fakeLambda{err: &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "Function not found: arn:aws:lambda:us-east-1:111122223333:function:nope"}}
	_, err := Invoke(context.Background(), f, "nope", nil)
	assert.ErrorContains(t, err, "Lambda function nope not found (Function not found: ")

	f.err = &smithy.GenericAPIError{Code: TooManyRequestsException, Message: "Rate Exceeded."}
	_, err = Invoke(context.Background(), f, "nope", nil)
	assert.ErrorContains(t, err, "throttled (Rate Exceeded.)")
}
