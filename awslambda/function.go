package awslambda

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/src-bin/apigateway-authorizers/awsutil"
)

const TooManyRequestsException = "TooManyRequestsException"

// InvokeAPI is the slice of *lambda.Client that Invoke uses.
type InvokeAPI interface {
	Invoke(context.Context, *lambda.InvokeInput, ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// FunctionError is an error the function itself returned, which Lambda
// reports in a successful Invoke response rather than as an API error. For a
// Go authorizer the payload is {"errorMessage":...,"errorType":...}.
type FunctionError struct {
	FunctionName, Kind string
	Payload            []byte
}

func (err FunctionError) Error() string {
	return fmt.Sprintf("%s returned %s: %s", err.FunctionName, err.Kind, err.Payload)
}

// Invoke calls name synchronously with payload and returns its response.
func Invoke(ctx context.Context, client InvokeAPI, name string, payload []byte) ([]byte, error) {
	out, err := client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(name),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	switch awsutil.ErrorCode(err) {
	case "":
	case awsutil.ResourceNotFoundException:
		return nil, fmt.Errorf("Lambda function %s not found (%s): %w", name, awsutil.ErrorMessage(err), err)
	case TooManyRequestsException:
		return nil, fmt.Errorf("Lambda function %s throttled (%s): %w", name, awsutil.ErrorMessage(err), err)
	}
	if err != nil {
		return nil, err
	}
	if out.FunctionError != nil {
		return nil, FunctionError{name, aws.ToString(out.FunctionError), out.Payload}
	}
	return out.Payload, nil
}
