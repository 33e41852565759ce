package policies

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

const (
	Partition  = "aws"
	ExecuteAPI = "execute-api"

	AnyResource = "*"
)

// ExecuteAPIArn identifies API Gateway methods in the form
// arn:aws:execute-api:{region}:{account}:{apiId}/{stage}/{method}/{resource}.
// An empty Resource formats as "*", covering every path under the method.
type ExecuteAPIArn struct {
	Region     string
	AccountId  string
	APIId      string
	Stage      string
	HTTPMethod string
	Resource   string
}

func ParseExecuteAPIArn(s string) (ExecuteAPIArn, error) {
	a, err := arn.Parse(s)
	if err != nil {
		return ExecuteAPIArn{}, ExecuteAPIArnError{s, err.Error()}
	}
	if a.Service != ExecuteAPI {
		return ExecuteAPIArn{}, ExecuteAPIArnError{s, fmt.Sprintf("service is %q", a.Service)}
	}
	ss := strings.SplitN(a.Resource, "/", 4)
	if len(ss) < 3 {
		return ExecuteAPIArn{}, ExecuteAPIArnError{s, "resource needs at least apiId/stage/method"}
	}
	e := ExecuteAPIArn{
		Region:     a.Region,
		AccountId:  a.AccountID,
		APIId:      ss[0],
		Stage:      ss[1],
		HTTPMethod: ss[2],
	}
	if len(ss) == 4 {
		e.Resource = ss[3]
	}
	return e, nil
}

func (e ExecuteAPIArn) String() string {
	resource := strings.TrimPrefix(e.Resource, "/")
	if resource == "" {
		resource = AnyResource
	}
	return arn.ARN{
		Partition: Partition,
		Service:   ExecuteAPI,
		Region:    e.Region,
		AccountID: e.AccountId,
		Resource:  strings.Join([]string{e.APIId, e.Stage, e.HTTPMethod, resource}, "/"),
	}.String()
}

type ExecuteAPIArnError struct {
	Arn, Reason string
}

func (err ExecuteAPIArnError) Error() string {
	return fmt.Sprintf("%q is not an execute-api ARN: %s", err.Arn, err.Reason)
}
