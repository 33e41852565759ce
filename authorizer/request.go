// Package authorizer implements fixed-rule API Gateway Lambda authorizers.
// Neither authorizer verifies a real credential; they exist to exercise the
// authorizer contract end to end.
package authorizer

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/apigateway-authorizers/authorizerutil"
	"github.com/src-bin/apigateway-authorizers/logutil"
	"github.com/src-bin/apigateway-authorizers/policies"
	"github.com/src-bin/apigateway-authorizers/regions"
	"go.uber.org/zap"
	validator "gopkg.in/go-playground/validator.v9"
)

// RequestAuthorizer allows the request when its QueryString1 query parameter
// is exactly queryValue1 and denies it otherwise. The decision covers every
// resource under the invoked stage and method.
type RequestAuthorizer struct {
	region   string
	log      *zap.Logger
	validate *validator.Validate
}

// NewRequestAuthorizer returns a RequestAuthorizer that puts region in the
// ARNs it builds. An empty region is allowed and leaves that ARN segment
// empty.
func NewRequestAuthorizer(region string, log *zap.Logger) *RequestAuthorizer {
	if log == nil {
		log = zap.NewNop()
	}
	if region == "" {
		log.Warn("no AWS region configured; policy resources will have an empty region")
	} else if !regions.IsRegion(region) {
		log.Warn("unrecognized AWS region; using it verbatim", zap.String("region", region))
	}
	return &RequestAuthorizer{
		region:   region,
		log:      log,
		validate: validator.New(),
	}
}

type methodContext struct {
	AccountId  string `validate:"required"`
	APIId      string `validate:"required"`
	Stage      string `validate:"required"`
	HTTPMethod string `validate:"required"`
}

// Authorize never fails because of the query string: a missing map or
// parameter is a Deny. It does fail when the request context is missing
// anything needed to build the resource ARN, because no policy can be
// written for an unidentifiable method.
func (a *RequestAuthorizer) Authorize(
	ctx context.Context,
	event *events.APIGatewayCustomAuthorizerRequestTypeRequest,
) (*Response, error) {
	log := logutil.FromContext(ctx, a.log)

	if event == nil {
		log.Error("no event")
		return nil, ErrInvalidRequestContext
	}
	mc := methodContext{
		AccountId:  event.RequestContext.AccountID,
		APIId:      event.RequestContext.APIID,
		Stage:      event.RequestContext.Stage,
		HTTPMethod: event.RequestContext.HTTPMethod,
	}
	if err := a.validate.Struct(mc); err != nil {
		log.Error("invalid request context", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequestContext, err)
	}

	value, ok := event.QueryStringParameters[authorizerutil.QueryStringName] // nil map reads are fine
	effect := policies.AllowOrDeny(ok && value == authorizerutil.QueryStringValue)

	resource := policies.ExecuteAPIArn{
		Region:     a.region,
		AccountId:  mc.AccountId,
		APIId:      mc.APIId,
		Stage:      mc.Stage,
		HTTPMethod: mc.HTTPMethod,
		Resource:   policies.AnyResource,
	}.String()

	resp, err := newResponse(effect, resource)
	if err != nil {
		return nil, err
	}
	log.Info(
		"authorized",
		zap.Stringer("effect", effect),
		zap.String("principalId", resp.PrincipalId),
		zap.String("resource", resource),
		zap.Bool("queryStringPresent", ok),
		zap.String("sourceIp", event.RequestContext.Identity.SourceIP),
	)
	return resp, nil
}
