package authorizer

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/apigateway-authorizers/authorizerutil"
	"github.com/src-bin/apigateway-authorizers/logutil"
	"github.com/src-bin/apigateway-authorizers/policies"
	"go.uber.org/zap"
)

// TokenAuthorizer allows "Bearer allow", answers 401 to "unauthorized", and
// answers 500 to anything else. Allowed callers are scoped to the exact
// methodArn API Gateway asked about.
type TokenAuthorizer struct {
	log *zap.Logger
}

func NewTokenAuthorizer(log *zap.Logger) *TokenAuthorizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &TokenAuthorizer{log: log}
}

func (a *TokenAuthorizer) Authorize(
	ctx context.Context,
	event *events.APIGatewayCustomAuthorizerRequest,
) (*Response, error) {
	log := logutil.FromContext(ctx, a.log)

	if event == nil {
		return nil, ErrInvalidToken
	}
	switch event.AuthorizationToken {

	case authorizerutil.AllowToken:
		if _, err := policies.ParseExecuteAPIArn(event.MethodArn); err != nil {
			log.Error("invalid methodArn", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrInvalidMethodArn, err)
		}
		resp, err := newResponse(policies.Allow, event.MethodArn)
		if err != nil {
			return nil, err
		}
		log.Info("authorized", zap.Stringer("effect", policies.Allow), zap.String("resource", event.MethodArn))
		return resp, nil

	case authorizerutil.UnauthorizedToken:
		log.Info("unauthorized", zap.String("resource", event.MethodArn))
		return nil, ErrUnauthorized

	default:
		log.Info("invalid token", zap.String("resource", event.MethodArn))
		return nil, ErrInvalidToken
	}
}
