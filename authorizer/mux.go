package authorizer

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/src-bin/apigateway-authorizers/contextutil"
	"github.com/src-bin/apigateway-authorizers/lambdautil"
	"github.com/src-bin/apigateway-authorizers/logutil"
	"go.uber.org/zap"
)

// Mux is a lambda.Handler that serves both request and token authorizers
// from one function by looking at the event's type.
type Mux struct {
	Request func(
		context.Context,
		*events.APIGatewayCustomAuthorizerRequestTypeRequest,
	) (*Response, error)
	Token func(
		context.Context,
		*events.APIGatewayCustomAuthorizerRequest,
	) (*Response, error)
	Log *zap.Logger
}

// NewMux wires a RequestAuthorizer and a TokenAuthorizer into a Mux.
func NewMux(region string, log *zap.Logger) *Mux {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mux{
		Request: NewRequestAuthorizer(region, log).Authorize,
		Token:   NewTokenAuthorizer(log).Authorize,
		Log:     log,
	}
}

func (mux *Mux) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	var event lambdautil.AuthorizerEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		mux.log().Error("cannot decode event", zap.Error(err))
		return nil, err
	}

	var requestId string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestId = lc.AwsRequestID
	}
	if requestId == "" {
		requestId = event.RequestContext.RequestID
	}
	ctx = contextutil.WithValues(ctx, lambdacontext.FunctionName, event.EventType(), requestId)

	var (
		response *Response
		err      error
	)
	switch t := event.EventType(); t {
	case lambdautil.RequestEventType:
		response, err = mux.Request(ctx, event.RequestEvent())
	case lambdautil.TokenEventType:
		response, err = mux.Token(ctx, event.TokenEvent())
	default:
		err = lambdautil.UnsupportedEventTypeError(t)
		logutil.FromContext(ctx, mux.log()).Error("cannot dispatch event", zap.Error(err))
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(response)
}

func (mux *Mux) log() *zap.Logger {
	if mux.Log == nil {
		return zap.NewNop()
	}
	return mux.Log
}
