package contextutil

import "context"

type key string

const (
	EventType    key = "EventType"
	FunctionName key = "FunctionName"
	RequestId    key = "RequestId"
)

func WithValues(ctx context.Context, functionName, eventType, requestId string) context.Context {
	return context.WithValue(
		context.WithValue(
			context.WithValue(
				ctx,
				FunctionName,
				functionName,
			),
			EventType,
			eventType,
		),
		RequestId,
		requestId,
	)
}

func ValueString(ctx context.Context, k key) string {
	value, _ := ctx.Value(k).(string) // let it be empty if it wants
	return value
}
