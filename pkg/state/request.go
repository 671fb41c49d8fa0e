package state

import (
	"context"
)

const (
	CurrentRequestID = "CurrentRequestID"
	CurrentClientIP  = "CurrentIP"
	RequestIDHeader  = "X-Request-ID"
)

// RequestID returns the request id stored in the context, or "".
func RequestID(ctx context.Context) string {
	value := ctx.Value(CurrentRequestID)
	if value == nil {
		return ""
	}

	requestID, ok := value.(string)
	if !ok {
		return ""
	}

	return requestID
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CurrentRequestID, requestID)
}
