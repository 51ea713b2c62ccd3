package utils

import (
	"context"
	"panel-service/internal/pkg/constvars"
)

func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetOwnerIdentityFromContext(ctx context.Context) string {
	owner, _ := ctx.Value(constvars.CONTEXT_OWNER_IDENTITY_KEY).(string)
	return owner
}

func SetOwnerIdentityToContext(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_OWNER_IDENTITY_KEY, owner)
}
