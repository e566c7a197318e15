package context

import (
	"context"

	"github.com/muhammadheryan/inventory-service/constant"
)

// GetActor returns the authenticated actor stored by the auth middleware.
func GetActor(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return "", false
	}
	actor, ok := v.(string)
	return actor, ok && actor != ""
}

// WithActor stores the actor on the context.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

// ActorOrSystem falls back to the system actor for background callers.
func ActorOrSystem(ctx context.Context) string {
	if actor, ok := GetActor(ctx); ok {
		return actor
	}
	return constant.ActorSystem
}
