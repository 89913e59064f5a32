package audit

import "context"

type actorKey struct{}

// WithActor binds the authenticated actor to the request context. The binding
// lives exactly as long as the context, so it can never leak across requests.
func WithActor(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFrom returns the actor bound to ctx, if any.
func ActorFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorKey{}).(int64)
	return id, ok
}
