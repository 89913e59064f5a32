package audit

import (
	"context"
	"time"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
)

// now is swapped in tests.
var now = time.Now

// Stamped wraps a mutating persistence call. When rec carries audit fields it
// resolves the actor from ctx, stamps rec according to intent, then invokes
// next. Records without audit fields pass through untouched. Errors from next
// propagate unchanged; this layer never retries and never masks failures.
func Stamped(ctx context.Context, intent Intent, rec any, next func(context.Context) error) error {
	if auditable, ok := rec.(Auditable); ok {
		actor, ok := ActorFrom(ctx)
		if !ok {
			return domainErrors.ErrMissingActor
		}
		merge(auditable.Audit(), intent, Stamp(intent, actor, now()))
	}
	return next(ctx)
}
