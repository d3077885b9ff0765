package repokit

import (
	"context"
	"fmt"
	"time"
)

// GuardTimeout bounds MustGuard when ctx carries no deadline
const GuardTimeout = 5 * time.Second

// Guarder pings its backends
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard panics unless every backend of st answers. Binaries call it once
// after opening the store so a dead dependency fails the boot, not a request.
func MustGuard(ctx context.Context, st Guarder) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("store guard: %w", err))
	}
}
