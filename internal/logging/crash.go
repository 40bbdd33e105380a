package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack trace and system info, then
// re-panics. It must be deferred directly:
//
//	defer logging.RecoverPanic(ctx)
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Str("panic", fmt.Sprint(r)).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")

	// Re-panic to maintain normal panic behavior
	panic(r)
}
