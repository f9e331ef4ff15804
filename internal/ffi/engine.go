// Package ffi reconciles two foreign-call engines behind one set of
// primitives for calling into native shared libraries: a declarative engine
// whose C types and entry points are compiled ahead of use (cgo), and a
// dynamic engine that resolves everything by name at call time (purego).
// Upper layers never branch on which engine is active; they may read the
// engine identity for diagnostics and nothing else.
package ffi

import (
	"sync"

	"go.uber.org/zap"
)

// Engine identity values. Set exactly once during bootstrap and stable for
// the remainder of the process.
const (
	EngineCgo    = "cgo"
	EnginePurego = "purego"
)

// callEngine is the narrow surface a backend must provide. Everything else
// (buffer construction, struct copies, array decoding) is pointer arithmetic
// layered on top of it and shared by both variants.
type callEngine interface {
	name() string

	// alloc returns zero-initialized foreign memory of n bytes. The block
	// lives outside the Go heap and is never moved by the collector.
	alloc(n uintptr) uintptr
	free(p uintptr)

	// strlen and wcslen measure null-terminated foreign strings.
	strlen(p uintptr) int
	wcslen(p uintptr) int

	// wcharSize is sizeof(wchar_t) for the platform C runtime.
	wcharSize() int

	// scalarSize is sizeof() for a resolved primitive kind.
	scalarSize(k Kind) uintptr

	// errno reads the calling thread's last foreign error code.
	errno() int
}

type engineFactory struct {
	name  string
	build func() (callEngine, error)
}

// declarativeFactory is populated from a build-tag gated file when the
// binary is compiled with cgo. When nil, bootstrap goes straight to the
// dynamic engine.
var declarativeFactory *engineFactory

var (
	bootOnce   sync.Once
	activeEng  callEngine
	activeName string
	bootErr    error
)

// Init runs engine selection once and reports whether a foreign-call engine
// is available. Safe to call from multiple goroutines; every call after the
// first returns the same result.
func Init() error {
	bootOnce.Do(bootstrap)
	return bootErr
}

func bootstrap() {
	factories := make([]engineFactory, 0, 2)
	if declarativeFactory != nil {
		factories = append(factories, *declarativeFactory)
	}
	factories = append(factories, engineFactory{name: EnginePurego, build: newDynamicEngine})

	activeEng, activeName, bootErr = selectEngine(factories)
	if bootErr != nil {
		logger().Error("ffi bootstrap failed", zap.Error(bootErr))
		return
	}
	logger().Info("ffi engine selected", zap.String("engine", activeName))
}

// selectEngine probes factories in order and binds the first one that
// instantiates. Factored out of bootstrap so the fallback order is testable
// without touching process-wide state.
func selectEngine(factories []engineFactory) (callEngine, string, error) {
	var lastErr error
	for _, f := range factories {
		e, err := f.build()
		if err != nil {
			logger().Debug("ffi engine unavailable", zap.String("engine", f.name), zap.Error(err))
			lastErr = err
			continue
		}
		return e, f.name, nil
	}
	return nil, "", &FFIEngineError{Reason: "no engine could be instantiated", Err: lastErr}
}

// Engine returns the identity of the active engine, running bootstrap if it
// has not happened yet. Empty when no engine is available.
func Engine() string {
	Init()
	return activeName
}

// eng returns the active engine. Using the primitives without a successful
// bootstrap is a configuration error, not a recoverable condition, so it
// panics with the stored FFIEngineError rather than masking it.
func eng() callEngine {
	if err := Init(); err != nil {
		panic(err)
	}
	return activeEng
}

// Errno reads the last foreign-call thread-local error code set by the
// active engine's C runtime.
func Errno() int {
	return eng().errno()
}
