// Package typename resolves fully qualified Go type names with caching.
// The runtime uses it to derive message routing kinds from Go types, so
// lookups happen on every dispatch and must be cheap.
package typename

import (
	"reflect"
	"sync"
)

// cacheLimit bounds the name cache. A program declares a bounded, small set
// of message types, so the limit exists only as a safety valve; when hit,
// the cache is reset.
const cacheLimit = 1024

var (
	mu    sync.RWMutex
	names = make(map[reflect.Type]string)
)

// Of returns the fully qualified name ("pkg/path.TypeName") of x's dynamic
// type. Pointer types are unwrapped to their element type.
func Of(x any) string {
	return ForType(reflect.TypeOf(x))
}

// For returns the fully qualified name of type parameter T.
func For[T any]() string {
	return ForType(reflect.TypeOf((*T)(nil)).Elem())
}

// ForType returns the fully qualified name of t. Results are cached;
// safe for concurrent use.
func ForType(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	mu.RLock()
	name, ok := names[t]
	mu.RUnlock()
	if ok {
		return name
	}

	name = t.PkgPath() + "." + t.Name()

	mu.Lock()
	if len(names) >= cacheLimit {
		names = make(map[reflect.Type]string)
	}
	names[t] = name
	mu.Unlock()

	return name
}
