package convert

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/spf13/cast"

	"github.com/ib-77/rowmap/pkg/rowmap"
)

// Func turns raw cell text into a typed value.
type Func[T any] func(text string) (T, error)

var (
	mu     sync.RWMutex
	custom = map[reflect.Type]any{}
)

// Register installs a custom converter for T, taking precedence over the
// built-ins. Meant for the configuration phase, before mapping starts.
func Register[T any](fn Func[T]) {
	if fn == nil {
		panic(fmt.Errorf("convert: nil converter: %w", rowmap.ErrNullConfiguration))
	}
	mu.Lock()
	custom[typeOf[T]()] = fn
	mu.Unlock()
}

// For selects the converter for T: a registered custom one first, then a
// built-in. Returns nil when T has no converter; callers decide whether that
// is fatal at their configuration point.
func For[T any]() Func[T] {
	mu.RLock()
	fn, ok := custom[typeOf[T]()]
	mu.RUnlock()
	if ok {
		return fn.(Func[T])
	}
	return builtin[T]()
}

// MustFor is For, panicking when no converter exists for T.
func MustFor[T any]() Func[T] {
	fn := For[T]()
	if fn == nil {
		var zero T
		panic(fmt.Errorf("convert: no converter for %T", zero))
	}
	return fn
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// builtin covers the primitive shapes a spreadsheet cell usually maps to.
// Numeric, boolean, time and duration parsing is delegated to spf13/cast,
// which already understands the common textual layouts.
func builtin[T any]() Func[T] {
	var zero T
	switch any(zero).(type) {
	case string:
		return func(s string) (T, error) { return any(s).(T), nil }
	case bool:
		return lift[T](cast.ToBoolE)
	case int:
		return lift[T](cast.ToIntE)
	case int8:
		return lift[T](cast.ToInt8E)
	case int16:
		return lift[T](cast.ToInt16E)
	case int32:
		return lift[T](cast.ToInt32E)
	case int64:
		return lift[T](cast.ToInt64E)
	case uint:
		return lift[T](cast.ToUintE)
	case uint8:
		return lift[T](cast.ToUint8E)
	case uint16:
		return lift[T](cast.ToUint16E)
	case uint32:
		return lift[T](cast.ToUint32E)
	case uint64:
		return lift[T](cast.ToUint64E)
	case float32:
		return lift[T](cast.ToFloat32E)
	case float64:
		return lift[T](cast.ToFloat64E)
	case time.Time:
		return lift[T](cast.ToTimeE)
	case time.Duration:
		return lift[T](cast.ToDurationE)
	default:
		return nil
	}
}

func lift[T, V any](fn func(any) (V, error)) Func[T] {
	return func(s string) (T, error) {
		v, err := fn(s)
		if err != nil {
			var zero T
			return zero, err
		}
		return any(v).(T), nil
	}
}
