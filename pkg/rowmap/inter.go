package rowmap

// Item is one ordered transformation step of a value pipeline. Items are
// stateless or configuration-only; an item that does not handle the incoming
// outcome returns it unchanged.
type Item[T any] interface {
	// TryMap consumes a Result and returns a new one; it never panics out,
	// conversion and validation failures become Invalid outcomes.
	TryMap(in Result[T]) Result[T]
}

// ItemFunc adapts a plain function to Item.
type ItemFunc[T any] func(in Result[T]) Result[T]

func (f ItemFunc[T]) TryMap(in Result[T]) Result[T] {
	return f(in)
}

// Fallback supplies a replacement value when a pipeline terminates in Empty
// or Invalid.
type Fallback[T any] func() T
