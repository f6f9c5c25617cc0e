package actions

import "github.com/DedS3t/monopoly-backend/app/models"

// Source is what a deferred field is computed from at dispatch time.
type Source struct {
	State  models.GameState
	Config models.Config
}

// Field is either a concrete value or a function of the state it will be
// dispatched against. The zero Field is unset.
type Field[T any] struct {
	value    T
	deferred func(Source) T
	set      bool
}

func Value[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

func Deferred[T any](fn func(Source) T) Field[T] {
	return Field[T]{deferred: fn, set: true}
}

// Or returns f when it is set and fallback otherwise.
func (f Field[T]) Or(fallback Field[T]) Field[T] {
	if f.set {
		return f
	}
	return fallback
}

func (f Field[T]) IsSet() bool {
	return f.set
}

func (f Field[T]) IsDeferred() bool {
	return f.deferred != nil
}

// Resolve returns the concrete value, evaluating a deferred field against src.
func (f Field[T]) Resolve(src Source) T {
	if f.deferred != nil {
		return f.deferred(src)
	}
	return f.value
}

// Optional turns a nil pointer into an unset field.
func Optional[T any](v *T) Field[T] {
	if v == nil {
		return Field[T]{}
	}
	return Value(*v)
}
