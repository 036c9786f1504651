package acorn

import "errors"

var (
	// ErrCircularDependency is raised when a type depends on itself, directly
	// or transitively. The error message includes the full chain.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrUndeclared is raised when a type returns a zero Injector or Invoker,
	// so there is no construction function to call.
	ErrUndeclared = errors.New("dependency not declared")

	// ErrContinuationReused is raised when an action calls its continuation
	// more than once.
	ErrContinuationReused = errors.New("continuation already called")

	// ErrContinuationEscaped is raised when a continuation is called after
	// the Invoke that created it has returned.
	ErrContinuationEscaped = errors.New("continuation called after invoke returned")
)
