package acorn

import "fmt"

// Invokable is satisfied by an action type that needs resolved dependencies
// and produces an O, without producing a value of its own type. Invoker is
// called on the zero value of the type; the action type is never built.
type Invokable[O any] interface {
	Invoker() Invoker[O]
}

// Invoker pairs a dependency list with an action that consumes it and
// delivers an O to a continuation. Create one with [Act] or one of the
// arity helpers [Act0] through [Act16].
type Invoker[O any] struct {
	run  func(*path, func(O))
	walk func(*path, visitor) error
}

// Act declares an [Invoker] over an explicit dependency list L, built from
// [Nil] and [Cons].
func Act[L List[L], O any](act func(L, func(O))) Invoker[O] {
	if act == nil {
		return Invoker[O]{}
	}
	return Invoker[O]{
		run: func(p *path, k func(O)) {
			var deps L
			act(deps.resolveList(p), k)
		},
		walk: func(p *path, visit visitor) error {
			var deps L
			return deps.walkList(p, visit)
		},
	}
}

// Invoke resolves the dependencies of the action T and runs it. The output
// is passed to k, which is called at most once and only before Invoke
// returns. A nil k discards the output.
//
//	acorn.Invoke[Report](c, func(r string) { fmt.Println(r) })
//
// The dependency instances belong to the action; Invoke keeps nothing.
// Besides the panics documented on [Resolve], Invoke arranges for the
// continuation to panic with [ErrContinuationReused] on a second call and
// with [ErrContinuationEscaped] when called after Invoke returned.
func Invoke[T Invokable[O], O any](c Container, k func(O)) {
	p, err := enter[T](nil)
	if err != nil {
		panic(err)
	}

	var action T
	invoker := action.Invoker()
	if invoker.run == nil {
		panic(undeclaredError(p))
	}

	if k == nil {
		k = func(O) {}
	}
	cont := &continuation[O]{deliver: k, owner: p}
	defer cont.expire()

	invoker.run(p, cont.call)
}

// Run invokes the action T and discards its output. The output type has to
// be spelled out since there is no continuation to infer it from:
//
//	acorn.Run[Migrate, int](c)
func Run[T Invokable[O], O any](c Container) {
	Invoke[T, O](c, nil)
}

// continuation guards a single-use callback.
type continuation[O any] struct {
	deliver func(O)
	owner   *path
	called  bool
	expired bool
}

func (c *continuation[O]) call(out O) {
	switch {
	case c.expired:
		panic(fmt.Errorf("%w: %s", ErrContinuationEscaped, c.owner))
	case c.called:
		panic(fmt.Errorf("%w: %s", ErrContinuationReused, c.owner))
	}
	c.called = true
	c.deliver(out)
}

func (c *continuation[O]) expire() {
	c.expired = true
}
