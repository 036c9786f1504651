package acorn

// Injectable is satisfied by a type T that knows how to build itself from
// its dependencies. Injector is called on the zero value of T and must
// return the same declaration regardless of the receiver.
type Injectable[T any] interface {
	Injector() Injector[T]
}

// Injector pairs a dependency list with the function that builds a T from
// it. Create one with [Inject] or one of the arity helpers [Inject0]
// through [Inject16]. The zero Injector declares nothing; resolving it
// panics with [ErrUndeclared].
type Injector[T any] struct {
	build func(*path) T
	walk  func(*path, visitor) error
}

// Inject declares an [Injector] over an explicit dependency list L, built
// from [Nil] and [Cons]. The arity helpers are shorthands for this form:
//
//	acorn.Inject(func(l acorn.Cons[Config, acorn.Cons[Logger, acorn.Nil]]) Database {
//		return Database{cfg: l.Head, log: l.Tail.Head}
//	})
//
// inject must not fail through a return value; a constructor that cannot
// produce a T panics.
func Inject[L List[L], T any](inject func(L) T) Injector[T] {
	if inject == nil {
		return Injector[T]{}
	}
	return Injector[T]{
		build: func(p *path) T {
			var deps L
			return inject(deps.resolveList(p))
		},
		walk: func(p *path, visit visitor) error {
			var deps L
			return deps.walkList(p, visit)
		},
	}
}
