package acorn

// List is an ordered, fixed-arity list of dependencies. It is satisfied
// only by [Nil] and [Cons]; the arity is part of the type, so a list never
// changes length at runtime.
type List[L any] interface {
	resolveList(*path) L
	walkList(*path, visitor) error
}

// Nil is the empty dependency list.
type Nil struct{}

func (Nil) resolveList(*path) Nil {
	return Nil{}
}

func (Nil) walkList(*path, visitor) error {
	return nil
}

// Cons is a dependency list with head H followed by the list T. Resolving
// a Cons resolves Head completely, including its own dependencies, before
// any element of Tail is touched.
type Cons[H Injectable[H], T List[T]] struct {
	Head H
	Tail T
}

func (Cons[H, T]) resolveList(p *path) Cons[H, T] {
	head := resolve[H](p)

	var rest T
	tail := rest.resolveList(p)

	return Cons[H, T]{Head: head, Tail: tail}
}

func (Cons[H, T]) walkList(p *path, visit visitor) error {
	if err := walk[H](p, visit); err != nil {
		return err
	}
	var rest T
	return rest.walkList(p, visit)
}
