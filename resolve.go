package acorn

// Resolve builds a new T. T's dependencies are resolved recursively, in
// declared order, and handed to T's construction function. Nothing is
// cached: two calls return two independent trees.
//
//	db := acorn.Resolve[Database](c)
//
// Resolve panics with an error wrapping [ErrCircularDependency] when T
// depends on itself, or [ErrUndeclared] when a type in the graph returns a
// zero [Injector]. Use [Verify] to get those as error values.
func Resolve[T Injectable[T]](c Container) T {
	return resolve[T](nil)
}

func resolve[T Injectable[T]](parent *path) T {
	p, err := enter[T](parent)
	if err != nil {
		panic(err)
	}

	var zero T
	injector := zero.Injector()
	if injector.build == nil {
		panic(undeclaredError(p))
	}
	return injector.build(p)
}
