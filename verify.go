package acorn

import "strings"

// visitor observes each type as a graph walk enters it.
type visitor func(*path)

// walk enters T and descends into its declared dependencies without
// constructing anything.
func walk[T Injectable[T]](parent *path, visit visitor) error {
	p, err := enter[T](parent)
	if err != nil {
		return err
	}
	if visit != nil {
		visit(p)
	}

	var zero T
	injector := zero.Injector()
	if injector.walk == nil {
		return undeclaredError(p)
	}
	return injector.walk(p, visit)
}

// Verify checks the dependency graph declared by T without running any
// construction function. It returns an error wrapping
// [ErrCircularDependency] or [ErrUndeclared] for a graph that [Resolve]
// would reject, and nil otherwise.
func Verify[T Injectable[T]](c Container) error {
	return walk[T](nil, nil)
}

// VerifyInvoke is [Verify] for the dependency list of the action T.
func VerifyInvoke[T Invokable[O], O any](c Container) error {
	p, err := enter[T](nil)
	if err != nil {
		return err
	}

	var action T
	invoker := action.Invoker()
	if invoker.walk == nil {
		return undeclaredError(p)
	}
	return invoker.walk(p, nil)
}

// Describe renders the dependency tree declared by T, one type per line in
// resolution order, indented two spaces per level:
//
//	app.Service
//	  app.Repository
//	    app.Config
//	  app.Logger
//
// A type that appears in several places is listed each time, since each
// position gets its own instance.
func Describe[T Injectable[T]](c Container) (string, error) {
	var b strings.Builder
	err := walk[T](nil, func(p *path) {
		b.WriteString(strings.Repeat("  ", p.depth))
		b.WriteString(p.name())
		b.WriteByte('\n')
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
