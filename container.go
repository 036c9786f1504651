package acorn

import (
	"fmt"
	"strings"
)

// Container is the entry point for resolution. It has no fields and holds
// no state: every Container behaves the same, and the zero value is ready
// to use. Resolution is driven by the generic functions [Resolve],
// [Invoke], [Run], and [Verify], which take the container as their first
// argument.
type Container struct{}

// New returns a [Container]. It is equivalent to Container{}.
func New() Container {
	return Container{}
}

// ---------------------------------------------------------------------------
// Resolution path
// ---------------------------------------------------------------------------

// path is one frame of an in-flight resolution. Frames form an immutable
// linked list from the type being built back to the root request; a frame
// lives only as long as the call that created it.
type path struct {
	key    any
	depth  int
	parent *path
}

// keyOf identifies T without reflection. Two nil *T values compare equal
// exactly when their types are identical.
func keyOf[T any]() any {
	return (*T)(nil)
}

// enter pushes T onto parent. It fails when T is already being resolved
// further up the same chain.
func enter[T any](parent *path) (*path, error) {
	key := keyOf[T]()
	for p := parent; p != nil; p = p.parent {
		if p.key == key {
			return nil, circularError(parent, key)
		}
	}

	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	return &path{key: key, depth: depth, parent: parent}, nil
}

func (p *path) name() string {
	return nameOf(p.key)
}

// String renders the chain from the root request down to p.
func (p *path) String() string {
	return strings.Join(p.chain(), " -> ")
}

func (p *path) chain() []string {
	if p == nil {
		return nil
	}
	chain := make([]string, p.depth+1)
	for q := p; q != nil; q = q.parent {
		chain[q.depth] = q.name()
	}
	return chain
}

func circularError(stack *path, key any) error {
	chain := append(stack.chain(), nameOf(key))
	return fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(chain, " -> "))
}

func undeclaredError(p *path) error {
	return fmt.Errorf("%w: %s", ErrUndeclared, p)
}

// nameOf turns a key produced by keyOf back into a readable type name.
// Only used when formatting errors and descriptions.
func nameOf(key any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", key), "*")
}
