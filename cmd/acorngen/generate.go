package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// arity describes the helpers generated for one dependency list length.
type arity struct {
	N           int
	Names       string // D1, D2
	Constraints string // D1 Injectable[D1], D2 Injectable[D2]
	Chain       string // Cons[D1, Cons[D2, Nil]]
	Args        string // l.Head, l.Tail.Head
}

func newArity(n int) arity {
	names := make([]string, n)
	constraints := make([]string, n)
	args := make([]string, n)
	for i := range n {
		names[i] = fmt.Sprintf("D%d", i+1)
		constraints[i] = fmt.Sprintf("%s Injectable[%s]", names[i], names[i])
		args[i] = "l" + strings.Repeat(".Tail", i) + ".Head"
	}

	chain := "Nil"
	for i := n - 1; i >= 0; i-- {
		chain = fmt.Sprintf("Cons[%s, %s]", names[i], chain)
	}

	return arity{
		N:           n,
		Names:       strings.Join(names, ", "),
		Constraints: strings.Join(constraints, ", "),
		Chain:       chain,
		Args:        strings.Join(args, ", "),
	}
}

var arityTemplate = template.Must(template.New("arity").Parse(`// Code generated by acorngen. DO NOT EDIT.

package {{.Package}}
{{range .Arities}}{{if eq .N 0}}
// Inject0 declares an [Injector] without dependencies.
func Inject0[T any](inject func() T) Injector[T] {
	if inject == nil {
		return Injector[T]{}
	}
	return Inject(func(Nil) T {
		return inject()
	})
}

// Act0 declares an [Invoker] without dependencies.
func Act0[O any](act func(func(O))) Invoker[O] {
	if act == nil {
		return Invoker[O]{}
	}
	return Act(func(_ Nil, k func(O)) {
		act(k)
	})
}
{{else}}
// List{{.N}} is a dependency list of {{.N}} element{{if gt .N 1}}s{{end}}.
type List{{.N}}[{{.Constraints}}] = {{.Chain}}

// Inject{{.N}} declares an [Injector] whose dependencies are the parameters of inject.
func Inject{{.N}}[{{.Constraints}}, T any](inject func({{.Names}}) T) Injector[T] {
	if inject == nil {
		return Injector[T]{}
	}
	return Inject(func(l List{{.N}}[{{.Names}}]) T {
		return inject({{.Args}})
	})
}

// Act{{.N}} declares an [Invoker] whose dependencies are the leading parameters of act.
func Act{{.N}}[{{.Constraints}}, O any](act func({{.Names}}, func(O))) Invoker[O] {
	if act == nil {
		return Invoker[O]{}
	}
	return Act(func(l List{{.N}}[{{.Names}}], k func(O)) {
		act({{.Args}}, k)
	})
}
{{end}}{{end}}`))

// Render produces the gofmt'ed source of the arity helpers for arities 0
// through maxArity.
func Render(pkg string, maxArity int) ([]byte, error) {
	arities := make([]arity, 0, maxArity+1)
	for n := 0; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	var buf bytes.Buffer
	err := arityTemplate.Execute(&buf, struct {
		Package string
		Arities []arity
	}{pkg, arities})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
