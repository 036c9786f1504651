package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArity(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		a := newArity(0)
		assert.Equal(t, "Nil", a.Chain)
		assert.Empty(t, a.Names)
		assert.Empty(t, a.Args)
	})

	t.Run("three", func(t *testing.T) {
		a := newArity(3)
		assert.Equal(t, 3, a.N)
		assert.Equal(t, "D1, D2, D3", a.Names)
		assert.Equal(t, "D1 Injectable[D1], D2 Injectable[D2], D3 Injectable[D3]", a.Constraints)
		assert.Equal(t, "Cons[D1, Cons[D2, Cons[D3, Nil]]]", a.Chain)
		assert.Equal(t, "l.Head, l.Tail.Head, l.Tail.Tail.Head", a.Args)
	})
}

func TestRender(t *testing.T) {
	t.Run("output parses as Go", func(t *testing.T) {
		src, err := Render("acorn", 4)
		require.NoError(t, err)

		f, err := parser.ParseFile(token.NewFileSet(), "arity_gen.go", src, parser.ParseComments)
		require.NoError(t, err)
		assert.Equal(t, "acorn", f.Name.Name)
	})

	t.Run("generates every arity up to max", func(t *testing.T) {
		src, err := Render("acorn", 3)
		require.NoError(t, err)
		code := string(src)

		for _, fn := range []string{"func Inject0[", "func Act0[", "func Inject3[", "func Act3[", "type List3["} {
			assert.Contains(t, code, fn)
		}
		assert.NotContains(t, code, "Inject4")
		assert.NotContains(t, code, "type List0")
	})

	t.Run("marks the file as generated", func(t *testing.T) {
		src, err := Render("acorn", 1)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), "// Code generated by acorngen. DO NOT EDIT."))
	})

	t.Run("custom package", func(t *testing.T) {
		src, err := Render("resolver", 1)
		require.NoError(t, err)
		assert.Contains(t, string(src), "package resolver\n")
	})

	t.Run("invalid package fails formatting", func(t *testing.T) {
		_, err := Render("not a package", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "formatting generated source")
	})

	t.Run("checked-in file is up to date", func(t *testing.T) {
		want, err := os.ReadFile(filepath.Join("..", "..", "arity_gen.go"))
		require.NoError(t, err)

		got, err := Render("acorn", maxSupportedArity)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "run go generate in the module root")
	})
}
