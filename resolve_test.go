package acorn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Run("deep dependency chain fully resolved", func(t *testing.T) {
		svc := Resolve[*testUserService](New())

		require.NotNil(t, svc.Repo)
		require.NotNil(t, svc.Repo.DB)
		require.NotNil(t, svc.Repo.DB.Config)
		assert.Equal(t, "postgres://localhost", svc.Repo.DB.Config.DSN)
		require.NotNil(t, svc.Logger)
		assert.Equal(t, "app", svc.Logger.Prefix)
	})

	t.Run("every position gets its own instance", func(t *testing.T) {
		svc := Resolve[*testUserService](New())

		assert.NotSame(t, svc.Logger, svc.Repo.Logger)
		assert.NotSame(t, svc.Repo.Logger, svc.Repo.DB.Logger)
		assert.NotSame(t, svc.Logger, svc.Repo.DB.Logger)
	})

	t.Run("resolving twice yields independent instances", func(t *testing.T) {
		c := New()
		l1 := Resolve[*testLogger](c)
		l2 := Resolve[*testLogger](c)

		require.NotSame(t, l1, l2)
		l1.Prefix = "changed"
		assert.Equal(t, "app", l2.Prefix, "mutating one instance must not affect the other")
	})

	t.Run("independent trees share nothing", func(t *testing.T) {
		c := New()
		s1 := Resolve[*testUserService](c)
		s2 := Resolve[*testUserService](c)

		s1.Repo.DB.Config.DSN = "mysql://elsewhere"
		assert.Equal(t, "postgres://localhost", s2.Repo.DB.Config.DSN)
		assert.NotSame(t, s1.Repo.DB, s2.Repo.DB)
	})

	t.Run("zero-arity type touches nothing else", func(t *testing.T) {
		r := useRecorder(t)

		x := Resolve[orderX](New())

		assert.Equal(t, []string{"X"}, r.events)
		assert.Equal(t, 1, x.Seq)
	})

	t.Run("value types resolve by value", func(t *testing.T) {
		useRecorder(t)

		a := Resolve[chainA](New())
		assert.NotEqual(t, a.B.C.ID, a.C.ID, "two chainC builds carry different ids")
	})
}

func TestResolve_RecursiveCounts(t *testing.T) {
	r := useRecorder(t)

	Resolve[chainA](New())

	assert.Equal(t, 2, r.count("C"), "C is built once for B and once for A")
	assert.Equal(t, 1, r.count("B"))
	assert.Equal(t, 1, r.count("A"))
	assert.Equal(t, []string{"C", "B", "C", "A"}, r.events,
		"dependencies are built head first, parents after their dependencies")
}

func TestResolve_Order(t *testing.T) {
	t.Run("declared order X then Y", func(t *testing.T) {
		r := useRecorder(t)

		p := Resolve[pairXY](New())

		assert.Equal(t, []string{"X", "Y"}, r.events)
		assert.Less(t, p.X.Seq, p.Y.Seq)
	})

	t.Run("declared order Y then X", func(t *testing.T) {
		r := useRecorder(t)

		p := Resolve[pairYX](New())

		assert.Equal(t, []string{"Y", "X"}, r.events)
		assert.Less(t, p.Y.Seq, p.X.Seq)
	})
}

// ---------------------------------------------------------------------------
// Failures
// ---------------------------------------------------------------------------

func TestResolve_CircularDependency(t *testing.T) {
	t.Run("three-type cycle reports full chain", func(t *testing.T) {
		r := useRecorder(t)

		err := mustPanicWith(t, ErrCircularDependency, func() {
			Resolve[*testCircA](New())
		})

		assert.Contains(t, err.Error(),
			"*acorn.testCircA -> *acorn.testCircB -> *acorn.testCircC -> *acorn.testCircA")
		assert.Empty(t, r.events, "nothing on the cycle gets built")
	})

	t.Run("cycle entered mid-chain", func(t *testing.T) {
		err := mustPanicWith(t, ErrCircularDependency, func() {
			Resolve[*testCircB](New())
		})
		assert.Contains(t, err.Error(),
			"*acorn.testCircB -> *acorn.testCircC -> *acorn.testCircA -> *acorn.testCircB")
	})

	t.Run("self reference", func(t *testing.T) {
		err := mustPanicWith(t, ErrCircularDependency, func() {
			Resolve[*selfRef](New())
		})
		assert.Contains(t, err.Error(), "*acorn.selfRef -> *acorn.selfRef")
	})
}

func TestResolve_Undeclared(t *testing.T) {
	t.Run("zero injector at the root", func(t *testing.T) {
		err := mustPanicWith(t, ErrUndeclared, func() {
			Resolve[undeclared](New())
		})
		assert.Contains(t, err.Error(), "acorn.undeclared")
	})

	t.Run("zero injector as a dependency", func(t *testing.T) {
		err := mustPanicWith(t, ErrUndeclared, func() {
			Resolve[needsUndeclared](New())
		})
		assert.Contains(t, err.Error(), "acorn.needsUndeclared -> acorn.undeclared")
	})
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

func TestResolve_Concurrent(t *testing.T) {
	c := New()

	const goroutines = 100
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[*testUserService]struct{}, goroutines)
	)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := Resolve[*testUserService](c)
			if svc.Repo == nil || svc.Repo.DB == nil || svc.Logger == nil {
				t.Errorf("incomplete service: %+v", svc)
				return
			}

			mu.Lock()
			seen[svc] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()
	assert.Len(t, seen, goroutines, "every goroutine gets its own instance")
}
