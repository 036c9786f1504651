package acorn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared test types and constructors used across test files.

// mustPanicWith runs fn, requires it to panic with an error matching target
// and returns that error.
func mustPanicWith(t *testing.T, target error, fn func()) error {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.Truef(t, ok, "panic value %v is not an error", recovered)
	require.ErrorIs(t, err, target)
	return err
}

// ---------------------------------------------------------------------------
// Recorder
// ---------------------------------------------------------------------------

// recorder collects construction side effects. Construction functions are
// declared on types, not closures, so they report to a package variable;
// tests using it must not run in parallel.
type recorder struct {
	events []string
}

var rec recorder

// useRecorder resets the shared recorder for the duration of t.
func useRecorder(t *testing.T) *recorder {
	t.Helper()
	rec.events = nil
	t.Cleanup(func() { rec.events = nil })
	return &rec
}

func (r *recorder) record(event string) {
	r.events = append(r.events, event)
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Layered service fixtures
// ---------------------------------------------------------------------------

type testLogger struct{ Prefix string }
type testConfig struct{ DSN string }

type testDatabase struct {
	Config *testConfig
	Logger *testLogger
}

type testUserRepo struct {
	DB     *testDatabase
	Logger *testLogger
}

type testUserService struct {
	Repo   *testUserRepo
	Logger *testLogger
}

func newTestLogger() *testLogger { return &testLogger{Prefix: "app"} }
func newTestConfig() *testConfig { return &testConfig{DSN: "postgres://localhost"} }

func newTestDatabase(cfg *testConfig, log *testLogger) *testDatabase {
	return &testDatabase{Config: cfg, Logger: log}
}

func newTestUserRepo(db *testDatabase, log *testLogger) *testUserRepo {
	return &testUserRepo{DB: db, Logger: log}
}

func newTestUserService(repo *testUserRepo, log *testLogger) *testUserService {
	return &testUserService{Repo: repo, Logger: log}
}

func (*testLogger) Injector() Injector[*testLogger]           { return Inject0(newTestLogger) }
func (*testConfig) Injector() Injector[*testConfig]           { return Inject0(newTestConfig) }
func (*testDatabase) Injector() Injector[*testDatabase]       { return Inject2(newTestDatabase) }
func (*testUserRepo) Injector() Injector[*testUserRepo]       { return Inject2(newTestUserRepo) }
func (*testUserService) Injector() Injector[*testUserService] { return Inject2(newTestUserService) }

// ---------------------------------------------------------------------------
// Recording fixtures
// ---------------------------------------------------------------------------

// chainC <- chainB <- chainA, and chainA also needs its own chainC.
type chainC struct{ ID int }
type chainB struct{ C chainC }

type chainA struct {
	B chainB
	C chainC
}

func (chainC) Injector() Injector[chainC] {
	return Inject0(func() chainC {
		rec.record("C")
		return chainC{ID: len(rec.events)}
	})
}

func (chainB) Injector() Injector[chainB] {
	return Inject1(func(c chainC) chainB {
		rec.record("B")
		return chainB{C: c}
	})
}

func (chainA) Injector() Injector[chainA] {
	return Inject2(func(b chainB, c chainC) chainA {
		rec.record("A")
		return chainA{B: b, C: c}
	})
}

// orderX and orderY record a sequence id when built.
type orderX struct{ Seq int }
type orderY struct{ Seq int }

func (orderX) Injector() Injector[orderX] {
	return Inject0(func() orderX {
		rec.record("X")
		return orderX{Seq: len(rec.events)}
	})
}

func (orderY) Injector() Injector[orderY] {
	return Inject0(func() orderY {
		rec.record("Y")
		return orderY{Seq: len(rec.events)}
	})
}

type pairXY struct {
	X orderX
	Y orderY
}

type pairYX struct {
	Y orderY
	X orderX
}

func (pairXY) Injector() Injector[pairXY] {
	return Inject2(func(x orderX, y orderY) pairXY { return pairXY{X: x, Y: y} })
}

func (pairYX) Injector() Injector[pairYX] {
	return Inject2(func(y orderY, x orderX) pairYX { return pairYX{Y: y, X: x} })
}

// ---------------------------------------------------------------------------
// Action fixtures
// ---------------------------------------------------------------------------

type seedA struct{ N int }
type seedB struct{ N int }

func (seedA) Injector() Injector[seedA] { return Inject0(func() seedA { return seedA{N: 10} }) }
func (seedB) Injector() Injector[seedB] { return Inject0(func() seedB { return seedB{N: 32} }) }

// seedSum adds its two dependencies.
type seedSum struct{}

func (seedSum) Invoker() Invoker[int] {
	return Act2(func(a seedA, b seedB, k func(int)) {
		k(a.N + b.N)
	})
}

// describedAction is both an action and, on paper, a value. Invoking it
// must never build the value.
type describedAction struct{}

func (describedAction) Injector() Injector[describedAction] {
	return Inject0(func() describedAction {
		rec.record("action built")
		return describedAction{}
	})
}

func (describedAction) Invoker() Invoker[string] {
	return Act1(func(x orderX, k func(string)) {
		rec.record("action ran")
		k("done")
	})
}

// twiceAction calls its continuation twice.
type twiceAction struct{}

func (twiceAction) Invoker() Invoker[int] {
	return Act0(func(k func(int)) {
		k(1)
		k(2)
	})
}

// escaped holds a continuation smuggled out of escapingAction.
var escaped func(int)

type escapingAction struct{}

func (escapingAction) Invoker() Invoker[int] {
	return Act0(func(k func(int)) {
		escaped = k
	})
}

// silentAction never calls its continuation.
type silentAction struct{}

func (silentAction) Invoker() Invoker[int] {
	return Act1(func(orderX, func(int)) {})
}

// ---------------------------------------------------------------------------
// Broken graphs
// ---------------------------------------------------------------------------

type testCircA struct{ B *testCircB }
type testCircB struct{ C *testCircC }
type testCircC struct{ A *testCircA }

func (*testCircA) Injector() Injector[*testCircA] {
	return Inject1(func(b *testCircB) *testCircA { return &testCircA{B: b} })
}

func (*testCircB) Injector() Injector[*testCircB] {
	return Inject1(func(c *testCircC) *testCircB { return &testCircB{C: c} })
}

func (*testCircC) Injector() Injector[*testCircC] {
	return Inject1(func(a *testCircA) *testCircC {
		rec.record("circ C built")
		return &testCircC{A: a}
	})
}

type selfRef struct{ Inner *selfRef }

func (*selfRef) Injector() Injector[*selfRef] {
	return Inject1(func(s *selfRef) *selfRef { return &selfRef{Inner: s} })
}

type undeclared struct{}

func (undeclared) Injector() Injector[undeclared] { return Injector[undeclared]{} }

type needsUndeclared struct{ U undeclared }

func (needsUndeclared) Injector() Injector[needsUndeclared] {
	return Inject1(func(u undeclared) needsUndeclared { return needsUndeclared{U: u} })
}

type undeclaredAction struct{}

func (undeclaredAction) Invoker() Invoker[int] { return Act0[int](nil) }

type cyclicAction struct{}

func (cyclicAction) Invoker() Invoker[string] {
	return Act1(func(a *testCircA, k func(string)) { k("unreachable") })
}
