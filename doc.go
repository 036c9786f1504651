// Package acorn provides static, registry-free dependency resolution for Go.
//
// A type becomes resolvable by declaring, through an Injector method, which
// other types it needs and how to build itself from them. The dependency
// list is the parameter list of the construction function; the compiler
// checks that every parameter type is itself resolvable. There is no
// registration step, no reflection, and no cached instance: every call to
// [Resolve] builds a fresh object tree owned by the caller.
//
// # Quick Start
//
//	type Config struct{ DSN string }
//
//	func (Config) Injector() acorn.Injector[Config] {
//		return acorn.Inject0(func() Config { return Config{DSN: "postgres://localhost"} })
//	}
//
//	type Database struct{ cfg Config }
//
//	func (Database) Injector() acorn.Injector[Database] {
//		return acorn.Inject1(func(cfg Config) Database { return Database{cfg: cfg} })
//	}
//
//	db := acorn.Resolve[Database](acorn.New())
//
// Dependencies are resolved in declared order, head before tail. The
// Injector method is called on the zero value of the type and must not read
// its receiver.
//
// # Actions
//
// An [Invokable] type describes an action rather than a value. It declares
// dependencies the same way and delivers its output to a continuation:
//
//	type Report struct{}
//
//	func (Report) Invoker() acorn.Invoker[string] {
//		return acorn.Act1(func(db Database, k func(string)) { k(db.cfg.DSN) })
//	}
//
//	acorn.Invoke[Report](c, func(dsn string) { fmt.Println(dsn) })
//
// The continuation runs at most once, before [Invoke] returns. Calling it
// twice, or after Invoke has returned, panics.
//
// # Failures
//
// A type without an Injector method cannot be named as a dependency; the
// program does not compile. A cyclic declaration compiles, but resolving it
// panics with an error wrapping [ErrCircularDependency] that names the full
// chain. [Verify] reports the same problems as an error without building
// anything.
//
// # Arity
//
// [Inject0] through [Inject16] and [Act0] through [Act16] are generated by
// cmd/acorngen. Longer lists can be written directly with [Inject] and
// [Cons].
package acorn

//go:generate go run ./cmd/acorngen -out arity_gen.go -max 16
