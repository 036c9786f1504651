package acorn

import "testing"

func BenchmarkResolve_Leaf(b *testing.B) {
	c := New()
	for b.Loop() {
		Resolve[*testLogger](c)
	}
}

func BenchmarkResolve_Chain(b *testing.B) {
	c := New()
	for b.Loop() {
		Resolve[*testUserService](c)
	}
}

func BenchmarkInvoke(b *testing.B) {
	c := New()
	k := func(int) {}
	for b.Loop() {
		Invoke[seedSum](c, k)
	}
}

func BenchmarkVerify(b *testing.B) {
	c := New()
	for b.Loop() {
		_ = Verify[*testUserService](c)
	}
}
