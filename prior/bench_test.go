package prior_test

import (
	"testing"

	"github.com/katalvlaran/lensprior/prior"
)

func BenchmarkIndependent_Sample(b *testing.B) {
	p, err := prior.NewIndependent(independentOmega(),
		[]string{prior.ComponentLensMass, prior.ComponentSrcLight}, prior.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Sample(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCovariant_Sample(b *testing.B) {
	p, err := prior.NewCovariant(covOmega(), covComponents, prior.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Sample(); err != nil {
			b.Fatal(err)
		}
	}
}
