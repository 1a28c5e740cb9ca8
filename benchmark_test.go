package lotto649

import (
	"context"
	"strconv"
	"testing"
)

func BenchmarkEngineNext(b *testing.B) {
	e := NewEngine(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Next()
	}
}

func BenchmarkSamplerDraw(b *testing.B) {
	s, err := NewSampler(DefaultRule(), NewEngine(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Draw()
	}
}

func BenchmarkFingerprint(b *testing.B) {
	ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Fingerprint(ticket)
	}
}

func BenchmarkGuardInsert(b *testing.B) {
	g := NewGuard()
	e := NewEngine(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Insert(e.Next())
	}
}

func BenchmarkGuardContains(b *testing.B) {
	g := NewGuard()
	e := NewEngine(1)
	for i := 0; i < 100000; i++ {
		g.Insert(e.Next())
	}

	probe := NewEngine(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Contains(probe.Next())
	}
}

func BenchmarkGenerate(b *testing.B) {
	for _, count := range []int{1, 10, 100, 1000} {
		b.Run(strconv.Itoa(count), func(b *testing.B) {
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				gen, err := NewGeneratorWithLogger(NewEngine(uint64(i)), NewSilentLogger())
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if _, err := gen.Generate(ctx, count); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSecureSourceNext(b *testing.B) {
	src := NewSecureSource()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := src.NextChecked(); err != nil {
			b.Fatal(err)
		}
	}
}
