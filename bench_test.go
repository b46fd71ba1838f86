package signpost

import (
	"context"
	"testing"
)

func BenchmarkEvent(b *testing.B) {
	b.Run("nop-backend", func(b *testing.B) {
		handle := New("bench", WithEmitter(NopEmitter{}))
		defer handle.Close()

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			handle.Event("Events", "marker", Info)
		}
	})

	b.Run("runtime-trace-disabled", func(b *testing.B) {
		handle := New("bench")
		defer handle.Close()

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			handle.Event("Events", "marker", Info)
		}
	})
}

func BenchmarkWithInterval(b *testing.B) {
	ctx := context.Background()

	b.Run("nop-backend", func(b *testing.B) {
		handle := New("bench", WithEmitter(NopEmitter{}))
		defer handle.Close()

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = handle.WithInterval(ctx, "Work", "step", Moderate,
				func(context.Context) error {
					return nil
				})
		}
	})

	b.Run("collector-backend", func(b *testing.B) {
		collector := NewCollector("bench", 1024)
		defer collector.Close()
		handle := New("bench", WithEmitter(collector))
		defer handle.Close()

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = handle.WithInterval(ctx, "Work", "step", Moderate,
				func(context.Context) error {
					return nil
				})
		}
	})
}
