//go:build bench

package iconcss

import (
	"testing"
)

// BenchmarkBuildDeclarations benchmarks declaration block construction.
func BenchmarkBuildDeclarations(b *testing.B) {
	b.Run("mask", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = buildMaskDeclarations(testURL, "1em", DefaultCustomProperty)
		}
	})

	b.Run("background", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = buildBackgroundDeclarations(testURL, "1em")
		}
	})
}

// BenchmarkResolve benchmarks a cached resolution end to end.
func BenchmarkResolve(b *testing.B) {
	r, err := NewResolver()
	if err != nil {
		b.Fatalf("NewResolver() error = %v", err)
	}
	classes := []string{"i-shapes-check", "i-shapes-chevron-down", "i-shapes-flag-color"}

	for _, class := range classes {
		b.Run(class, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				decls, _ := r.ResolveClass(class)
				_ = decls.String()
			}
		})
	}
}
