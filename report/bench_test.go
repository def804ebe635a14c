package report

import (
	"fmt"
	"io"
	"testing"

	"github.com/jonwraymond/goinspect/docfmt"
	"github.com/jonwraymond/goinspect/member"
)

func makeBenchTarget(n int) *member.Static {
	items := make([]member.Member, n)
	for i := range items {
		switch i % 4 {
		case 0:
			items[i] = member.Member{
				Name:     fmt.Sprintf("Helper%d", i),
				Kind:     member.KindCallable,
				TypeName: "func(xs ...int) int",
				Doc:      fmt.Sprintf("Helper%d folds batches of inputs and reports the total.", i),
			}
		case 1:
			items[i] = member.Member{
				Name:     fmt.Sprintf("Limit%d", i),
				Kind:     member.KindData,
				TypeName: "int",
				Repr:     fmt.Sprintf("%d", i*10),
			}
		case 2:
			items[i] = member.Member{
				Name:     fmt.Sprintf("Record%d", i),
				Kind:     member.KindType,
				TypeName: "struct",
				Doc:      fmt.Sprintf("Record%d carries one sample.", i),
			}
		case 3:
			items[i] = member.Member{
				Name:     fmt.Sprintf("sub%d", i),
				Kind:     member.KindModule,
				TypeName: "package",
			}
		}
	}
	return &member.Static{
		DisplayName: "mathkit",
		RuntimeType: "package",
		DocText:     "Package mathkit provides small arithmetic helpers for folding and averaging batches of numbers.",
		ModuleLike:  true,
		Items:       items,
	}
}

func BenchmarkBuild(b *testing.B) {
	target := makeBenchTarget(200)
	opts := Options{Detail: docfmt.DetailLine}

	b.ResetTimer()
	for b.Loop() {
		_, _ = Build(target, opts)
	}
}

func BenchmarkBuild_VaryingSize(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("members_%d", size), func(b *testing.B) {
			target := makeBenchTarget(size)
			opts := Options{Detail: docfmt.DetailLine}

			b.ResetTimer()
			for b.Loop() {
				_, _ = Build(target, opts)
			}
		})
	}
}

func BenchmarkBuild_VaryingDetail(b *testing.B) {
	target := makeBenchTarget(200)
	levels := []docfmt.DetailLevel{docfmt.DetailNames, docfmt.DetailLine, docfmt.DetailBlock, docfmt.DetailFull}

	for _, level := range levels {
		b.Run(fmt.Sprintf("detail_%d", int(level)), func(b *testing.B) {
			opts := Options{Detail: level}

			b.ResetTimer()
			for b.Loop() {
				_, _ = Build(target, opts)
			}
		})
	}
}

func BenchmarkReport_String(b *testing.B) {
	r, err := Build(makeBenchTarget(200), Options{Detail: docfmt.DetailLine})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		_ = r.String()
	}
}

func BenchmarkFprint(b *testing.B) {
	target := makeBenchTarget(200)
	opts := Options{Detail: docfmt.DetailLine}

	b.ResetTimer()
	for b.Loop() {
		_ = Fprint(io.Discard, target, opts)
	}
}
