package docfmt

import (
	"fmt"
	"strings"
	"testing"
)

func makeBenchDocText(paragraphs int) string {
	var b strings.Builder
	for i := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Paragraph %d explains one aspect of the behavior in a couple of sentences. It keeps going long enough to give the width limit something to cut.", i)
	}
	return b.String()
}

func makeBenchLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Member%d", i)
	}
	return labels
}

func BenchmarkSummarize(b *testing.B) {
	doc := makeBenchDocText(10)

	b.ResetTimer()
	for b.Loop() {
		_ = Summarize(doc, DetailLine, 96)
	}
}

func BenchmarkSummarize_VaryingDetail(b *testing.B) {
	doc := makeBenchDocText(10)
	levels := []DetailLevel{DetailNames, DetailLine, DetailBlock, DetailFull}

	for _, level := range levels {
		b.Run(fmt.Sprintf("detail_%d", int(level)), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = Summarize(doc, level, 96)
			}
		})
	}
}

func BenchmarkSummarize_VaryingWidth(b *testing.B) {
	doc := makeBenchDocText(10)
	widths := []int{40, 96, 200}

	for _, width := range widths {
		b.Run(fmt.Sprintf("width_%d", width), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = Summarize(doc, DetailLine, width)
			}
		})
	}
}

func BenchmarkFold(b *testing.B) {
	labels := makeBenchLabels(100)

	b.ResetTimer()
	for b.Loop() {
		_ = Fold(labels, 96)
	}
}

func BenchmarkFold_VaryingSize(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("labels_%d", size), func(b *testing.B) {
			labels := makeBenchLabels(size)

			b.ResetTimer()
			for b.Loop() {
				_ = Fold(labels, 96)
			}
		})
	}
}

func BenchmarkFold_VaryingWidth(b *testing.B) {
	labels := makeBenchLabels(100)
	widths := []int{12, 40, 96, 200}

	for _, width := range widths {
		b.Run(fmt.Sprintf("width_%d", width), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = Fold(labels, width)
			}
		})
	}
}
