package universe

import (
	"math/rand"
	"testing"
)

var (
	testTemplate = Template{"ts1", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

	seeders = map[string]func(g *Grid){
		"template": func(g *Grid) {
			Settle(g, testTemplate.Coordinates)
		},
		"soup": func(g *Grid) {
			Soup(g, rand.New(rand.NewSource(1)))
		},
	}
)

const (
	width  = 200
	height = 200
)

func Benchmark_Step(b *testing.B) {
	for _, name := range []string{"template", "soup"} {
		b.Run(name, func(b *testing.B) {
			buf := NewBuffer(width, height)
			seeders[name](buf.Active())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Step(buf.Active(), buf.Staging())
				buf.Swap()
			}
		})
	}
}

func Benchmark_Reset(b *testing.B) {
	buf := NewBuffer(width, height)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset(width, height)
	}
}
