package usage

import (
	"testing"

	"github.com/quickwritereader/parvec/parvec"
)

type sample struct {
	ID    int64   `json:"id" msgpack:"id"`
	Load  float64 `json:"load" msgpack:"load"`
	Up    bool    `json:"up" msgpack:"up"`
	Label string  `json:"label" msgpack:"label"`
}

const benchRows = 10000

func makeSamples(n int) []sample {
	rows := make([]sample, n)
	for i := range rows {
		rows[i] = sample{
			ID:    int64(i),
			Load:  float64(i%97) / 97.0,
			Up:    i%3 != 0,
			Label: "host-42",
		}
	}
	return rows
}

func makeTable(rows []sample) *parvec.Vec4[int64, float64, bool, string] {
	table := parvec.WithCapacity4[int64, float64, bool, string](len(rows))
	for _, r := range rows {
		table.Push(r.ID, r.Load, r.Up, r.Label)
	}
	return table
}

var sinkFloat float64

func BenchmarkIngest_ParVec(b *testing.B) {
	rows := makeSamples(benchRows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		table := parvec.NewVec4[int64, float64, bool, string]()
		for _, r := range rows {
			table.Push(r.ID, r.Load, r.Up, r.Label)
		}
		sinkFloat = float64(table.Len())
	}
}

func BenchmarkIngest_AoS(b *testing.B) {
	rows := makeSamples(benchRows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var aos []sample
		for _, r := range rows {
			aos = append(aos, r)
		}
		sinkFloat = float64(len(aos))
	}
}

// Column scan is where the layout pays off: summing one field touches a
// dense float64 array instead of striding over whole records.
func BenchmarkScan_ParVec(b *testing.B) {
	table := makeTable(makeSamples(benchRows))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, loads, _, _ := table.Slices()
		var sum float64
		for _, l := range loads {
			sum += l
		}
		sinkFloat = sum
	}
}

func BenchmarkScan_AoS(b *testing.B) {
	rows := makeSamples(benchRows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var sum float64
		for j := range rows {
			sum += rows[j].Load
		}
		sinkFloat = sum
	}
}
