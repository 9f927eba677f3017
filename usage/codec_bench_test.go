package usage

import (
	"encoding/json"
	"math"
	"testing"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/mus-format/mus-go/varint"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/parvec/parvec"
)

var sinkBytes []byte

// encodeColumns serializes the table column by column: varints for the
// id and load columns, one byte per flag, length-prefixed bytes for the
// labels. Columnar layout means each pass reads one dense array.
func encodeColumns(table *parvec.Vec4[int64, float64, bool, string]) []byte {
	ids, loads, ups, labels := table.Slices()

	size := varint.Int64.Size(int64(table.Len()))
	for _, id := range ids {
		size += varint.Int64.Size(id)
	}
	for _, l := range loads {
		size += varint.Uint64.Size(math.Float64bits(l))
	}
	size += len(ups)
	for _, s := range labels {
		size += varint.Uint64.Size(uint64(len(s))) + len(s)
	}

	buf := make([]byte, size)
	n := varint.Int64.Marshal(int64(table.Len()), buf)
	for _, id := range ids {
		n += varint.Int64.Marshal(id, buf[n:])
	}
	for _, l := range loads {
		n += varint.Uint64.Marshal(math.Float64bits(l), buf[n:])
	}
	for _, up := range ups {
		if up {
			buf[n] = 1
		}
		n++
	}
	for _, s := range labels {
		n += varint.Uint64.Marshal(uint64(len(s)), buf[n:])
		n += copy(buf[n:], s)
	}
	return buf[:n]
}

func BenchmarkEncode_ParVecColumnsMus(b *testing.B) {
	table := makeTable(makeSamples(benchRows))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sinkBytes = encodeColumns(table)
	}

	b.StopTimer()
	b.Logf("ParVecColumnsMus size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_RowsMsgpack(b *testing.B) {
	rows := makeSamples(benchRows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sinkBytes, _ = msgpack.Marshal(rows)
	}

	b.StopTimer()
	b.Logf("RowsMsgpack size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_RowsJson(b *testing.B) {
	rows := makeSamples(benchRows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sinkBytes, _ = json.Marshal(rows)
	}

	b.StopTimer()
	b.Logf("RowsJson size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_RowsGoJson(b *testing.B) {
	rows := makeSamples(benchRows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sinkBytes, _ = goccyjson.Marshal(rows)
	}

	b.StopTimer()
	b.Logf("RowsGoJson size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_RowsJsonIter(b *testing.B) {
	rows := makeSamples(benchRows)
	jsonIter := jsoniter.ConfigCompatibleWithStandardLibrary
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sinkBytes, _ = jsonIter.Marshal(rows)
	}

	b.StopTimer()
	b.Logf("RowsJsonIter size: %d bytes", len(sinkBytes))
}
