package usage

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/parvec/parvec"
)

// A small telemetry table: one logical record is (id, load, healthy, host),
// stored as four parallel columns in one allocation.
func TestUsageTelemetryTable(t *testing.T) {
	table, err := parvec.FromSlices4(
		[]int64{101, 102, 103, 104},
		[]float64{0.31, 0.97, 0.12, 0.66},
		[]bool{true, false, true, true},
		[]string{"web-1", "web-2", "db-1", "cache-1"},
	)
	require.NoError(t, err)

	// row-major access
	id, load, healthy, host, ok := table.Get(2)
	require.True(t, ok)
	assert.Equal(t, int64(103), *id)
	assert.Equal(t, 0.12, *load)
	assert.True(t, *healthy)
	assert.Equal(t, "db-1", *host)

	// column-major scan: average load without touching the other columns
	_, loads, _, _ := table.Slices()
	var sum float64
	for _, l := range loads {
		sum += l
	}
	fmt.Fprintln(os.Stdout, "average load:", sum/float64(table.Len()))
	assert.InDelta(t, 0.515, sum/float64(table.Len()), 1e-9)

	// retire unhealthy hosts in O(1) per removal
	for i := 0; i < table.Len(); {
		_, _, up, _ := table.At(i)
		if !*up {
			rid, _, _, rhost := table.SwapRemove(i)
			fmt.Fprintln(os.Stdout, "retired:", rid, rhost)
			continue
		}
		i++
	}
	assert.Equal(t, 3, table.Len())

	ids, _, flags, _ := table.Slices()
	assert.NotContains(t, ids, int64(102))
	for _, f := range flags {
		assert.True(t, f)
	}

	// trim the storage down to what is left
	table.ShrinkToFit()
	assert.Equal(t, table.Len(), table.Cap())
}

func TestUsageGrowAndDrain(t *testing.T) {
	live := parvec.NewVec2[int64, string]()
	backlog := parvec.NewVec2[int64, string]()

	for i := int64(0); i < 1000; i++ {
		backlog.Push(i, "job")
	}
	live.Append(backlog)

	assert.Equal(t, 1000, live.Len())
	assert.Equal(t, 0, backlog.Len())

	ids, _ := live.Slices()
	assert.Equal(t, int64(999), ids[999])

	for !live.IsEmpty() {
		live.Pop()
	}
	live.ShrinkToFit()
	assert.Equal(t, 0, live.Cap())
}
