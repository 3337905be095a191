package series

import (
	"math"
	"time"
)

// Table is a per-timestamp scalar result set. Values[i] is the result for
// Times[i]; NaN marks a row whose input was missing or whose computation
// failed. Failed counts those rows. Rows are always in input timestamp
// order and are never dropped.
type Table struct {
	Times  []time.Time
	Values []float64
	Failed int
}

// Defined reports whether row i holds a computed value.
func (t Table) Defined(i int) bool { return !math.IsNaN(t.Values[i]) }

// LayerTable is a per-timestamp layer result set, used for the metalimnion
// bounds. Rows follow the same NaN convention as Table.
type LayerTable struct {
	Times   []time.Time
	Tops    []float64
	Bottoms []float64
	Failed  int
}

// Defined reports whether row i holds a computed layer.
func (t LayerTable) Defined(i int) bool {
	return !math.IsNaN(t.Tops[i]) && !math.IsNaN(t.Bottoms[i])
}
