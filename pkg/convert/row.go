package convert

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Row is one flat export record. Cells are strings and keep the column order
// they were set in.
type Row struct {
	cells *orderedmap.OrderedMap
}

func newRow() Row {
	return Row{cells: orderedmap.New()}
}

func (r Row) set(column, value string) {
	r.cells.Set(column, value)
}

// Get returns the cell of column, or "" when the row has no such column.
func (r Row) Get(column string) string {
	v, ok := r.cells.Get(column)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Columns returns the column names in order.
func (r Row) Columns() []string {
	return r.cells.Keys()
}

// Values returns the cells in column order.
func (r Row) Values() []string {
	columns := r.Columns()
	values := make([]string, len(columns))
	for i, column := range columns {
		values[i] = r.Get(column)
	}
	return values
}

// Map returns the row as a plain map.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.Columns()))
	for _, column := range r.Columns() {
		m[column] = r.Get(column)
	}
	return m
}

// MarshalJSON writes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	return r.cells.MarshalJSON()
}
