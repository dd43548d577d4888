package tabeval

import (
	"fmt"
)

// Kind marks a column as numeric or categorical.
type Kind int

// Available column kinds.
const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column holds one named table column.  Depending on the kind either
// Floats or Labels is set; the other slice is nil.
type Column struct {
	Name   string
	Kind   Kind
	Floats []float64
	Labels []string
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Labels)
}

// NumericColumn creates a numeric column.
func NumericColumn(name string, vals []float64) Column {
	return Column{Name: name, Kind: Numeric, Floats: vals}
}

// CategoricalColumn creates a categorical column.
func CategoricalColumn(name string, labels []string) Column {
	return Column{Name: name, Kind: Categorical, Labels: labels}
}

// Table is an ordered sequence of named columns of equal length.  Row
// order is significant and is preserved by all transformations.
type Table struct {
	cols  []Column
	index map[string]int
}

// NewTable creates a table from the given columns.  All columns must
// have the same length and unique names.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{cols: cols, index: make(map[string]int, len(cols))}
	for i := range cols {
		if _, ok := t.index[cols[i].Name]; ok {
			return nil, fmt.Errorf("newTable: duplicate column name %q", cols[i].Name)
		}
		t.index[cols[i].Name] = i
		if cols[i].Len() != cols[0].Len() {
			return nil, fmt.Errorf("newTable %s: length %d does not match %d",
				cols[i].Name, cols[i].Len(), cols[0].Len())
		}
	}
	return t, nil
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Columns returns the table's columns in order.
func (t *Table) Columns() []Column {
	return t.cols
}

// Column returns the named column or false if no such column exists.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.cols[i], true
}
