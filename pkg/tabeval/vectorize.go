package tabeval

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FeatureMatrix is a numeric feature matrix with named columns,
// row-aligned to the table it was built from.
type FeatureMatrix struct {
	Names []string
	X     *mat.Dense
}

// Dims returns the number of rows and columns of the matrix.
func (f *FeatureMatrix) Dims() (int, int) {
	return f.X.Dims()
}

type numericStats struct {
	name      string
	mean, std float64
}

type catLevels struct {
	name   string
	levels []string
	// offset maps a level to its indicator column offset within the
	// column's expansion; a dropped reference level maps to -1.
	offset map[string]int
	width  int
}

// Vectorizer converts a heterogeneous table into a numeric feature
// matrix.  Numeric columns are copied through or standardized to zero
// mean and unit variance; categorical columns are expanded into one
// 0/1 indicator column per observed level, named <col>_<level>.  Fit
// records the per-column statistics and category levels; Transform
// applies them to any table of the same schema.
//
// All observed levels are kept by default.  Set DropFirst to drop
// each column's first (lexicographically smallest) level as the
// reference level instead.  Set AllowUnseen to encode levels absent
// at fit time as all-zero indicator rows instead of failing.
type Vectorizer struct {
	Standardize bool
	DropFirst   bool
	AllowUnseen bool

	fitted  bool
	numeric []numericStats
	cats    []catLevels
	kinds   map[string]Kind
	names   []string
}

// Fit records the vectorization parameters from the given table.
// Every table column must appear in exactly one of the two column
// name sets, and the sets must not name columns missing from the
// table.
func (v *Vectorizer) Fit(t *Table, categorical, numeric []string) error {
	kinds := make(map[string]Kind, len(categorical)+len(numeric))
	for _, name := range numeric {
		kinds[name] = Numeric
	}
	for _, name := range categorical {
		if _, ok := kinds[name]; ok {
			return fmt.Errorf("fit: %w", UnclassifiedColumnError{Column: name})
		}
		kinds[name] = Categorical
	}
	for name, kind := range kinds {
		col, ok := t.Column(name)
		if !ok {
			return fmt.Errorf("fit: %w",
				SchemaMismatchError{Column: name, Reason: "not in table"})
		}
		if col.Kind != kind {
			return fmt.Errorf("fit: %w", SchemaMismatchError{
				Column: name,
				Reason: fmt.Sprintf("declared %s but column is %s", kind, col.Kind),
			})
		}
	}
	var nums []numericStats
	var cats []catLevels
	for _, col := range t.Columns() {
		kind, ok := kinds[col.Name]
		if !ok {
			return fmt.Errorf("fit: %w", UnclassifiedColumnError{Column: col.Name})
		}
		switch kind {
		case Numeric:
			std := stat.PopStdDev(col.Floats, nil)
			if v.Standardize && std == 0 {
				return fmt.Errorf("fit: %w", DegenerateColumnError{Column: col.Name})
			}
			nums = append(nums, numericStats{
				name: col.Name,
				mean: stat.Mean(col.Floats, nil),
				std:  std,
			})
		case Categorical:
			cats = append(cats, fitLevels(col, v.DropFirst))
		}
	}
	v.numeric = nums
	v.cats = cats
	v.kinds = kinds
	v.names = outputNames(nums, cats)
	v.fitted = true
	return nil
}

func fitLevels(col Column, dropFirst bool) catLevels {
	distinct := make(map[string]struct{}, len(col.Labels))
	for _, l := range col.Labels {
		distinct[l] = struct{}{}
	}
	levels := make([]string, 0, len(distinct))
	for l := range distinct {
		levels = append(levels, l)
	}
	sort.Strings(levels)
	offset := make(map[string]int, len(levels))
	width := 0
	for i, l := range levels {
		if dropFirst && i == 0 && len(levels) > 1 {
			offset[l] = -1
			continue
		}
		offset[l] = width
		width++
	}
	return catLevels{name: col.Name, levels: levels, offset: offset, width: width}
}

func outputNames(nums []numericStats, cats []catLevels) []string {
	var names []string
	for _, n := range nums {
		names = append(names, n.name)
	}
	for _, c := range cats {
		for _, l := range c.levels {
			if c.offset[l] < 0 {
				continue
			}
			names = append(names, fmt.Sprintf("%s_%s", c.name, l))
		}
	}
	return names
}

// Transform applies the fitted parameters to the given table.  The
// table must match the fit-time schema.  The output columns are the
// numeric columns in their original order followed by the categorical
// expansions in source-column order, levels sorted within each.
func (v *Vectorizer) Transform(t *Table) (*FeatureMatrix, error) {
	if !v.fitted {
		return nil, fmt.Errorf("transform: %w", ErrNotFitted)
	}
	if err := v.checkSchema(t); err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	rows := t.Rows()
	out := mat.NewDense(rows, len(v.names), nil)
	for j, ns := range v.numeric {
		col, _ := t.Column(ns.name)
		for i, val := range col.Floats {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, fmt.Errorf("transform %s: non-finite value at row %d", ns.name, i)
			}
			if v.Standardize {
				val = (val - ns.mean) / ns.std
			}
			out.Set(i, j, val)
		}
	}
	base := len(v.numeric)
	for _, cl := range v.cats {
		col, _ := t.Column(cl.name)
		for i, label := range col.Labels {
			off, ok := cl.offset[label]
			if !ok {
				if v.AllowUnseen {
					continue
				}
				return nil, fmt.Errorf("transform: %w",
					UnseenLevelError{Column: cl.name, Level: label})
			}
			if off < 0 {
				continue
			}
			out.Set(i, base+off, 1)
		}
		base += cl.width
	}
	names := make([]string, len(v.names))
	copy(names, v.names)
	return &FeatureMatrix{Names: names, X: out}, nil
}

func (v *Vectorizer) checkSchema(t *Table) error {
	for name, kind := range v.kinds {
		col, ok := t.Column(name)
		if !ok {
			return SchemaMismatchError{Column: name, Reason: "not in table"}
		}
		if col.Kind != kind {
			return SchemaMismatchError{
				Column: name,
				Reason: fmt.Sprintf("fitted as %s but column is %s", kind, col.Kind),
			}
		}
	}
	for _, col := range t.Columns() {
		if _, ok := v.kinds[col.Name]; !ok {
			return SchemaMismatchError{Column: col.Name, Reason: "not in fitted schema"}
		}
	}
	return nil
}

// FitTransform fits the vectorizer on the table and transforms it.
func (v *Vectorizer) FitTransform(t *Table, categorical, numeric []string) (*FeatureMatrix, error) {
	if err := v.Fit(t, categorical, numeric); err != nil {
		return nil, err
	}
	return v.Transform(t)
}

// Names returns the output column names of the fitted vectorizer.
func (v *Vectorizer) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Vectorize converts the table into a feature matrix in one step.
func Vectorize(t *Table, categorical, numeric []string, standardize bool) (*FeatureMatrix, error) {
	v := Vectorizer{Standardize: standardize}
	return v.FitTransform(t, categorical, numeric)
}
