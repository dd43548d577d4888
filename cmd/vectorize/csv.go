package vectorize

import (
	"encoding/csv"
	"io"
	"strconv"

	"git.sr.ht/~flobar/tabeval/pkg/tabeval"
)

func writeCSV(out io.Writer, fm *tabeval.FeatureMatrix) error {
	w := csv.NewWriter(out)
	if err := w.Write(fm.Names); err != nil {
		return err
	}
	r, c := fm.Dims()
	record := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			record[j] = strconv.FormatFloat(fm.X.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
