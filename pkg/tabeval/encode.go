package tabeval

import (
	"fmt"
	"sort"
)

// Encoder maps categorical labels to dense integer codes and back.
// Codes are assigned by the lexicographic order of the distinct
// labels, so fitting twice over the same label set always yields the
// same mapping.  The mapping is frozen after Fit; calling Fit again
// replaces it.
type Encoder struct {
	codes  map[string]int
	labels []string
}

// Fit computes the label mapping from the given labels.
func (e *Encoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return fmt.Errorf("fit: %w", ErrEmptyInput)
	}
	distinct := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		distinct[l] = struct{}{}
	}
	sorted := make([]string, 0, len(distinct))
	for l := range distinct {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)
	codes := make(map[string]int, len(sorted))
	for i, l := range sorted {
		codes[l] = i
	}
	e.labels = sorted
	e.codes = codes
	return nil
}

// Transform maps each label to its integer code.
func (e *Encoder) Transform(labels []string) ([]int, error) {
	if e.codes == nil {
		return nil, fmt.Errorf("transform: %w", ErrNotFitted)
	}
	out := make([]int, len(labels))
	for i, l := range labels {
		code, ok := e.codes[l]
		if !ok {
			return nil, fmt.Errorf("transform: %w", UnknownLabelError{Label: l})
		}
		out[i] = code
	}
	return out, nil
}

// FitTransform fits the encoder on the labels and transforms them.
func (e *Encoder) FitTransform(labels []string) ([]int, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// InverseTransform maps integer codes back to their labels.
func (e *Encoder) InverseTransform(codes []int) ([]string, error) {
	if e.codes == nil {
		return nil, fmt.Errorf("inverseTransform: %w", ErrNotFitted)
	}
	out := make([]string, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(e.labels) {
			return nil, fmt.Errorf("inverseTransform: %w",
				CodeRangeError{Code: code, K: len(e.labels)})
		}
		out[i] = e.labels[code]
	}
	return out, nil
}

// Len returns the number of distinct labels seen at fit time.
func (e *Encoder) Len() int {
	return len(e.labels)
}

// Labels returns the fitted labels in code order.
func (e *Encoder) Labels() []string {
	out := make([]string, len(e.labels))
	copy(out, e.labels)
	return out
}
