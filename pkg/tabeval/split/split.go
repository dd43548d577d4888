// Package split partitions row indices into disjoint train/test or
// k-fold groups.  All randomness is driven by an explicit seed, so
// identical arguments always produce identical partitions.
package split

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// InvalidFoldCountError is returned when the requested fold count
// cannot partition the index range.
type InvalidFoldCountError struct {
	K, N int
}

func (e InvalidFoldCountError) Error() string {
	return fmt.Sprintf("invalid fold count %d for %d rows", e.K, e.N)
}

// TrainTest partitions the index range [0,n) into a train and a test
// group.  The test group holds round(n*testFraction) indices drawn
// uniformly at random; both groups are returned in ascending order.
func TrainTest(n int, testFraction float64, seed int64) (train, test []int, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("trainTest: invalid row count %d", n)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("trainTest: test fraction %g out of range (0,1)", testFraction)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	ntest := int(math.Round(float64(n) * testFraction))
	test = append(test, perm[:ntest]...)
	train = append(train, perm[ntest:]...)
	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}

// KFold partitions the index range [0,n) into k disjoint groups whose
// sizes differ by at most one.  Each group is returned in ascending
// order.
func KFold(n, k int, seed int64) ([][]int, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("kFold: %w", InvalidFoldCountError{K: k, N: n})
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	folds := make([][]int, k)
	size, rest := n/k, n%k
	pos := 0
	for i := 0; i < k; i++ {
		end := pos + size
		if i < rest {
			end++
		}
		folds[i] = append(folds[i], perm[pos:end]...)
		sort.Ints(folds[i])
		pos = end
	}
	return folds, nil
}
