package heap

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"go.uber.org/multierr"

	"github.com/benz9527/xds/lib/infra"
)

var ErrMaxHeapViolation = errors.New("max-heap violation")

// ViolationValidate checks the max-heap property over the values in heap
// order. Every violating parent-child pair is reported.
func ViolationValidate[E infra.OrderedKey](values iter.Seq[E]) error {
	arr := slices.Collect(values)
	var merr error
	for i := range arr {
		for _, c := range []int{LeftIndex(i), RightIndex(i)} {
			if c < len(arr) && arr[i] < arr[c] {
				merr = multierr.Append(merr, fmt.Errorf("%w: index %d (%v) < child %d (%v)",
					ErrMaxHeapViolation, i, arr[i], c, arr[c]))
			}
		}
	}
	return merr
}
