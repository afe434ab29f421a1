package Trees

import "errors"

var (
	// ErrAllocation is returned when an Allocator can't provide a node.
	ErrAllocation = errors.New("Trees: node allocation failed")
	// ErrInvalidComparator matches every InvalidComparatorError.
	ErrInvalidComparator = errors.New("Trees: no comparator")
)

// InvalidComparatorError is the panic value of an operation that has to
// compare values on a tree built without a Comparator.
type InvalidComparatorError struct {
	Op string
}

func (e InvalidComparatorError) Error() string {
	return "Trees: " + e.Op + " needs a comparator, the tree has none"
}

func (e InvalidComparatorError) Is(target error) bool {
	return target == ErrInvalidComparator
}
