package interleave

import (
	"sort"

	"github.com/kbukum/weave/errors"
)

// Insertion requests that item be emitted immediately before the source
// element at Offset. Offset equal to the source length appends at the end.
type Insertion[T any] struct {
	Offset int
	Item   T
}

// Insert builds an Insertion.
func Insert[T any](offset int, item T) Insertion[T] {
	return Insertion[T]{Offset: offset, Item: item}
}

// normalize validates the insertion set and returns it ordered by
// ascending offset, preserving input order within equal offsets.
// The input slice is never mutated.
func normalize[T any](insertions []Insertion[T], o Options) ([]Insertion[T], error) {
	for _, ins := range insertions {
		if ins.Offset < 0 {
			return nil, errors.NegativeOffset(ins.Offset)
		}
		if o.SourceLength != lengthUnknown && ins.Offset > o.SourceLength {
			return nil, errors.OutOfRangeOffset(ins.Offset, o.SourceLength)
		}
	}

	if o.TrustSorted || sort.SliceIsSorted(insertions, func(a, b int) bool {
		return insertions[a].Offset < insertions[b].Offset
	}) {
		return insertions, nil
	}

	ordered := make([]Insertion[T], len(insertions))
	copy(ordered, insertions)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Offset < ordered[b].Offset
	})
	return ordered, nil
}
