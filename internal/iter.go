package internal

import (
	"cmp"
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqUnique collects a sequence into a sorted slice without duplicates.
func IterSeqUnique[T cmp.Ordered](seq iter.Seq[T]) []T {
	return slices.Compact(slices.Sorted(seq))
}

// IterMapSorted iterates over a map in ascending key order.
func IterMapSorted[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		keys := make([]K, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}
