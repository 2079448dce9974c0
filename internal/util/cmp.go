package util

import "cmp"

// Natural returns a three-way comparator for any built-in ordered type,
// wrapping the standard library's cmp.Compare. Callers with an ordered
// element type pass it explicitly as the Comparator for boundedset.Set
// or internal/skiplist.Set; neither falls back to it when no comparator
// is given (boundedset.New panics on a nil Comparator).
func Natural[T cmp.Ordered]() func(a, b T) int {
	return cmp.Compare[T]
}
