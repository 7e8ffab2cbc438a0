package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[A Number](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// SumBy adds up f over items, e.g. the beats of a run of notes.
func SumBy[T any, A Number](items []T, f func(T) A) A {
	var total A
	for _, item := range items {
		total += f(item)
	}
	return total
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
