package model

import "slices"

// forEachProduct enumerates the Cartesian product of the option lists in
// nested iteration order (last list varies fastest), invoking visit with one
// element chosen from each list. The slice passed to visit is reused between
// calls; callers must copy it before retaining it. visit returning false
// stops the enumeration, which keeps early exit on a result cap cheap.
func forEachProduct[T any](options [][]T, visit func(choice []T) bool) {
	if len(options) == 0 {
		return
	}
	for _, candidates := range options {
		if len(candidates) == 0 {
			return
		}
	}

	indexes := make([]int, len(options))
	choice := make([]T, len(options))
	for {
		for i, j := range indexes {
			choice[i] = options[i][j]
		}
		if !visit(choice) {
			return
		}

		position := len(indexes) - 1
		for ; position >= 0; position-- {
			indexes[position]++
			if indexes[position] < len(options[position]) {
				break
			}
			indexes[position] = 0
		}
		if position < 0 {
			return
		}
	}
}

// combinations returns every size-k unordered combination of items in
// lexicographic index order. k outside [1, len(items)] yields nothing.
func combinations[T any](items []T, k int) [][]T {
	if k <= 0 || k > len(items) {
		return nil
	}

	result := make([][]T, 0)
	combination := make([]T, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(combination) == k {
			result = append(result, slices.Clone(combination))
			return
		}
		for i := start; i <= len(items)-(k-len(combination)); i++ {
			combination = append(combination, items[i])
			walk(i + 1)
			combination = combination[:len(combination)-1]
		}
	}
	walk(0)
	return result
}
