// Package schulte builds shuffled Schulte tables.
package schulte

import (
	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/random"
	"luchik.app/trainers/internal/ranges"
)

// Grid returns 1..size² in a uniformly random order. size is clamped to
// [2,8].
func Grid(src random.Source, size int) []int {
	size = ranges.Clamp(size, domain.MinGridSize, domain.MaxGridSize)
	n := size * size
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		nums[i], nums[j] = nums[j], nums[i]
	}
	return nums
}
