// SPDX-License-Identifier: MIT

// Package matrix - Array: fixed-rank, fixed-extent container of any element type.
//
// Purpose:
//   - Describe an N-dimensional grid by an explicit extent list and a stride
//     vector over ONE flat buffer (row-major: the last index varies fastest).
//   - Keep indexing bounds-checked at the public surface (errors, no panics).
//
// Layout:
//   - strides[rank-1] = 1, strides[k] = strides[k+1] * extents[k+1].
//   - offset(idx) = Σ idx[k] * strides[k].
//
// Complexity quicksheet:
//   - NewArray: O(Π extents); At/Set: O(rank); Fill: O(Len).

package matrix

import "fmt"

// Array is a dense rank-N container with immutable extents.
type Array[T any] struct {
	extents []int // size along each axis (> 0)
	strides []int // flat-offset multiplier per axis
	data    []T   // flat storage, len == Π extents
}

// NewArray allocates a zero-valued Array with the given extents.
// Errors: ErrInvalidDimensions when no extents are given or any extent ≤ 0.
func NewArray[T any](extents ...int) (*Array[T], error) {
	size, strides, err := layout(extents)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		extents: append([]int(nil), extents...),
		strides: strides,
		data:    make([]T, size),
	}, nil
}

// NewArrayFrom wraps a copy of data with the given extents.
// Errors: ErrInvalidDimensions, or ErrDimensionMismatch when len(data) differs
// from the product of extents.
func NewArrayFrom[T any](data []T, extents ...int) (*Array[T], error) {
	size, strides, err := layout(extents)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("Array: len %d for extents %v: %w", len(data), extents, ErrDimensionMismatch)
	}

	return &Array[T]{
		extents: append([]int(nil), extents...),
		strides: strides,
		data:    append([]T(nil), data...),
	}, nil
}

// layout validates extents and returns the flat size and row-major strides.
func layout(extents []int) (int, []int, error) {
	if len(extents) == 0 {
		return 0, nil, ErrInvalidDimensions
	}
	strides := make([]int, len(extents))
	size := 1
	var k int
	for k = len(extents) - 1; k >= 0; k-- {
		if extents[k] <= 0 {
			return 0, nil, ErrInvalidDimensions
		}
		strides[k] = size
		size *= extents[k]
	}

	return size, strides, nil
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.extents) }

// Extents returns a copy of the per-axis sizes.
func (a *Array[T]) Extents() []int { return append([]int(nil), a.extents...) }

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// offset maps a full index tuple to the flat offset.
func (a *Array[T]) offset(idx []int) (int, error) {
	if len(idx) != len(a.extents) {
		return 0, ErrRankMismatch
	}
	off := 0
	var k int
	for k = 0; k < len(idx); k++ {
		if idx[k] < 0 || idx[k] >= a.extents[k] {
			return 0, ErrOutOfRange
		}
		off += idx[k] * a.strides[k]
	}

	return off, nil
}

// At returns the element at idx.
// Errors: ErrRankMismatch (wrong number of indices), ErrOutOfRange.
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offset(idx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Array.At%v: %w", idx, err)
	}

	return a.data[off], nil
}

// Set stores v at idx.
// Errors: ErrRankMismatch (wrong number of indices), ErrOutOfRange.
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return fmt.Errorf("Array.Set%v: %w", idx, err)
	}
	a.data[off] = v

	return nil
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for k := range a.data {
		a.data[k] = v
	}
}

// Data returns the flat row-major buffer (shared, not copied).
func (a *Array[T]) Data() []T { return a.data }
