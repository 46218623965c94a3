// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package container

import "cmp"

// Heap is a binary max-heap over an array-backed complete binary tree.
// The zero value is an empty heap.
type Heap[T cmp.Ordered] struct {
	items []T
}

// Len is the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Peek returns the maximum without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Push adds v, sifting it up to its place.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent] >= h.items[i] {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// PopMax removes and returns the largest item, or (zero, false) when
// the heap is empty.
func (h *Heap[T]) PopMax() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference
	h.items = h.items[:last]

	// sift the promoted leaf back down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(h.items) {
			break
		}
		big := left
		if right := left + 1; right < len(h.items) && h.items[right] > h.items[left] {
			big = right
		}
		if h.items[i] >= h.items[big] {
			break
		}
		h.items[i], h.items[big] = h.items[big], h.items[i]
		i = big
	}

	return top, true
}
