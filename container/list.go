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

type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// List is a singly linked list with positional access. The zero value
// is an empty list.
type List[T any] struct {
	head *listNode[T]
	size int
}

// Len is the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Insert places v at position i, shifting later elements back. Valid
// positions are 0 through Len(); anything else returns false.
func (l *List[T]) Insert(i int, v T) bool {
	if i < 0 || i > l.size {
		return false
	}

	node := &listNode[T]{value: v}
	if i == 0 {
		node.next = l.head
		l.head = node
	} else {
		prev := l.head
		for ; i > 1; i-- {
			prev = prev.next
		}
		node.next = prev.next
		prev.next = node
	}
	l.size++
	return true
}

// Append places v at the end of the list.
func (l *List[T]) Append(v T) {
	l.Insert(l.size, v)
}

// Remove deletes the element at position i and returns it, or
// (zero, false) when i is out of range.
func (l *List[T]) Remove(i int) (T, bool) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, false
	}

	var node *listNode[T]
	if i == 0 {
		node = l.head
		l.head = node.next
	} else {
		prev := l.head
		for ; i > 1; i-- {
			prev = prev.next
		}
		node = prev.next
		prev.next = node.next
	}
	l.size--
	return node.value, true
}

// Get returns the element at position i without removing it.
func (l *List[T]) Get(i int) (T, bool) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, false
	}
	node := l.head
	for ; i > 0; i-- {
		node = node.next
	}
	return node.value, true
}

// Values returns the list contents front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for node := l.head; node != nil; node = node.next {
		out = append(out, node.value)
	}
	return out
}
