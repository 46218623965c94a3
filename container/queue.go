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

// Queue is a FIFO queue over a fixed-capacity circular buffer. A full
// queue rejects new items instead of growing.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// NewQueue returns an empty queue holding at most capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Enqueue appends v at the rear. It returns false when the queue is
// full and leaves the queue unchanged.
func (q *Queue[T]) Enqueue(v T) bool {
	if q.IsFull() {
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
	return true
}

// Dequeue removes and returns the front item, or (zero, false) when
// the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // drop the reference
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Front returns the oldest item without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Rear returns the newest item without removing it.
func (q *Queue[T]) Rear() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.buf[(q.head+q.size-1)%len(q.buf)], true
}

// Len is the number of items currently queued.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool { return q.size == len(q.buf) }
