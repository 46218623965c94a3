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

// Package avl implements a height-balanced binary search tree over int
// keys. Every mutation keeps the balance factor of every node within
// [-1, 1], so the height of the tree (and therefore the recursion depth
// of every operation) stays O(log n).
//
// A tree is not safe for concurrent mutation. Use it from a single
// goroutine or wrap it with your own locking.
package avl
