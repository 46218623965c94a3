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

// Package container holds the classic linear containers that sit next
// to the avl package: a fixed-capacity FIFO queue, a growable stack, a
// singly linked list, a plain (unbalanced) binary search tree and a
// binary max-heap. They are independent of each other and of avl, and
// none of them is safe for concurrent use.
package container
