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

package avl

import "iter"

// The traversals are lazy, restartable sequences usable directly in a
// range statement:
//
//	for key := range tree.InOrder() {
//		...
//	}
//
// They never mutate the tree. The tree must not be mutated while a
// traversal is running.

// InOrder yields every key in ascending order (left, root, right).
func (t *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		inOrder(t.root, yield)
	}
}

// PreOrder yields keys root first (root, left, right).
func (t *Tree) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		preOrder(t.root, yield)
	}
}

// PostOrder yields keys root last (left, right, root).
func (t *Tree) PostOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		postOrder(t.root, yield)
	}
}

func inOrder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) && yield(node.key) && inOrder(node.right, yield)
}

func preOrder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.key) && preOrder(node.left, yield) && preOrder(node.right, yield)
}

func postOrder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return postOrder(node.left, yield) && postOrder(node.right, yield) && yield(node.key)
}
