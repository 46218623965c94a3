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

// Tree holds the root node and the number of keys currently present.
type Tree struct {
	root  *Node
	count int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: nil, count: 0}
}

// Len is the number of keys in the tree.
func (t *Tree) Len() int { return t.count }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// Root returns the root node, or nil for an empty tree. The returned
// node graph is live; callers must not mutate it.
func (t *Tree) Root() *Node { return t.root }

// Min returns the smallest key and true, or (0, false) on an empty tree.
func (t *Tree) Min() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return findMin(t.root).key, true
}

// Max returns the largest key and true, or (0, false) on an empty tree.
func (t *Tree) Max() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return findMax(t.root).key, true
}

// findMin walks to the leftmost node of a non-nil subtree.
func findMin(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

// findMax walks to the rightmost node of a non-nil subtree.
func findMax(node *Node) *Node {
	for node.right != nil {
		node = node.right
	}
	return node
}
