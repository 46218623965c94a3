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

// Node is one key in the tree. Children are exclusively owned by their
// parent; there are no parent pointers and no sharing between subtrees.
type Node struct {
	key    int
	height int
	left   *Node
	right  *Node
}

// Key returns the node's key.
func (n *Node) Key() int { return n.key }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Height returns the cached height of the subtree rooted at n.
// A leaf has height 1.
func (n *Node) Height() int {
	return height(n)
}

// height reads the cached height field; an absent subtree has height 0.
// It never recomputes recursively, so callers must refresh the cache
// immediately after any child-pointer change.
func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

// updateHeight refreshes the cached height from the children.
func updateHeight(node *Node) {
	node.height = max(height(node.left), height(node.right)) + 1
}

// balanceFactor is height(left) - height(right). Positive means
// left-heavy, negative means right-heavy, 0 for an absent node.
func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}
