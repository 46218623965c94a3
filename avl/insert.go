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

// Insert adds key to the tree. Inserting a key that is already present
// leaves the tree unchanged; it is not an error.
func (t *Tree) Insert(key int) {
	t.root = t.insertRecursive(t.root, key)
}

// insertRecursive descends to the insertion point, allocates the new
// leaf there, then rebuilds heights and rebalances on the way back up.
// Each call returns the possibly-new root of its subtree, which the
// caller assigns back into its own child slot.
func (t *Tree) insertRecursive(node *Node, key int) *Node {
	if node == nil {
		// the single growth point of the tree
		t.count++
		return &Node{key: key, height: 1}
	}

	if key < node.key {
		node.left = t.insertRecursive(node.left, key)
	} else if key > node.key {
		node.right = t.insertRecursive(node.right, key)
	} else {
		// duplicate key, leave the subtree untouched
		return node
	}

	updateHeight(node)

	// A single insertion can unbalance at most one ancestor, and the
	// offending side is known from where the key went, so the sub-case
	// is picked by comparing against the heavy child's key.
	bf := balanceFactor(node)
	if bf > 1 {
		if key < node.left.key {
			return rotateRight(node) // left-left
		}
		node.left = rotateLeft(node.left) // left-right
		return rotateRight(node)
	} else if bf < -1 {
		if key > node.right.key {
			return rotateLeft(node) // right-right
		}
		node.right = rotateRight(node.right) // right-left
		return rotateLeft(node)
	}

	return node
}
