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

// Delete removes key from the tree. Deleting a key that is not present
// leaves the tree unchanged; it is not an error.
func (t *Tree) Delete(key int) {
	t.root = t.deleteRecursive(t.root, key)
}

func (t *Tree) deleteRecursive(node *Node, key int) *Node {
	if node == nil {
		return nil // key not found
	}

	if key < node.key {
		node.left = t.deleteRecursive(node.left, key)
	} else if key > node.key {
		node.right = t.deleteRecursive(node.right, key)
	} else {
		// Zero or one child: splice the node out directly.
		if node.left == nil {
			t.count--
			return node.right
		}
		if node.right == nil {
			t.count--
			return node.left
		}
		// Two children: overwrite with the in-order predecessor (the
		// rightmost key of the left subtree), then remove the
		// predecessor node from the left subtree. The predecessor has
		// no right child, so the nested call bottoms out in a splice
		// and decrements the count exactly once.
		pred := findMax(node.left)
		node.key = pred.key
		node.left = t.deleteRecursive(node.left, pred.key)
	}

	// Unlike insertion, a single deletion can leave several ancestors
	// out of balance, so every node on the unwind path rechecks itself.
	updateHeight(node)
	return rebalance(node)
}

// rebalance restores the AVL invariant at node after a deletion below
// it. The rotation sub-case comes from the heavy child's own balance
// factor; the deleted key says nothing about which grandchild subtree
// is the tall one.
func rebalance(node *Node) *Node {
	bf := balanceFactor(node)

	if bf > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	if bf < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
