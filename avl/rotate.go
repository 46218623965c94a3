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

// A rotation is a local ownership exchange among three nodes: the pivot,
// its heavy child, and that child's opposite-side subtree. It changes the
// subtree height without changing the in-order key sequence. Both
// rotations return the new local root; the caller reattaches it.

func rotateLeft(node *Node) *Node {
	if node == nil || node.right == nil {
		return node // nothing to rotate
	}

	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now a child of pivot, so its height goes first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateRight(node *Node) *Node {
	if node == nil || node.left == nil {
		return node // nothing to rotate
	}

	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}
