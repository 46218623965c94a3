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

import "iter"

type bstNode struct {
	key   int
	left  *bstNode
	right *bstNode
}

// BST is a plain, unbalanced binary search tree over int keys. Same
// contract as the avl package but without any rebalancing, so a sorted
// insertion order degrades it to a linked list.
type BST struct {
	root  *bstNode
	count int
}

// NewBST returns an empty tree.
func NewBST() *BST {
	return &BST{}
}

// Len is the number of keys in the tree.
func (t *BST) Len() int { return t.count }

// IsEmpty reports whether the tree holds no keys.
func (t *BST) IsEmpty() bool { return t.root == nil }

// Insert adds key; inserting a present key is a no-op.
func (t *BST) Insert(key int) {
	t.root = t.insertRecursive(t.root, key)
}

func (t *BST) insertRecursive(node *bstNode, key int) *bstNode {
	if node == nil {
		t.count++
		return &bstNode{key: key}
	}
	if key < node.key {
		node.left = t.insertRecursive(node.left, key)
	} else if key > node.key {
		node.right = t.insertRecursive(node.right, key)
	}
	return node
}

// Delete removes key; deleting an absent key is a no-op. A node with
// two children takes its in-order successor's key and the successor is
// removed instead.
func (t *BST) Delete(key int) {
	t.root = t.deleteRecursive(t.root, key)
}

func (t *BST) deleteRecursive(node *bstNode, key int) *bstNode {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.left = t.deleteRecursive(node.left, key)
	} else if key > node.key {
		node.right = t.deleteRecursive(node.right, key)
	} else {
		if node.left == nil {
			t.count--
			return node.right
		}
		if node.right == nil {
			t.count--
			return node.left
		}
		succ := node.right
		for succ.left != nil {
			succ = succ.left
		}
		node.key = succ.key
		node.right = t.deleteRecursive(node.right, succ.key)
	}
	return node
}

// Search reports whether key is present.
func (t *BST) Search(key int) bool {
	node := t.root
	for node != nil {
		if key < node.key {
			node = node.left
		} else if key > node.key {
			node = node.right
		} else {
			return true
		}
	}
	return false
}

// InOrder yields every key in ascending order.
func (t *BST) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		bstInOrder(t.root, yield)
	}
}

// PreOrder yields keys root first.
func (t *BST) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		bstPreOrder(t.root, yield)
	}
}

// PostOrder yields keys root last.
func (t *BST) PostOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		bstPostOrder(t.root, yield)
	}
}

func bstInOrder(node *bstNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return bstInOrder(node.left, yield) && yield(node.key) && bstInOrder(node.right, yield)
}

func bstPreOrder(node *bstNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.key) && bstPreOrder(node.left, yield) && bstPreOrder(node.right, yield)
}

func bstPostOrder(node *bstNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return bstPostOrder(node.left, yield) && bstPostOrder(node.right, yield) && yield(node.key)
}
