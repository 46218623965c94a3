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

// Search reports whether key is present in the tree.
func (t *Tree) Search(key int) bool {
	return searchNode(t.root, key)
}

// Contains is an alias for Search.
func (t *Tree) Contains(key int) bool {
	return t.Search(key)
}

func searchNode(node *Node, key int) bool {
	if node == nil {
		return false
	}

	if key < node.key {
		return searchNode(node.left, key)
	} else if key > node.key {
		return searchNode(node.right, key)
	}
	return true
}
