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

import (
	"fmt"
	"math"
)

// Check walks the whole tree and verifies every structural invariant:
// strict BST key ordering, cached heights matching the recursive
// definition, every balance factor within [-1, 1], and the stored count
// matching the number of reachable nodes. It returns the first
// violation found, or nil. Intended for tests and diagnostics; it
// visits every node.
func (t *Tree) Check() error {
	n, _, err := checkNode(t.root)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("count is %d but %d nodes are reachable", t.count, n)
	}
	return nil
}

// checkNode returns the node count and the recomputed height of the
// subtree, validating as it goes.
func checkNode(node *Node) (int, int, error) {
	if node == nil {
		return 0, 0, nil
	}

	if node.left != nil && findMax(node.left).key >= node.key {
		return 0, 0, fmt.Errorf("ordering violated at key %d: left subtree reaches %d", node.key, findMax(node.left).key)
	}
	if node.right != nil && findMin(node.right).key <= node.key {
		return 0, 0, fmt.Errorf("ordering violated at key %d: right subtree reaches %d", node.key, findMin(node.right).key)
	}

	ln, lh, err := checkNode(node.left)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := checkNode(node.right)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, 0, fmt.Errorf("stale height at key %d: cached %d, actual %d", node.key, node.height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("balance factor %d at key %d", bf, node.key)
	}

	return ln + rn + 1, h, nil
}

// MaxHeight is the worst-case height an AVL tree of n keys may reach,
// about 1.44*log2(n+2). Useful for asserting the balance guarantee
// from the outside.
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(1.44 * math.Log2(float64(n)+2)))
}
