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
	"math/rand"
	"slices"
	"testing"
)

type treeTestCase struct {
	Name          string
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{2, 1, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Ascending Insertion (RR rotations)",
			KeysToInsert:  []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			Name:          "Descending Insertion (LL rotations)",
			KeysToInsert:  []int{7, 6, 5, 4, 3, 2, 1},
			ExpectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			Name:          "Duplicate Insertion Is a No-op",
			KeysToInsert:  []int{5, 3, 8, 3, 5, 8},
			ExpectedOrder: []int{3, 5, 8},
		},
		{
			Name:          "Deletion with Rebalancing",
			KeysToInsert:  []int{3, 2, 1},
			KeysToDelete:  []int{3},
			ExpectedOrder: []int{1, 2},
		},
		{
			Name:          "Delete Absent Key Is a No-op",
			KeysToInsert:  []int{10, 5, 15},
			KeysToDelete:  []int{42},
			ExpectedOrder: []int{5, 10, 15},
		},
		{
			Name:          "Mixed Operations",
			KeysToInsert:  []int{4, 2, 6, 1, 3, 5, 7},
			KeysToDelete:  []int{2, 6},
			ExpectedOrder: []int{1, 3, 4, 5, 7},
		},
		{
			Name:          "Delete Everything",
			KeysToInsert:  []int{2, 1, 3},
			KeysToDelete:  []int{1, 2, 3},
			ExpectedOrder: []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New()
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Delete(key)
			}

			got := slices.Collect(tree.InOrder())
			if !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("in-order traversal = %v, want %v", got, tc.ExpectedOrder)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d, want %d", tree.Len(), len(tc.ExpectedOrder))
			}
			if err := tree.Check(); err != nil {
				t.Errorf("invariant check failed: %v", err)
			}
		})
	}
}

// Inserting 10, 20, 30 forces a right-right imbalance at the root; a
// single left rotation must leave 20 on top with two height-1 leaves.
func TestInsertRightRightRotatesAtRoot(t *testing.T) {
	tree := New()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key)
	}

	root := tree.Root()
	if root.Key() != 20 {
		t.Fatalf("root key = %d, want 20", root.Key())
	}
	if root.Left().Key() != 10 || root.Right().Key() != 30 {
		t.Errorf("children = %d, %d, want 10, 30", root.Left().Key(), root.Right().Key())
	}
	if root.Left().Height() != 1 || root.Right().Height() != 1 {
		t.Errorf("leaf heights = %d, %d, want 1, 1", root.Left().Height(), root.Right().Height())
	}
	if got := slices.Collect(tree.InOrder()); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("in-order = %v, want [10 20 30]", got)
	}
}

// Inserting 30, 10, 20 forces the left-right double rotation case.
func TestInsertLeftRightRotatesAtRoot(t *testing.T) {
	tree := New()
	for _, key := range []int{30, 10, 20} {
		tree.Insert(key)
	}

	if tree.Root().Key() != 20 {
		t.Fatalf("root key = %d, want 20", tree.Root().Key())
	}
	if got := slices.Collect(tree.InOrder()); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("in-order = %v, want [10 20 30]", got)
	}
}

// Deleting a root with two children promotes the in-order predecessor.
func TestDeleteRootWithTwoChildren(t *testing.T) {
	tree := New()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(key)
	}

	tree.Delete(50)

	if tree.Root().Key() != 40 {
		t.Fatalf("root key after delete = %d, want predecessor 40", tree.Root().Key())
	}
	if got := slices.Collect(tree.InOrder()); !slices.Equal(got, []int{20, 30, 40, 60, 70, 80}) {
		t.Errorf("in-order = %v, want [20 30 40 60 70 80]", got)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariant check failed: %v", err)
	}
}

func TestTraversalOrders(t *testing.T) {
	tree := New()
	for _, key := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key)
	}

	if got := slices.Collect(tree.PreOrder()); !slices.Equal(got, []int{4, 2, 1, 3, 6, 5, 7}) {
		t.Errorf("pre-order = %v, want [4 2 1 3 6 5 7]", got)
	}
	if got := slices.Collect(tree.PostOrder()); !slices.Equal(got, []int{1, 3, 2, 5, 7, 6, 4}) {
		t.Errorf("post-order = %v, want [1 3 2 5 7 6 4]", got)
	}
}

// A traversal sequence must be restartable and stoppable part-way.
func TestTraversalIsRestartable(t *testing.T) {
	tree := New()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key)
	}

	seq := tree.InOrder()
	for key := range seq {
		if key == 2 {
			break // early exit must not poison the sequence
		}
	}

	if got := slices.Collect(seq); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("second pass = %v, want [1 2 3]", got)
	}
}

func TestSearch(t *testing.T) {
	tree := New()

	if tree.Search(1) {
		t.Error("Search on an empty tree must be false")
	}

	keys := []int{8, 3, 10, 1, 6, 14, 4, 7, 13}
	for _, key := range keys {
		tree.Insert(key)
	}
	for _, key := range keys {
		if !tree.Search(key) {
			t.Errorf("Search(%d) = false, want true", key)
		}
	}
	for _, key := range []int{0, 2, 5, 9, 15} {
		if tree.Search(key) {
			t.Errorf("Search(%d) = true, want false", key)
		}
	}

	tree.Delete(6)
	if tree.Search(6) {
		t.Error("Search(6) = true after deleting 6")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New()

	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("new tree: IsEmpty() = %v, Len() = %d", tree.IsEmpty(), tree.Len())
	}
	if got := slices.Collect(tree.InOrder()); len(got) != 0 {
		t.Errorf("in-order of empty tree = %v, want empty", got)
	}

	tree.Delete(7) // no-op, must not panic
	if err := tree.Check(); err != nil {
		t.Errorf("invariant check failed: %v", err)
	}
}

func TestMinMax(t *testing.T) {
	tree := New()
	if _, ok := tree.Min(); ok {
		t.Error("Min on an empty tree must report false")
	}

	for _, key := range []int{5, 1, 9, 3, 7} {
		tree.Insert(key)
	}
	if lo, _ := tree.Min(); lo != 1 {
		t.Errorf("Min = %d, want 1", lo)
	}
	if hi, _ := tree.Max(); hi != 9 {
		t.Errorf("Max = %d, want 9", hi)
	}
}

// Random churn: after every operation the tree must satisfy every
// structural invariant, the in-order sequence must be strictly
// increasing, and the count must track a reference set exactly.
func TestRandomizedInvariants(t *testing.T) {
	const (
		rounds   = 5000
		keySpace = 800
	)

	rng := rand.New(rand.NewSource(1))
	tree := New()
	reference := map[int]struct{}{}

	for i := 0; i < rounds; i++ {
		key := rng.Intn(keySpace)
		if rng.Intn(3) == 0 {
			tree.Delete(key)
			delete(reference, key)
		} else {
			tree.Insert(key)
			reference[key] = struct{}{}
		}

		if err := tree.Check(); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		if tree.Len() != len(reference) {
			t.Fatalf("round %d: Len() = %d, reference has %d", i, tree.Len(), len(reference))
		}
	}

	prev := -1
	for key := range tree.InOrder() {
		if key <= prev {
			t.Fatalf("in-order not strictly increasing: %d after %d", key, prev)
		}
		if _, ok := reference[key]; !ok {
			t.Fatalf("tree holds %d which the reference set does not", key)
		}
		prev = key
	}

	if h := tree.Root().Height(); h > MaxHeight(tree.Len()) {
		t.Errorf("height %d exceeds AVL bound %d for %d keys", h, MaxHeight(tree.Len()), tree.Len())
	}
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	keys := make([]int, b.N)
	for i := range keys {
		keys[i] = rng.Int()
	}
	b.ResetTimer()

	tree := New()
	for _, key := range keys {
		tree.Insert(key)
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := New()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		tree.Insert(rng.Intn(1 << 20))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Search(i & (1<<20 - 1))
	}
}
