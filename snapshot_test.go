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

package main

import (
	"testing"

	"github.com/cybrota/structura/avl"
)

func TestSnapshotTreeMirrorsStructure(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key)
	}

	snap := snapshotTree(tree)
	if snap == nil || snap.Key != 20 || snap.Height != 2 {
		t.Fatalf("root snapshot = %+v, want key 20 height 2", snap)
	}
	if snap.Left.Key != 10 || snap.Right.Key != 30 {
		t.Errorf("children = %d, %d; want 10, 30", snap.Left.Key, snap.Right.Key)
	}
	if snap.Left.Left != nil || snap.Right.Right != nil {
		t.Error("leaves must have nil children")
	}

	if snapshotTree(avl.New()) != nil {
		t.Error("snapshot of an empty tree must be nil")
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"5", "-3", "0"})
	if err != nil {
		t.Fatalf("parseKeys error: %v", err)
	}
	if len(keys) != 3 || keys[0] != 5 || keys[1] != -3 || keys[2] != 0 {
		t.Errorf("parseKeys = %v, want [5 -3 0]", keys)
	}

	if _, err := parseKeys(nil); err == nil {
		t.Error("parseKeys with no args must fail")
	}
	if _, err := parseKeys([]string{"five"}); err == nil {
		t.Error("parseKeys with a non-integer must fail")
	}
}

func TestWorkbenchCommands(t *testing.T) {
	config := defaultConfig
	model := InitialModel(avl.New(), &config)

	model.runCommand("insert 50 30 70")
	if model.tree.Len() != 3 {
		t.Fatalf("tree has %d keys after insert, want 3", model.tree.Len())
	}

	model.runCommand("insert 50")
	if model.tree.Len() != 3 {
		t.Error("duplicate insert changed the tree")
	}

	model.runCommand("delete 30")
	if model.tree.Search(30) {
		t.Error("key 30 still present after delete")
	}

	model.runCommand("order pre")
	if model.order != OrderPre {
		t.Errorf("order = %v after 'order pre'", model.order)
	}

	model.runCommand("format dot")
	if model.config.Render.Format != "dot" {
		t.Errorf("format = %q after 'format dot'", model.config.Render.Format)
	}

	model.runCommand("clear")
	if !model.tree.IsEmpty() {
		t.Error("tree not empty after clear")
	}

	model.runCommand("frobnicate 1")
	if !model.statusIsErr {
		t.Error("unknown command must set an error status")
	}
}
