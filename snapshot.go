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
	"github.com/cybrota/structura/avl"
	"github.com/cybrota/structura/render"
)

// snapshotTree detaches a render.Snapshot copy of the tree, so the
// renderers never touch live nodes.
func snapshotTree(t *avl.Tree) *render.Snapshot {
	return snapshotNode(t.Root())
}

func snapshotNode(n *avl.Node) *render.Snapshot {
	if n == nil {
		return nil
	}
	return &render.Snapshot{
		Key:    n.Key(),
		Height: n.Height(),
		Left:   snapshotNode(n.Left()),
		Right:  snapshotNode(n.Right()),
	}
}
