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

// Package render turns tree snapshots into printable text. Each output
// format is its own strategy behind a common interface, picked at run
// time by the Manager.
package render

// Snapshot is a detached copy of one tree node. Renderers only ever
// see snapshots, so rendering can never mutate a live tree.
type Snapshot struct {
	Key    int
	Height int
	Left   *Snapshot
	Right  *Snapshot
}

// Balance is height(Left) - height(Right) of the snapshot.
func (s *Snapshot) Balance() int {
	var l, r int
	if s.Left != nil {
		l = s.Left.Height
	}
	if s.Right != nil {
		r = s.Right.Height
	}
	return l - r
}

// Renderer produces one textual representation of a tree. A nil root
// is a valid input and renders an empty-tree marker for the format.
type Renderer interface {
	Render(root *Snapshot) (string, error)
	Format() string
}
