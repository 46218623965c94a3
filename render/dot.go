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

package render

import (
	"fmt"
	"strings"
)

// DOTRenderer emits Graphviz dot, one node per key with invisible
// placeholders keeping single children on their correct side.
type DOTRenderer struct{}

func (r *DOTRenderer) Format() string { return "dot" }

func (r *DOTRenderer) Render(root *Snapshot) (string, error) {
	var b strings.Builder
	b.WriteString("digraph tree {\n")
	b.WriteString("  node [shape=circle];\n")
	if root == nil {
		b.WriteString("  empty [label=\"(empty)\" shape=plaintext];\n")
	} else {
		seq := 0
		dotNode(&b, root, &seq)
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func dotNode(b *strings.Builder, node *Snapshot, seq *int) {
	fmt.Fprintf(b, "  n%d [label=\"%d\"];\n", node.Key, node.Key)

	writeChild := func(child *Snapshot) {
		if child != nil {
			dotNode(b, child, seq)
			fmt.Fprintf(b, "  n%d -> n%d;\n", node.Key, child.Key)
			return
		}
		// keep the sibling's slot so single children do not recenter
		if node.Left != nil || node.Right != nil {
			fmt.Fprintf(b, "  p%d [style=invis];\n", *seq)
			fmt.Fprintf(b, "  n%d -> p%d [style=invis];\n", node.Key, *seq)
			*seq++
		}
	}

	writeChild(node.Left)
	writeChild(node.Right)
}
