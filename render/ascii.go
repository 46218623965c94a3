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

// ASCIIRenderer draws the tree sideways, right subtree above the node
// and left subtree below, so in-order reads top to bottom descending.
// Each node shows key, cached height and balance factor.
type ASCIIRenderer struct{}

type asciiBranch int

const (
	branchRoot asciiBranch = iota
	branchLeft
	branchRight
)

func (r *ASCIIRenderer) Format() string { return "ascii" }

func (r *ASCIIRenderer) Render(root *Snapshot) (string, error) {
	if root == nil {
		return "(empty tree)\n", nil
	}
	var b strings.Builder
	asciiNode(&b, root, "", branchRoot)
	return b.String(), nil
}

func asciiNode(b *strings.Builder, node *Snapshot, prefix string, br asciiBranch) {
	if node.Right != nil {
		pad := "      "
		if br == branchLeft {
			pad = "|     "
		}
		asciiNode(b, node.Right, prefix+pad, branchRight)
	}

	switch br {
	case branchRoot:
		fmt.Fprintf(b, "%s+---- ", prefix)
	case branchLeft:
		fmt.Fprintf(b, "%s\\---- ", prefix)
	case branchRight:
		fmt.Fprintf(b, "%s/---- ", prefix)
	}
	fmt.Fprintf(b, "%d (h=%d b=%+d)\n", node.Key, node.Height, node.Balance())

	if node.Left != nil {
		pad := "      "
		if br == branchRight {
			pad = "|     "
		}
		asciiNode(b, node.Left, prefix+pad, branchLeft)
	}
}
