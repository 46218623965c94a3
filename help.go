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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Structura %s**

Classic container data structures with a terminal workbench: poke at a
self-balancing AVL tree interactively and watch the rotations keep it flat.

Built with Go %s

# 1. Commands
* tui — interactive workbench (insert/delete/search, live tree view)
* demo — walk through the classic rotation scenarios
* bench — build a large random tree, verify every invariant, time it
* stats — depth-distribution dashboard for a random tree
* explain — styled explainer pages (avl, bst, queue, stack, list, heap)
* settings — show or create ~/.structura.yaml

# 2. Library packages
* avl — height-balanced binary search tree (the core)
* container — queue, stack, linked list, plain BST, max-heap
* render — ascii / dot / json tree renderers

# Please be aware
* None of the containers are safe for concurrent mutation
* Copy to clipboard in the TUI on Linux or Unix requires 'xclip' or 'xsel'

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
