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
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

// Explainer pages shown by `structura explain <structure>`. Kept as
// markdown so glamour can style them for the terminal.
var explainPages = map[string]string{
	"avl": `
# AVL Tree

A binary search tree that keeps itself balanced: after every insert or
delete, the height of the two subtrees of any node differs by at most 1.
That bound keeps every operation at **O(log n)**.

## How balance is kept

Every node caches its subtree height. The *balance factor* of a node is
` + "`height(left) - height(right)`" + `. When a mutation pushes a balance
factor to +2 or -2, one of four rotation cases repairs it:

| Case | Shape | Fix |
|------|-------|-----|
| LL | left child is left-heavy | rotate right |
| LR | left child is right-heavy | rotate left child left, then rotate right |
| RR | right child is right-heavy | rotate left |
| RL | right child is left-heavy | rotate right child right, then rotate left |

A rotation is a constant-time exchange of three child slots and never
changes the in-order key sequence.

## Deletion

A node with two children takes the key of its in-order predecessor (the
rightmost node of its left subtree), and the predecessor is spliced out
instead. Unlike insertion, one deletion can leave several ancestors out
of balance, so every node on the way back up rechecks its own balance
factor.

Try it live: ` + "`structura tui`" + `.
`,

	"bst": `
# Binary Search Tree (plain)

The same insert/delete/search contract as the AVL tree, minus the
rebalancing. Average case O(log n); a sorted insertion order degrades
it to a linked list and O(n) operations, which is exactly what the AVL
variant fixes. Deleting a node with two children promotes the in-order
successor (leftmost of the right subtree).
`,

	"queue": `
# Queue (circular buffer)

A FIFO queue over a fixed-capacity ring. Two cursors (head position and
current size) wrap around the backing array, so enqueue and dequeue are
O(1) with no allocation after construction. A full queue rejects new
items instead of growing — check ` + "`IsFull`" + ` first.
`,

	"stack": `
# Stack

A LIFO stack over a growable slice. Push appends; when the backing
array is out of room, it is reallocated at a larger size, which makes
push amortized O(1). Pop and Peek read from the tail. The zero value
is an empty, usable stack.
`,

	"list": `
# Singly Linked List

Elements chained by one forward pointer each. Positional insert and
remove walk from the head to the target index: O(i) time, but no
shifting and no reallocation. Position 0 is the head; inserting at
position Len() appends.
`,

	"heap": `
# Binary Max-Heap

A complete binary tree stored flat in a slice: the children of index i
live at 2i+1 and 2i+2. Every parent is >= its children, so the maximum
is always at index 0. Push sifts the new item up; PopMax moves the last
leaf to the root and sifts it down. Both are O(log n).
`,
}

// ExplainTopics lists the available explainer names, sorted.
func ExplainTopics() []string {
	topics := make([]string, 0, len(explainPages))
	for t := range explainPages {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// GetOrRenderExplainPage returns the styled explainer for topic,
// rendering it with glamour on the first request and serving the
// cached copy afterwards.
func GetOrRenderExplainPage(c *cache.Cache, topic string) (string, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))

	if page := GetExplainPage(c, topic); page != "" {
		return page, nil
	}

	source, ok := explainPages[topic]
	if !ok {
		return "", fmt.Errorf("no explainer for %q (have: %s)", topic, strings.Join(ExplainTopics(), ", "))
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build markdown renderer: %v", err)
	}

	rendered, err := renderer.Render(source)
	if err != nil {
		return "", fmt.Errorf("failed to render explainer for %q: %v", topic, err)
	}

	CacheExplainPage(c, topic, rendered)
	return rendered, nil
}
