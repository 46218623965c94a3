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
	"slices"

	"github.com/cybrota/structura/avl"
	"github.com/cybrota/structura/render"
)

type demoStep struct {
	Title   string
	Inserts []int
	Deletes []int
}

var demoSteps = []demoStep{
	{
		Title:   "Ascending inserts 10, 20, 30 — right-right case, one left rotation",
		Inserts: []int{10, 20, 30},
	},
	{
		Title:   "Inserts 30, 10, 20 — left-right case, double rotation",
		Inserts: []int{30, 10, 20},
	},
	{
		Title:   "Seven keys, then delete the root — predecessor takes over",
		Inserts: []int{50, 30, 70, 20, 40, 60, 80},
		Deletes: []int{50},
	},
}

// runDemo replays the classic rotation scenarios, drawing each result
// with the configured renderer.
func runDemo(config *Config) error {
	manager := render.NewManager()

	for i, step := range demoSteps {
		tree := avl.New()
		for _, key := range step.Inserts {
			tree.Insert(key)
		}
		for _, key := range step.Deletes {
			tree.Delete(key)
		}

		out, err := manager.Render(config.Render.Format, snapshotTree(tree))
		if err != nil {
			return err
		}

		fmt.Printf("%s%d. %s%s\n\n", Info, i+1, step.Title, Reset)
		fmt.Print(out)
		fmt.Printf("\n   in-order: %v\n\n", slices.Collect(tree.InOrder()))
	}
	return nil
}
