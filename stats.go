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
	"math/rand"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/structura/avl"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// depthHistogram counts nodes per depth (root at depth 0).
func depthHistogram(node *avl.Node, depth int, counts map[int]int) {
	if node == nil {
		return
	}
	counts[depth]++
	depthHistogram(node.Left(), depth+1, counts)
	depthHistogram(node.Right(), depth+1, counts)
}

// runStatsDashboard fills a tree with random keys and shows how flat
// the balancing keeps it: a bar chart of nodes per depth and a gauge
// of actual height against the worst-case AVL bound.
func runStatsDashboard(config *Config) error {
	n := config.Bench.Keys
	if n > 1<<16 {
		n = 1 << 16 // depth chart stops being readable past this
	}

	rng := rand.New(rand.NewSource(config.Bench.Seed))
	tree := avl.New()
	for tree.Len() < n {
		tree.Insert(rng.Intn(n * 16))
	}

	counts := map[int]int{}
	depthHistogram(tree.Root(), 0, counts)

	height := tree.Root().Height()
	bound := avl.MaxHeight(n)

	data := make([]float64, height)
	labels := make([]string, height)
	for d := 0; d < height; d++ {
		data[d] = float64(counts[d])
		labels[d] = fmt.Sprintf("%d", d)
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	defer ui.Close()
	DisableMouseInput()

	scheme := GetColorScheme()

	header := widgets.NewParagraph()
	header.Title = " Structura: AVL Depth Stats "
	header.Text = fmt.Sprintf("%d random keys  |  height %d  |  worst-case AVL bound %d  |  press q to quit", n, height, bound)
	header.TitleStyle = ui.NewStyle(scheme.Primary)
	header.TextStyle = StyleText()
	header.BorderStyle = StyleBorder(false)

	chart := widgets.NewBarChart()
	chart.Title = " Nodes per depth "
	chart.Data = data
	chart.Labels = labels
	chart.BarWidth = 5
	chart.BarColors = []ui.Color{scheme.Primary}
	chart.NumStyles = []ui.Style{StyleText()}
	chart.LabelStyles = []ui.Style{StyleTextMuted()}
	chart.TitleStyle = ui.NewStyle(scheme.Primary)
	chart.BorderStyle = StyleBorder(true)

	gauge := widgets.NewGauge()
	gauge.Title = " Height vs. worst-case bound "
	gauge.Percent = height * 100 / bound
	gauge.Label = fmt.Sprintf("%d of %d", height, bound)
	gauge.BarColor = scheme.Success
	gauge.TitleStyle = ui.NewStyle(scheme.Primary)
	gauge.BorderStyle = StyleBorder(false)

	draw := func() {
		termWidth, termHeight := ui.TerminalDimensions()
		header.SetRect(0, 0, termWidth, 3)
		chart.SetRect(0, 3, termWidth, termHeight-3)
		gauge.SetRect(0, termHeight-3, termWidth, termHeight)
		ui.Render(header, chart, gauge)
	}
	draw()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			ui.Clear()
			draw()
		}
	}
	return nil
}
