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
	"encoding/json"
	"strings"
	"testing"
)

// a balanced three-node snapshot: 2 on top, leaves 1 and 3
func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Key:    2,
		Height: 2,
		Left:   &Snapshot{Key: 1, Height: 1},
		Right:  &Snapshot{Key: 3, Height: 1},
	}
}

func TestManagerPicksRendererByFormat(t *testing.T) {
	m := NewManager()

	for _, format := range []string{"ascii", "dot", "json"} {
		out, err := m.Render(format, sampleSnapshot())
		if err != nil {
			t.Errorf("Render(%q) error: %v", format, err)
		}
		if out == "" {
			t.Errorf("Render(%q) produced no output", format)
		}
	}

	if _, err := m.Render("svg", sampleSnapshot()); err == nil {
		t.Error("Render with an unknown format must fail")
	}

	// empty format falls back to ascii
	out, err := m.Render("", sampleSnapshot())
	if err != nil || !strings.Contains(out, "2 (h=2 b=+0)") {
		t.Errorf("default render = %q, %v", out, err)
	}
}

func TestASCIIRendererShape(t *testing.T) {
	out, err := (&ASCIIRenderer{}).Render(sampleSnapshot())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	// sideways layout: right child first, keys descending top to bottom
	for i, want := range []string{"3", "2", "1"} {
		if !strings.Contains(lines[i], want+" (h=") {
			t.Errorf("line %d = %q, want key %s", i, lines[i], want)
		}
	}
}

func TestASCIIRendererEmptyTree(t *testing.T) {
	out, err := (&ASCIIRenderer{}).Render(nil)
	if err != nil || !strings.Contains(out, "empty") {
		t.Errorf("Render(nil) = %q, %v", out, err)
	}
}

func TestDOTRendererEdges(t *testing.T) {
	out, err := (&DOTRenderer{}).Render(sampleSnapshot())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	for _, want := range []string{"digraph tree", "n2 -> n1;", "n2 -> n3;"} {
		if !strings.Contains(out, want) {
			t.Errorf("dot output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONRendererRoundTrip(t *testing.T) {
	out, err := (&JSONRenderer{}).Render(sampleSnapshot())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var decoded jsonNode
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Key != 2 || decoded.Left.Key != 1 || decoded.Right.Key != 3 {
		t.Errorf("decoded tree = %+v", decoded)
	}
}

func TestSnapshotBalance(t *testing.T) {
	s := sampleSnapshot()
	if s.Balance() != 0 {
		t.Errorf("Balance() = %d, want 0", s.Balance())
	}
	s.Right = nil
	if s.Balance() != 1 {
		t.Errorf("Balance() = %d with only a left child, want 1", s.Balance())
	}
}
