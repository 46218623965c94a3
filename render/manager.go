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
	"sort"
)

// Manager holds the registered renderers and picks one by format name.
type Manager struct {
	renderers map[string]Renderer
}

// NewManager creates a manager with every built-in renderer registered.
func NewManager() *Manager {
	m := &Manager{renderers: map[string]Renderer{}}

	m.RegisterRenderer(&ASCIIRenderer{})
	m.RegisterRenderer(&DOTRenderer{})
	m.RegisterRenderer(&JSONRenderer{})

	return m
}

// RegisterRenderer adds a renderer, replacing any earlier registration
// for the same format.
func (m *Manager) RegisterRenderer(r Renderer) {
	m.renderers[r.Format()] = r
}

// Render draws root in the named format. An empty format falls back to
// ascii.
func (m *Manager) Render(format string, root *Snapshot) (string, error) {
	if format == "" {
		format = "ascii"
	}
	r, ok := m.renderers[format]
	if !ok {
		return "", fmt.Errorf("unknown render format %q (have %v)", format, m.Formats())
	}
	return r.Render(root)
}

// Formats lists the registered format names in sorted order.
func (m *Manager) Formats() []string {
	out := make([]string, 0, len(m.renderers))
	for f := range m.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
