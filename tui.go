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
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"

	"github.com/cybrota/structura/avl"
	"github.com/cybrota/structura/render"
)

// TraversalOrder selects which sequence the output pane shows.
type TraversalOrder int

const (
	OrderIn TraversalOrder = iota
	OrderPre
	OrderPost
)

func (o TraversalOrder) String() string {
	switch o {
	case OrderPre:
		return "pre-order"
	case OrderPost:
		return "post-order"
	default:
		return "in-order"
	}
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	commandInput textinput.Model
	treeViewport viewport.Model

	tree    *avl.Tree
	manager *render.Manager
	config  *Config

	order       TraversalOrder
	focusOnTree bool // viewport scrolling focused instead of the input
	statusMsg   string
	statusIsErr bool
	quote       string

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Quote          lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Quote: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true),
	}
}

// InitialModel creates the initial model
func InitialModel(tree *avl.Tree, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 50 30 70 | delete 30 | search 70 | order pre | clear"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent("The tree is empty. Type 'insert 50 30 70' and hit Enter.")

	model := Model{
		commandInput: ti,
		treeViewport: vp,
		tree:         tree,
		manager:      render.NewManager(),
		config:       config,
		order:        OrderIn,
		styles:       NewStyles(),
		statusMsg:    "Ready.",
		quote:        GetRandomQuote(),
	}
	model.refreshTreeView()

	return model
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.commandInput.Blur()
			} else {
				m.commandInput.Focus()
			}
			return m, nil
		case "ctrl+y":
			m.yankTraversal()
			return m, nil
		case "enter":
			if !m.focusOnTree {
				m.runCommand(m.commandInput.Value())
				m.commandInput.SetValue("")
				m.quote = GetRandomQuote()
				return m, nil
			}
		}

		if m.focusOnTree {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}
		m.commandInput, cmd = m.commandInput.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// runCommand parses and executes one workbench command line.
func (m *Model) runCommand(line string) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		m.setError(fmt.Sprintf("Cannot parse input: %v", err))
		return
	}
	if len(parts) == 0 {
		return
	}

	verb := strings.ToLower(parts[0])
	args := parts[1:]

	switch verb {
	case "insert", "i":
		keys, err := parseKeys(args)
		if err != nil {
			m.setError(err.Error())
			return
		}
		before := m.tree.Len()
		for _, key := range keys {
			m.tree.Insert(key)
		}
		m.setStatus(fmt.Sprintf("Inserted %d new key(s), %d duplicate(s) ignored.", m.tree.Len()-before, len(keys)-(m.tree.Len()-before)))

	case "delete", "d":
		keys, err := parseKeys(args)
		if err != nil {
			m.setError(err.Error())
			return
		}
		before := m.tree.Len()
		for _, key := range keys {
			m.tree.Delete(key)
		}
		m.setStatus(fmt.Sprintf("Removed %d key(s), %d absent.", before-m.tree.Len(), len(keys)-(before-m.tree.Len())))

	case "search", "s":
		keys, err := parseKeys(args)
		if err != nil || len(keys) != 1 {
			m.setError("Usage: search <key>")
			return
		}
		if m.tree.Search(keys[0]) {
			m.setStatus(fmt.Sprintf("Key %d is present.", keys[0]))
		} else {
			m.setStatus(fmt.Sprintf("Key %d is absent.", keys[0]))
		}

	case "order", "o":
		if len(args) != 1 {
			m.setError("Usage: order in|pre|post")
			return
		}
		switch strings.ToLower(args[0]) {
		case "in":
			m.order = OrderIn
		case "pre":
			m.order = OrderPre
		case "post":
			m.order = OrderPost
		default:
			m.setError("Usage: order in|pre|post")
			return
		}
		m.setStatus(fmt.Sprintf("Showing %s traversal.", m.order))

	case "format", "f":
		if len(args) != 1 || !slices.Contains(m.manager.Formats(), args[0]) {
			m.setError(fmt.Sprintf("Usage: format %s", strings.Join(m.manager.Formats(), "|")))
			return
		}
		m.config.Render.Format = args[0]
		m.setStatus(fmt.Sprintf("Rendering as %s.", args[0]))

	case "clear", "c":
		m.tree = avl.New()
		m.setStatus("Cleared the tree.")

	default:
		m.setError(fmt.Sprintf("Unknown command %q. Try: insert, delete, search, order, format, clear.", verb))
		return
	}

	m.refreshTreeView()
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one integer key")
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer key", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.statusIsErr = true
}

// refreshTreeView redraws the tree pane and traversal line.
func (m *Model) refreshTreeView() {
	drawn, err := m.manager.Render(m.config.Render.Format, snapshotTree(m.tree))
	if err != nil {
		drawn = err.Error()
	}

	var content strings.Builder
	content.WriteString(drawn)
	content.WriteString("\n")
	fmt.Fprintf(&content, "%s (%d keys): %v\n", m.order, m.tree.Len(), m.traversalKeys())
	if !m.tree.IsEmpty() {
		fmt.Fprintf(&content, "height: %d  (worst case for %d keys: %d)\n",
			m.tree.Root().Height(), m.tree.Len(), avl.MaxHeight(m.tree.Len()))
	}
	m.treeViewport.SetContent(content.String())
}

func (m *Model) traversalKeys() []int {
	switch m.order {
	case OrderPre:
		return slices.Collect(m.tree.PreOrder())
	case OrderPost:
		return slices.Collect(m.tree.PostOrder())
	default:
		return slices.Collect(m.tree.InOrder())
	}
}

// yankTraversal copies the current traversal to the system clipboard.
func (m *Model) yankTraversal() {
	keys := m.traversalKeys()
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.Itoa(key)
	}
	text := strings.Join(parts, " ")

	if err := copyToClipboard(text); err != nil {
		m.setError(fmt.Sprintf("Clipboard copy failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Copied %s traversal (%d keys) to clipboard.", m.order, len(keys)))
}

// updateLayout recalculates component dimensions on resize
func (m *Model) updateLayout() {
	inputHeight := 3
	footerHeight := 3

	m.commandInput.Width = m.width - 8
	m.treeViewport.Width = m.width - 4
	m.treeViewport.Height = m.height - inputHeight - footerHeight - 4
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.styles.Title.Render("🌳 Structura AVL Workbench")

	inputBorder := m.styles.BorderBlurred
	treeBorder := m.styles.BorderBlurred
	if m.focusOnTree {
		treeBorder = m.styles.BorderFocused
	} else {
		inputBorder = m.styles.BorderFocused
	}

	input := inputBorder.Width(m.width - 4).Render(m.commandInput.View())
	treePane := treeBorder.Width(m.width - 4).Render(m.treeViewport.View())

	status := m.styles.SuccessMessage.Render(m.statusMsg)
	if m.statusIsErr {
		status = m.styles.ErrorMessage.Render(m.statusMsg)
	}

	help := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.HelpKey.Render("enter"), m.styles.HelpDesc.Render(" run  "),
		m.styles.HelpKey.Render("tab"), m.styles.HelpDesc.Render(" focus tree  "),
		m.styles.HelpKey.Render("ctrl+y"), m.styles.HelpDesc.Render(" copy traversal  "),
		m.styles.HelpKey.Render("esc"), m.styles.HelpDesc.Render(" quit"),
	)
	quote := m.styles.Quote.Render("“" + m.quote + "”")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		input,
		treePane,
		status,
		help,
		quote,
	)
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runTUI starts the Bubble Tea workbench on a fresh tree.
func runTUI(config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(avl.New(), config),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}
	return nil
}
