package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/refptr/handle"
	"github.com/wippyai/refptr/refcount"
	"github.com/wippyai/refptr/resource"
)

type object = refcount.Box[int]

const slotCount = 3

var slotNames = [slotCount]string{"a", "b", "c"}

type keyMap struct {
	Next   key.Binding
	New    key.Binding
	Clone  key.Binding
	Move   key.Binding
	Swap   key.Binding
	Drop   key.Binding
	Detach key.Binding
	Adopt  key.Binding
	Park   key.Binding
	Unpark key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.New, k.Clone, k.Move, k.Drop, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.New, k.Clone, k.Move},
		{k.Swap, k.Drop, k.Detach, k.Adopt},
		{k.Park, k.Unpark, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next slot")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new object")),
		Clone:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clone to next")),
		Move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move to next")),
		Swap:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap with next")),
		Drop:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop")),
		Detach: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "detach")),
		Adopt:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adopt detached")),
		Park:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "park in table")),
		Unpark: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unpark")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type interactiveModel struct {
	table     *resource.Table[*object]
	slots     [slotCount]*handle.Ref[*object]
	objects   []*object
	detached  []*object
	parked    []resource.ID
	events    []string
	keys      keyMap
	help      help.Model
	selected  int
	destroyed int
	leaked    int
	quitting  bool
}

func newInteractiveModel() *interactiveModel {
	m := &interactiveModel{
		table: resource.NewTable[*object](resource.DefaultOptions()),
		keys:  newKeyMap(),
		help:  help.New(),
	}
	for i := range m.slots {
		m.slots[i] = &handle.Ref[*object]{}
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		sel, next := m.slots[m.selected], m.slots[(m.selected+1)%slotCount]
		nextName := slotNames[(m.selected+1)%slotCount]

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.selected = (m.selected + 1) % slotCount

		case key.Matches(msg, m.keys.New):
			obj := m.newObject()
			sel.Set(obj)
			m.logf("%s.Set(obj#%d)", m.name(), obj.Value)

		case key.Matches(msg, m.keys.Clone):
			next.Assign(sel)
			m.logf("%s.Assign(%s)", nextName, m.name())

		case key.Matches(msg, m.keys.Move):
			next.MoveFrom(sel)
			m.logf("%s.MoveFrom(%s)", nextName, m.name())

		case key.Matches(msg, m.keys.Swap):
			sel.Swap(next)
			m.logf("%s.Swap(%s)", m.name(), nextName)

		case key.Matches(msg, m.keys.Drop):
			sel.Drop()
			m.logf("%s.Drop()", m.name())

		case key.Matches(msg, m.keys.Detach):
			if p := sel.Detach(); p != nil {
				m.detached = append(m.detached, p)
				m.logf("%s.Detach() -> obj#%d, one unit now unmanaged", m.name(), p.Value)
			}

		case key.Matches(msg, m.keys.Adopt):
			if n := len(m.detached); n > 0 {
				p := m.detached[n-1]
				m.detached = m.detached[:n-1]
				sel.MoveFrom(handle.Adopt(p))
				m.logf("%s.MoveFrom(Adopt(obj#%d))", m.name(), p.Value)
			}

		case key.Matches(msg, m.keys.Park):
			if id, err := m.table.Insert(sel); err != nil {
				m.logf("park %s: %v", m.name(), err)
			} else {
				m.parked = append(m.parked, id)
				m.logf("table.Insert(%s) -> id %d", m.name(), id)
			}

		case key.Matches(msg, m.keys.Unpark):
			if n := len(m.parked); n > 0 {
				id := m.parked[n-1]
				r, err := m.table.Remove(id)
				if err != nil {
					m.logf("unpark %d: %v", id, err)
					break
				}
				m.parked = m.parked[:n-1]
				sel.MoveFrom(r)
				m.logf("%s.MoveFrom(table.Remove(%d))", m.name(), id)
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.quitting {
		return m.summary()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("refplay"))
	b.WriteString("\n\n")

	for i, r := range m.slots {
		line := fmt.Sprintf(" %s: %-6s %s", slotNames[i], r.State(), describe(r.Get()))
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	for _, obj := range m.objects {
		status := countStyle.Render(fmt.Sprintf("count %d", obj.RefCount()))
		if obj.Destroyed() {
			status = dimStyle.Render("destroyed")
		}
		fmt.Fprintf(&b, " obj#%d  %s\n", obj.Value, status)
	}
	fmt.Fprintf(&b, "\n table: %d parked  detached: %d\n\n", m.table.Len(), len(m.detached))

	start := max(0, len(m.events)-6)
	for _, e := range m.events[start:] {
		b.WriteString(stepStyle.Render(" " + e))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *interactiveModel) name() string {
	return slotNames[m.selected]
}

func (m *interactiveModel) newObject() *object {
	obj := refcount.NewBox(len(m.objects)+1, func(seq int) {
		m.destroyed++
		m.logf("obj#%d destroyed", seq)
	})
	m.objects = append(m.objects, obj)
	return obj
}

func (m *interactiveModel) logf(format string, args ...any) {
	m.events = append(m.events, fmt.Sprintf(format, args...))
}

// shutdown releases every unit the playground still owns and counts leaks.
func (m *interactiveModel) shutdown() {
	for _, r := range m.slots {
		r.Drop()
	}
	for _, p := range m.detached {
		handle.Adopt(p).Drop()
	}
	m.detached = nil
	if err := m.table.Close(); err != nil {
		m.logf("close table: %v", err)
	}
	for _, obj := range m.objects {
		if !obj.Destroyed() {
			m.leaked++
		}
	}
	m.quitting = true
}

func (m *interactiveModel) summary() string {
	line := fmt.Sprintf("%d object(s) created, %d destroyed", len(m.objects), m.destroyed)
	if m.leaked > 0 {
		return errorStyle.Render(fmt.Sprintf("%s, %d leaked", line, m.leaked)) + "\n"
	}
	return okStyle.Render(line) + "\n"
}

func describe(obj *object) string {
	if obj == nil {
		return dimStyle.Render("nil")
	}
	return fmt.Sprintf("obj#%d", obj.Value)
}

func runInteractive() error {
	_, err := tea.NewProgram(newInteractiveModel()).Run()
	return err
}
