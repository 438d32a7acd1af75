// Package picker is an option list for choosing a filter's values.
package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"sieve/message"
	"sieve/style"
)

const dialogWidth = 40

// Item is one selectable row
type Item struct {
	Label   string
	Icon    string
	Value   any
	Checked bool
}

// Picker displays a filter's catalogue with the chosen values checked
type Picker struct {
	title  string
	icon   string
	items  []Item
	negate bool
	cursor int

	width  int
	height int
}

// SizeMsg carries the space available to the picker
type SizeMsg struct {
	Width  int
	Height int
}

func New(title, icon string, items []Item, negate bool) Picker {
	return Picker{
		title:  title,
		icon:   icon,
		items:  items,
		negate: negate,
	}
}

func (pkr Picker) Init() tea.Cmd {
	return nil
}

func (pkr Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pkr.width = msg.Width
		pkr.height = msg.Height

	case tea.KeyPressMsg:
		return pkr.handleKey(msg)
	}

	return pkr, nil
}

func (pkr Picker) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if pkr.cursor > 0 {
			pkr.cursor--
		}

	case "down", "j":
		if pkr.cursor < len(pkr.items)-1 {
			pkr.cursor++
		}

	case "t", "space", " ":
		if len(pkr.items) == 0 {
			return pkr, nil
		}
		pkr.items = toggled(pkr.items, pkr.cursor)
		return pkr, message.ToggleCmd(pkr.title, pkr.items[pkr.cursor].Value)

	case "n":
		pkr.negate = !pkr.negate
		negate := pkr.negate
		return pkr, func() tea.Msg {
			return message.ModeMsg{Filter: pkr.title, Negate: negate}
		}

	case "p", "enter":
		return pkr, func() tea.Msg {
			return message.ApplyMsg{Filter: pkr.title}
		}

	case "esc", "q":
		return pkr, func() tea.Msg {
			return message.CloseMsg{Filter: pkr.title}
		}
	}

	return pkr, nil
}

// Items returns the rows with their current check state
func (pkr Picker) Items() []Item {
	return append([]Item(nil), pkr.items...)
}

// Negate reports whether checked values are excluded rather than included
func (pkr Picker) Negate() bool {
	return pkr.negate
}

// Render draws the list without the dialog frame
func (pkr Picker) Render() string {
	var content strings.Builder

	mode := style.CheckedStyle.Render("in")
	if pkr.negate {
		mode = style.NegateStyle.Render("not in")
	}
	content.WriteString(style.TitleStyle.Render(strings.TrimSpace(pkr.icon+" "+pkr.title)) + " " + mode + "\n")

	if len(pkr.items) == 0 {
		content.WriteString(style.MutedStyle.Render("(no options)") + "\n")
	}

	rowStyle := style.RowStyler(pkr.cursor)
	for i, item := range pkr.items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}

		prefix := "  "
		if i == pkr.cursor {
			prefix = "> "
		}

		row := fmt.Sprintf("%s%s %s", prefix, box, strings.TrimSpace(item.Icon+" "+item.Label))
		content.WriteString(rowStyle(i).Render(row) + "\n")
	}

	helpText := "t: toggle  n: in/not in  ↑↓: move  p: apply  Esc: close"
	content.WriteString("\n" + style.MutedStyle.Render(helpText))

	return content.String()
}

func (pkr Picker) View() tea.View {

	dialog := style.Dialog(pkr.Render(), dialogWidth)

	// Center the dialog
	if pkr.width > 0 && pkr.height > 0 {
		vPad := max((pkr.height-lipgloss.Height(dialog))/2, 0)
		hPad := max((pkr.width-lipgloss.Width(dialog))/2, 0)

		return tea.NewView(lipgloss.NewLayer("picker", dialog).X(hPad).Y(vPad))
	}

	return tea.NewView(lipgloss.NewLayer("picker", dialog))
}

// unexported

func toggled(items []Item, idx int) []Item {
	items = append([]Item(nil), items...)
	items[idx].Checked = !items[idx].Checked
	return items
}
