// Package view turns task store state into rows and renders them for a terminal.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasklist/storage"
	"tasklist/todo"
)

// Row is one displayed task
type Row struct {
	Position  int // 1-based position within the filtered view
	ID        int64
	Text      string
	Completed bool
	Editing   bool
	Draft     string
}

// Page is everything a renderer needs for one frame
type Page struct {
	Filter       todo.FilterMode
	Rows         []Row
	Remaining    int
	HasCompleted bool
}

// Project maps (tasks, filter, edit session) to a page. It has no side effects.
func Project(tasks []storage.Task, filter todo.FilterMode, edit *todo.EditSession) Page {
	page := Page{Filter: filter, Rows: []Row{}}

	for _, t := range tasks {
		if !t.Completed {
			page.Remaining++
		} else {
			page.HasCompleted = true
		}

		if !filter.Match(t) {
			continue
		}

		row := Row{
			Position:  len(page.Rows) + 1,
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
		}
		if edit != nil && edit.TargetID == t.ID {
			row.Editing = true
			row.Draft = edit.Draft
		}
		page.Rows = append(page.Rows, row)
	}

	return page
}

// FromStore projects the current state of s
func FromStore(s *todo.Store, filter todo.FilterMode) Page {
	var edit *todo.EditSession
	if session, ok := s.Edit(); ok {
		edit = &session
	}
	return Project(s.Tasks(), filter, edit)
}

// EmptyMessage is shown when the filtered view has no rows
func EmptyMessage(filter todo.FilterMode) string {
	switch filter {
	case todo.FilterActive:
		return "You don't have any active tasks!"
	case todo.FilterCompleted:
		return "You don't have any completed tasks!"
	default:
		return "You don't have any todos yet!"
	}
}

// RemainingLabel formats the footer count
func RemainingLabel(n int) string {
	if n == 1 {
		return "1 task remaining"
	}
	return fmt.Sprintf("%d tasks remaining", n)
}

var (
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	editStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3"))
	filterStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
	emptyStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
	positionFmt  = "%3d. "
	checkedBox   = "[✓]"
	uncheckedBox = "[ ]"
)

// Render writes page to w
func Render(w io.Writer, page Page) {
	var b strings.Builder

	// Filter bar, current selection highlighted
	var filters []string
	for _, m := range todo.FilterModes {
		name := strings.ToUpper(m.String()[:1]) + m.String()[1:]
		if m == page.Filter {
			name = filterStyle.Render(name)
		}
		filters = append(filters, name)
	}
	b.WriteString(strings.Join(filters, " | "))
	b.WriteString("\n")

	if len(page.Rows) == 0 {
		b.WriteString("  " + emptyStyle.Render(EmptyMessage(page.Filter)) + "\n")
	}

	for _, r := range page.Rows {
		box := uncheckedBox
		if r.Completed {
			box = checkedBox
		}

		text := r.Text
		switch {
		case r.Editing:
			text = editStyle.Render("editing: " + r.Draft)
		case r.Completed:
			text = doneStyle.Render(text)
		}

		fmt.Fprintf(&b, positionFmt+"%s %s\n", r.Position, box, text)
	}

	footer := RemainingLabel(page.Remaining)
	if page.HasCompleted {
		footer += " · /clear to remove completed"
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	io.WriteString(w, b.String())
}
