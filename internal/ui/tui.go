// Package ui is the interactive presentation layer. It consumes the store's
// mutation API and the view pipeline's output; all cosmetic behavior (theme,
// celebration) lives here, never in the core.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kvisser/taskline/internal/config"
	"github.com/kvisser/taskline/internal/store"
	"github.com/kvisser/taskline/internal/task"
	"github.com/kvisser/taskline/internal/view"
)

// Run starts the interactive task list.
func Run(st *store.Store, cfg *config.Config) error {
	program := tea.NewProgram(newModel(st, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// inputMode tells Update where typed runes go.
type inputMode int

const (
	modeNormal inputMode = iota
	modeInsert
	modeSearch
)

type clearBannerMsg struct{}

type model struct {
	st  *store.Store
	cfg *config.Config

	tasks  []task.Task
	cursor int

	mode   inputMode
	draft  string
	search string
	filter view.Filter

	dark     bool
	banner   string
	lastErr  error
	showHelp bool
}

func newModel(st *store.Store, cfg *config.Config) *model {
	m := &model{
		st:     st,
		cfg:    cfg,
		filter: view.FilterAll,
		dark:   cfg.DarkMode,
	}
	m.refresh()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// refresh re-derives the displayed list from the store through the view
// pipeline and clamps the cursor.
func (m *model) refresh() {
	m.tasks = view.View(m.st.All(), m.search, m.filter)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	case clearBannerMsg:
		m.banner = ""
		return m, nil
	}
	return m, nil
}

func (m *model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case " ", "enter":
		return m.toggleSelected()
	case "x":
		if m.cursor < len(m.tasks) {
			_, m.lastErr = m.st.Delete(m.tasks[m.cursor].ID)
			m.refresh()
		}
	case "C":
		_, m.lastErr = m.st.ClearCompleted()
		m.refresh()
	case "n":
		m.mode = modeInsert
		m.draft = ""
	case "/":
		m.mode = modeSearch
		m.draft = m.search
	case "a":
		m.filter = view.FilterActive
		m.refresh()
	case "o":
		m.filter = view.FilterAll
		m.refresh()
	case "c":
		m.filter = view.FilterCompleted
		m.refresh()
	case "D":
		m.dark = !m.dark
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// toggleSelected flips the selected task and, on a false-to-true transition,
// shows a transient celebration banner. The store stays effect-free; the
// transition is observed here by inspecting the returned task.
func (m *model) toggleSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.tasks) {
		return m, nil
	}

	t, err := m.st.Toggle(m.tasks[m.cursor].ID)
	m.lastErr = err
	m.refresh()

	if err == nil && t != nil && t.Completed && m.cfg.Celebrate {
		m.banner = fmt.Sprintf("\U0001F389 Nice! %q completed", t.Text)
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return clearBannerMsg{}
		})
	}
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.draft = ""
		return m, nil
	case "enter":
		return m.commitInput()
	case "backspace":
		if len(m.draft) > 0 {
			runes := []rune(m.draft)
			m.draft = string(runes[:len(runes)-1])
		}
		if m.mode == modeSearch {
			m.search = m.draft
			m.refresh()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.draft += string(msg.Runes)
	case tea.KeySpace:
		m.draft += " "
	default:
		return m, nil
	}
	// Search narrows live; insert commits on enter.
	if m.mode == modeSearch {
		m.search = m.draft
		m.refresh()
	}
	return m, nil
}

func (m *model) commitInput() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeInsert:
		// Empty or whitespace-only text is silently rejected by the store.
		_, m.lastErr = m.st.Create(
			m.draft,
			task.Category(m.cfg.DefaultCategory),
			task.Priority(m.cfg.DefaultPriority),
			nil,
		)
	case modeSearch:
		m.search = m.draft
	}
	m.mode = modeNormal
	m.draft = ""
	m.refresh()
	return m, nil
}

func (m *model) View() string {
	th := themeFor(m.dark)
	var b strings.Builder

	b.WriteString(th.title.Render("taskline") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		return th.base.Render(b.String())
	}

	writeStatusLine(&b, th, m.filter, m.search)

	if len(m.tasks) == 0 {
		b.WriteString(th.muted.Render("No tasks. Press n to add one.") + "\n")
	}
	for i, t := range m.tasks {
		b.WriteString(m.renderTask(th, t, i == m.cursor) + "\n")
	}

	if m.banner != "" {
		b.WriteString("\n" + th.banner.Render(m.banner) + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + th.errLine.Render("error: "+m.lastErr.Error()) + "\n")
	}

	switch m.mode {
	case modeInsert:
		b.WriteString("\n" + th.prompt.Render("new task: "+m.draft+"_") + "\n")
	case modeSearch:
		b.WriteString("\n" + th.prompt.Render("search: "+m.draft+"_") + "\n")
	default:
		b.WriteString("\n" + th.muted.Render("n new  / search  space toggle  x delete  a/o/c filter  D theme  h help  q quit") + "\n")
	}

	return th.base.Render(b.String())
}

func writeStatusLine(b *strings.Builder, th theme, filter view.Filter, search string) {
	line := "filter: " + string(filter)
	if search != "" {
		line += fmt.Sprintf("  search: %q", search)
	}
	b.WriteString(th.muted.Render(line) + "\n\n")
}

func (m *model) renderTask(th theme, t task.Task, selected bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	due := ""
	if t.DueDate != nil {
		due = " due " + task.FormatDueDate(*t.DueDate)
	}
	line := fmt.Sprintf("%s %s %s #%s%s", check, priorityMark(t.Priority), t.Text, t.Category, due)

	style := th.item
	if t.Completed {
		style = th.done
	}
	if selected {
		style = th.selected
	}
	return style.Render(line)
}

func priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  space/enter  Toggle completed\n")
	b.WriteString("  n            New task\n")
	b.WriteString("  /            Search (live)\n")
	b.WriteString("  x            Delete selected\n")
	b.WriteString("  C            Clear completed\n")
	b.WriteString("  a / o / c    Filter active / all / completed\n")
	b.WriteString("  D            Toggle dark mode\n")
	b.WriteString("  h, ?         Toggle this help\n")
	b.WriteString("  q, ctrl+c    Quit\n")
}

// theme holds the lipgloss styles for one color mode. Purely cosmetic.
type theme struct {
	base     lipgloss.Style
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	muted    lipgloss.Style
	banner   lipgloss.Style
	prompt   lipgloss.Style
	errLine  lipgloss.Style
}

func themeFor(dark bool) theme {
	if dark {
		return theme{
			base:     lipgloss.NewStyle().Padding(1, 2),
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219")),
			done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120")),
			prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		}
	}
	return theme{
		base:     lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162")),
		item:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("127")),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	}
}
