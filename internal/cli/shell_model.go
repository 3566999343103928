package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/alexanderramin/chartwise/internal/qa"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt shellMode = iota // Normal question input.
	modeWizard                  // huh form is active.
)

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	// bubbletea components
	input textinput.Model
	form  *huh.Form // active wizard form (nil when not in wizard mode)
	width int

	// shell state
	app          *App
	catalog      *catalog.Catalog
	engine       *qa.Engine
	conversation *Conversation

	// mode management
	mode       shellMode
	wizardDone func(m *shellModel) tea.Cmd // called when wizard form completes

	// wizard answers; the form writes through pointers, so they must
	// outlive copies of the model
	wizard *recommendAnswers

	// input history (up/down), this session only
	history    []string
	historyIdx int

	// lifecycle
	quitting bool
}

type recommendAnswers struct {
	dataType string
	purpose  string
}

// newShellModel creates a shell model over the app's active catalog.
func newShellModel(app *App) (shellModel, error) {
	ctx := context.Background()
	c, err := app.Catalog(ctx)
	if err != nil {
		return shellModel{}, err
	}
	engine, err := app.Engine(ctx)
	if err != nil {
		return shellModel{}, err
	}

	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Use Tab for suggestion acceptance, reserve Up/Down for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return shellModel{
		input:        ti,
		app:          app,
		catalog:      c,
		engine:       engine,
		conversation: NewConversation(),
	}, nil
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome(m.catalog.Len())),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit.
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		if m.mode == modeWizard {
			return m.updateWizard(msg)
		}
		return m.updatePrompt(msg)
	}

	// When in wizard mode, forward non-key messages to the huh form
	// (e.g. init messages, focus transitions) so it can function properly.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	// Pass other messages to textinput.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}

	return m.promptPrefix() + m.input.View()
}

func (m *shellModel) promptPrefix() string {
	return formatter.StylePurple.Render("chartwise") + " " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the wizard.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			doneCmd := done(&m)
			return m, tea.Batch(cmd, doneCmd)
		}
		return m, cmd
	}

	return m, cmd
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	// First word: suggest commands.
	if len(parts) <= 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(shellCommandNames(), parts[0]))
		return
	}

	// Second word: suggest chart ids or categories.
	if len(parts) <= 2 && (!trailingSpace || len(parts) == 1) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}
		var pool []string
		switch strings.ToLower(parts[0]) {
		case "show":
			for _, ch := range m.catalog.All() {
				pool = append(pool, ch.ID)
			}
		case "category":
			for _, c := range m.catalog.Categories() {
				pool = append(pool, strings.ToLower(string(c)))
			}
		}
		if pool != nil {
			// textinput matches suggestions against the whole line.
			full := make([]string, 0, len(pool))
			for _, s := range filterSuggestions(pool, prefix) {
				full = append(full, parts[0]+" "+s)
			}
			m.input.SetSuggestions(full)
			return
		}
	}

	m.input.SetSuggestions(nil)
}

// shellCommandNames returns all shell command names.
func shellCommandNames() []string {
	return []string{
		"list", "categories", "category", "show",
		"recommend", "history", "help", "clear", "exit", "quit",
	}
}

func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

// executeCommand runs a shell command, or answers the line as a question
// when it is not one. Commands only match with their exact argument count,
// so "show me a heatmap" is a question while "show heatmap" is a command.
func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	name := strings.ToLower(fields[0])

	var args []string
	if len(fields) > 1 {
		parts, err := splitShellArgs(input)
		if err != nil {
			// Apostrophes in questions ("what's ...") are not quotes.
			return m.ask(input), nil
		}
		args = parts[1:]
	}

	switch {
	case name == "help" && len(args) == 0:
		return formatter.FormatShellHelp(), nil
	case (name == "list" || name == "categories") && len(args) == 0:
		return captureCobraOutput(m.app, []string{name}), nil
	case name == "category" && len(args) == 1:
		return captureCobraOutput(m.app, []string{name, args[0]}), nil
	case name == "show" && len(args) == 1 && m.hasChart(args[0]):
		return captureCobraOutput(m.app, []string{name, args[0]}), nil
	case name == "recommend" && len(args) == 0:
		return "", m.execRecommend()
	case name == "history" && len(args) == 0:
		return formatter.FormatHistory(m.conversation.historyItems()), nil
	case name == "clear" && len(args) == 0:
		return "\033[H\033[2J", nil
	case (name == "exit" || name == "quit") && len(args) == 0:
		m.quitting = true
		return "", tea.Quit
	default:
		return m.ask(input), nil
	}
}

func (m *shellModel) hasChart(id string) bool {
	_, ok := m.catalog.Get(id)
	return ok
}

// ask answers a question and records it in the conversation.
func (m *shellModel) ask(query string) string {
	tr := m.engine.Explain(query)
	m.conversation.Record(query, tr.Response)
	return formatter.FormatAnswer(tr.Response, tr.Fallback)
}

// execRecommend starts the recommendation wizard.
func (m *shellModel) execRecommend() tea.Cmd {
	m.wizard = &recommendAnswers{}
	form := wizardRecommend(m.catalog, &m.wizard.dataType, &m.wizard.purpose)
	if m.width > 0 {
		form = form.WithWidth(m.width)
	}
	return m.startWizard(form, (*shellModel).finishRecommend)
}

func (m *shellModel) finishRecommend() tea.Cmd {
	a := m.wizard
	m.wizard = nil
	if a == nil {
		return nil
	}
	query := fmt.Sprintf("recommend: %s data, %s", a.dataType, a.purpose)
	m.conversation.Record(query, m.engine.Recommendation(a.dataType, a.purpose))
	return tea.Println(formatRecommendation(m.engine, a.dataType, a.purpose, m.catalog.Recommend(a.dataType, a.purpose)))
}
