package cli

import (
	"testing"

	"github.com/alexanderramin/chartwise/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T) shellModel {
	t.Helper()
	m, err := newShellModel(testApp(t))
	require.NoError(t, err)
	return m
}

func TestSplitShellArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "single word", input: "list", want: []string{"list"}},
		{name: "command and argument", input: "show  pie_chart", want: []string{"show", "pie_chart"}},
		{name: "double quoted", input: `category "Distribution"`, want: []string{"category", "Distribution"}},
		{name: "single quoted", input: "show 'bar_chart'", want: []string{"show", "bar_chart"}},
		{name: "escaped space", input: `show bar\ chart`, want: []string{"show", "bar chart"}},
		{name: "unterminated quote", input: `show "oops`, wantErr: true},
		{name: "unterminated escape", input: `show hi\`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitShellArgs(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- command dispatch ---

func TestShellModel_AnswersQuestionsAndRecordsThem(t *testing.T) {
	m := newTestShell(t)

	out, cmd := m.executeCommand("Tell me about pie charts")
	assert.Nil(t, cmd)
	assert.Contains(t, out, "The Pie Chart is ideal for Showing composition.")

	require.Equal(t, 1, m.conversation.Len())
	ex := m.conversation.Exchanges()[0]
	assert.Equal(t, "Tell me about pie charts", ex.Query)
	assert.Contains(t, ex.Response, "Pie Chart")
}

func TestShellModel_ApostropheIsNotAQuote(t *testing.T) {
	m := newTestShell(t)

	out, _ := m.executeCommand("what's a pie chart")

	assert.Contains(t, out, "The Pie Chart is ideal")
	assert.Equal(t, 1, m.conversation.Len())
}

func TestShellModel_CommandsNeedExactArguments(t *testing.T) {
	m := newTestShell(t)

	out, _ := m.executeCommand("show heatmap")
	assert.Contains(t, out, "HEATMAP")
	assert.Equal(t, 0, m.conversation.Len(), "commands are not recorded")

	out, _ = m.executeCommand("show me a heatmap")
	assert.Contains(t, out, "The Heatmap is ideal")
	assert.Equal(t, 1, m.conversation.Len())

	out, _ = m.executeCommand("list the charts for trends")
	assert.NotContains(t, out, "bubble_chart")
	assert.Equal(t, 2, m.conversation.Len())
}

func TestShellModel_ShowUnknownIDIsAQuestion(t *testing.T) {
	m := newTestShell(t)

	out, _ := m.executeCommand("show pie")

	assert.Contains(t, out, "The Pie Chart is ideal")
	assert.Equal(t, 1, m.conversation.Len())
}

func TestShellModel_CatalogCommands(t *testing.T) {
	m := newTestShell(t)

	out, _ := m.executeCommand("list")
	assert.Contains(t, out, "bubble_chart")

	out, _ = m.executeCommand("categories")
	assert.Contains(t, out, "Multidimensional")

	out, _ = m.executeCommand("category distribution")
	assert.Contains(t, out, "box_plot")
	assert.NotContains(t, out, "line_chart")

	out, _ = m.executeCommand("CATEGORY geographic")
	assert.Contains(t, out, "No charts found for category: geographic")
}

func TestShellModel_HelpHistoryClear(t *testing.T) {
	m := newTestShell(t)

	out, _ := m.executeCommand("help")
	assert.Contains(t, out, "COMMANDS")

	out, _ = m.executeCommand("history")
	assert.Contains(t, out, "No questions asked yet.")

	m.executeCommand("display histogram")
	out, _ = m.executeCommand("history")
	assert.Contains(t, out, "display histogram")
	assert.Contains(t, out, "Use a Histogram")

	out, _ = m.executeCommand("clear")
	assert.Equal(t, "\033[H\033[2J", out)
}

func TestShellModel_ExitQuits(t *testing.T) {
	for _, word := range []string{"exit", "quit", "EXIT"} {
		m := newTestShell(t)

		out, cmd := m.executeCommand(word)

		assert.Empty(t, out)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
	}
}

func TestShellModel_RecommendStartsWizard(t *testing.T) {
	m := newTestShell(t)

	m.executeCommand("recommend")

	assert.Equal(t, modeWizard, m.mode)
	require.NotNil(t, m.form)
	require.NotNil(t, m.wizard)

	updated, _ := m.updateWizard(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(shellModel)
	assert.Equal(t, modePrompt, m.mode)
	assert.Nil(t, m.form)
	assert.Equal(t, 0, m.conversation.Len())
}

func TestShellModel_FinishRecommendRecordsExchange(t *testing.T) {
	m := newTestShell(t)
	m.wizard = &recommendAnswers{dataType: "matrix", purpose: "pattern"}

	cmd := m.finishRecommend()

	assert.NotNil(t, cmd)
	assert.Nil(t, m.wizard)
	require.Equal(t, 1, m.conversation.Len())
	ex := m.conversation.Exchanges()[0]
	assert.Equal(t, "recommend: matrix data, pattern", ex.Query)
	assert.Contains(t, ex.Response, "I recommend using a Heatmap chart.")
}

// --- suggestions ---

func TestShellModel_Suggestions(t *testing.T) {
	m := newTestShell(t)

	m.input.SetValue("cat")
	m.updateSuggestions()
	assert.Equal(t, []string{"categories", "category"}, m.input.AvailableSuggestions())

	m.input.SetValue("show b")
	m.updateSuggestions()
	assert.Equal(t, []string{"show bar_chart", "show box_plot", "show bubble_chart"}, m.input.AvailableSuggestions())

	m.input.SetValue("tell me about")
	m.updateSuggestions()
	assert.Empty(t, m.input.AvailableSuggestions())
}

// --- driven through bubbletea ---

func TestShellModel_Driver(t *testing.T) {
	d := teatest.New(t, newTestShell(t), teatest.WithSize(100, 30))
	d.DrainInit()

	assert.Contains(t, d.View(), "chartwise")

	d.Submit("Tell me about pie charts")
	d.Submit("display histogram")

	m := d.Model.(shellModel)
	assert.Equal(t, 2, m.conversation.Len())
	assert.Empty(t, m.input.Value())

	d.PressUp()
	assert.Equal(t, "display histogram", d.Model.(shellModel).input.Value())
	d.PressUp()
	assert.Equal(t, "Tell me about pie charts", d.Model.(shellModel).input.Value())
	d.PressDown()
	d.PressDown()
	assert.Empty(t, d.Model.(shellModel).input.Value())

	d.Submit("exit")
	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Goodbye.")
}

func TestShellModel_EscCancelsWizard(t *testing.T) {
	d := teatest.New(t, newTestShell(t), teatest.WithSize(100, 30))
	d.DrainInit()

	d.Submit("recommend")
	m := d.Model.(shellModel)
	require.Equal(t, modeWizard, m.mode)
	require.NotNil(t, m.form)

	d.PressEsc()
	m = d.Model.(shellModel)
	assert.Equal(t, modePrompt, m.mode)
	assert.Nil(t, m.form)
	assert.Equal(t, 0, m.conversation.Len())
	assert.Contains(t, d.View(), "chartwise")

	d.Submit("Tell me about pie charts")
	assert.Equal(t, 1, d.Model.(shellModel).conversation.Len())
}

func TestShellModel_CtrlCQuits(t *testing.T) {
	d := teatest.New(t, newTestShell(t))
	d.DrainInit()

	d.PressCtrlC()

	assert.True(t, d.Quitting)
}
