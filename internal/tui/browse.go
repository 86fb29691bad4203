// internal/tui/browse.go
// Package tui provides the interactive corpus browser.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/kritis/internal/classifier"
	"github.com/mwiater/kritis/internal/corpus"
	"github.com/mwiater/kritis/internal/util"
)

// viewState represents the current view or screen of the browser.
type viewState int

const (
	// viewRecordSelector is the state where the user selects a prompt record.
	viewRecordSelector viewState = iota
	// viewRecordDetail is the state where one record's responses are shown.
	viewRecordDetail
)

var (
	successBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("[success]")
	rejectionBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("[rejection]")
	apiErrorBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("[api error]")
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle   = lipgloss.NewStyle().Bold(true)
	patternStyle   = lipgloss.NewStyle().Faint(true)
)

// model is the main application model for the browser UI.
type model struct {
	classifier *classifier.Classifier
	categories []string
	runID      string
	records    []corpus.PromptRecord

	state         viewState
	recordList    list.Model
	viewport      viewport.Model
	selected      int
	width, height int
}

// item represents a selectable record in the list.
type item struct {
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

func newModel(c *classifier.Classifier, categories []string, run *corpus.ExperimentRun) *model {
	records := run.Records()
	items := make([]list.Item, len(records))
	for i, record := range records {
		cells := 0
		for _, models := range record.Responses {
			cells += len(models)
		}
		items[i] = item{
			title: fmt.Sprintf("Index %s", record.Index),
			desc:  fmt.Sprintf("%d responses | %s", cells, previewResponse(record, categories)),
		}
	}

	recordList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	recordList.Title = fmt.Sprintf("Run %s: select a prompt", run.ID)

	return &model{
		classifier: c,
		categories: categories,
		runID:      run.ID,
		records:    records,
		state:      viewRecordSelector,
		recordList: recordList,
		viewport:   viewport.New(100, 5),
	}
}

// Init initializes the Bubble Tea model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "tab":
			if m.state == viewRecordDetail {
				m.state = viewRecordSelector
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.recordList.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
	}

	switch m.state {
	case viewRecordSelector:
		m.recordList, cmd = m.recordList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if _, ok := m.recordList.SelectedItem().(item); ok {
				m.selected = m.recordList.Index()
				m.viewport.SetContent(m.renderRecord(m.records[m.selected]))
				m.viewport.GotoTop()
				m.state = viewRecordDetail
			}
		}

	case viewRecordDetail:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the browser UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewRecordSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.recordList.View())
	case viewRecordDetail:
		header := headerStyle.Render(fmt.Sprintf("Index %s (esc: back, q: quit)", m.records[m.selected].Index))
		return fmt.Sprintf("%s\n%s", header, m.viewport.View())
	default:
		return "Unknown state"
	}
}

// renderRecord builds the detail view: every response for the record grouped
// by category, each labeled with its classification badge.
func (m *model) renderRecord(record corpus.PromptRecord) string {
	var b strings.Builder
	for _, category := range m.categories {
		models, ok := record.Responses[category]
		if !ok {
			continue
		}
		b.WriteString(sectionStyle.Render(category))
		b.WriteString("\n\n")

		names := make([]string, 0, len(models))
		for name := range models {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			response := models[name]
			result := m.classifier.Classify(response)
			badge := successBadge
			if result.Outcome == classifier.OutcomeRejection {
				badge = rejectionBadge
			}
			b.WriteString(fmt.Sprintf("%s %s", name, badge))
			if result.APIFailure {
				b.WriteString(" " + apiErrorBadge)
			}
			b.WriteString("\n")
			if result.MatchedPattern != "" {
				b.WriteString(patternStyle.Render(fmt.Sprintf("matched: %q", result.MatchedPattern)))
				b.WriteString("\n")
			}
			b.WriteString(response)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// previewResponse picks the first response in category order and shortens it
// to a single list-friendly line.
func previewResponse(record corpus.PromptRecord, categories []string) string {
	for _, category := range categories {
		models, ok := record.Responses[category]
		if !ok {
			continue
		}
		names := make([]string, 0, len(models))
		for name := range models {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			response := strings.TrimSpace(models[name])
			if response == "" {
				continue
			}
			if line := strings.IndexByte(response, '\n'); line >= 0 {
				response = response[:line]
			}
			return util.TruncateRunes(response, 60)
		}
	}
	return "no responses"
}

// Browse loads a run directory and starts the interactive browser over it.
func Browse(c *classifier.Classifier, categories []string, dir, filenameToken string) error {
	run, err := corpus.Load(dir, corpus.TokenFilter(filenameToken))
	if err != nil {
		return err
	}
	program := tea.NewProgram(newModel(c, categories, run), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
