// Package tui is the terminal rendition of the lookup page: one search box
// and one panel underneath it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/render"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settledMsg carries the state after a lookup finished.
type settledMsg struct {
	state lookup.State
}

type Model struct {
	ctx        context.Context
	controller *lookup.Controller

	input   textinput.Model
	spinner spinner.Model
	state   lookup.State
}

func New(ctx context.Context, controller *lookup.Controller) Model {
	input := textinput.New()
	input.Placeholder = "Enter a word"
	input.Prompt = "🔍 "
	input.CharLimit = 100
	input.Width = 40
	input.Focus()

	return Model{
		ctx:        ctx,
		controller: controller,
		input:      input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle)),
		state:      controller.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case settledMsg:
		// A later submission may already be visible.
		if msg.state.Seq < m.state.Seq {
			return m, nil
		}
		m.state = msg.state
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	req, state := m.controller.Begin(m.ctx, m.input.Value())
	m.state = state
	if req == nil {
		return m, nil
	}

	controller := m.controller
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return settledMsg{state: controller.Complete(req)}
		},
	)
}

// State returns the lookup state currently on screen.
func (m Model) State() lookup.State {
	return m.state
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📘 Dictionary"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	view := render.Build(m.state)
	switch view.Panel {
	case render.PanelLoading:
		b.WriteString(m.spinner.View() + loadingStyle.Render("Loading..."))
	case render.PanelError:
		b.WriteString(errorStyle.Render(view.Message))
	case render.PanelEntry:
		b.WriteString(renderEntry(*view.Entry))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: look up • esc: quit"))
	return cardStyle.Render(b.String())
}

func renderEntry(entry render.EntryView) string {
	lines := []string{wordStyle.Render(render.Capitalize(entry.Word))}
	if entry.Pronunciation != nil {
		lines = append(lines, mutedStyle.Render("Pronunciation: "+*entry.Pronunciation))
	}
	if entry.AudioURL != nil {
		lines = append(lines, mutedStyle.Render("Audio: "+*entry.AudioURL))
	}
	for _, meaning := range entry.Meanings {
		lines = append(lines, partOfSpeechStyle.Render(meaning.PartOfSpeech))
		for _, definition := range meaning.Definitions {
			lines = append(lines, fmt.Sprintf("  • %s", definition))
		}
	}
	return strings.Join(lines, "\n")
}
