package tui

import (
	"context"
	"testing"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/render"
	mock_dictionary "github.com/at-ishikawa/wordlens/internal/mocks/dictionary"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(t *testing.T, setupMock func(reader *mock_dictionary.MockReader)) Model {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := mock_dictionary.NewMockReader(ctrl)
	setupMock(reader)
	return New(context.Background(), lookup.NewController(reader))
}

func typeWord(t *testing.T, m Model, word string) Model {
	t.Helper()
	m.input.SetValue(word)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got, cmd
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, runCmd(c)...)
	}
	return msgs
}

func findSettled(t *testing.T, msgs []tea.Msg) settledMsg {
	t.Helper()
	for _, msg := range msgs {
		if settled, ok := msg.(settledMsg); ok {
			return settled
		}
	}
	require.FailNow(t, "no settledMsg in commands")
	return settledMsg{}
}

func TestModel_Submit(t *testing.T) {
	hello := dictionary.Entry{
		Word: "hello",
		Phonetics: []dictionary.Phonetic{
			{Text: dictionary.OptionalString("/həˈləʊ/"), Audio: dictionary.OptionalString("https://example.com/hello.mp3")},
		},
		Meanings: []dictionary.Meaning{
			{
				PartOfSpeech: "interjection",
				Definitions: []dictionary.Definition{
					{Definition: "A greeting said when meeting someone."},
					{Definition: "A greeting used when answering the telephone."},
					{Definition: "A call for response."},
				},
			},
		},
	}

	tests := []struct {
		name      string
		word      string
		setupMock func(reader *mock_dictionary.MockReader)

		wantContains    []string
		wantNotContains []string
	}{
		{
			name: "entry",
			word: "hello",
			setupMock: func(reader *mock_dictionary.MockReader) {
				reader.EXPECT().Lookup(gomock.Any(), "hello").Return(hello, nil).Times(1)
			},
			wantContains: []string{
				"Hello",
				"Pronunciation: /həˈləʊ/",
				"Audio: https://example.com/hello.mp3",
				"interjection",
				"• A greeting used when answering the telephone.",
			},
			wantNotContains: []string{"A call for response.", "Loading..."},
		},
		{
			name: "not found",
			word: "qwzxv",
			setupMock: func(reader *mock_dictionary.MockReader) {
				reader.EXPECT().Lookup(gomock.Any(), "qwzxv").
					Return(dictionary.Entry{}, dictionary.NewNotFoundError("qwzxv", 404)).Times(1)
			},
			wantContains:    []string{render.MessageNotFound},
			wantNotContains: []string{"Loading..."},
		},
		{
			name: "transport failure",
			word: "hello",
			setupMock: func(reader *mock_dictionary.MockReader) {
				reader.EXPECT().Lookup(gomock.Any(), "hello").
					Return(dictionary.Entry{}, dictionary.NewTransportError("hello", 500, nil)).Times(1)
			},
			wantContains: []string{render.MessageTransport},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typeWord(t, newTestModel(t, tt.setupMock), tt.word)

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.True(t, m.State().Loading)
			assert.Contains(t, m.View(), "Loading...")

			m, _ = update(t, m, findSettled(t, runCmd(cmd)))
			assert.False(t, m.State().Loading)
			view := m.View()
			for _, want := range tt.wantContains {
				assert.Contains(t, view, want)
			}
			for _, notWant := range tt.wantNotContains {
				assert.NotContains(t, view, notWant)
			}
		})
	}
}

func TestModel_SubmitBlankWord(t *testing.T) {
	m := typeWord(t, newTestModel(t, func(reader *mock_dictionary.MockReader) {}), "   ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.State().Loading)
	assert.True(t, dictionary.IsValidation(m.State().Err))
	assert.Contains(t, m.View(), render.MessageValidation)
}

func TestModel_IgnoresSupersededResult(t *testing.T) {
	m := newTestModel(t, func(reader *mock_dictionary.MockReader) {
		reader.EXPECT().Lookup(gomock.Any(), "world").Return(dictionary.Entry{Word: "world"}, nil).Times(1)
	})
	m, _ = update(t, typeWord(t, m, "world"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, uint64(1), m.State().Seq)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, uint64(2), m.State().Seq)

	hello := dictionary.Entry{Word: "hello"}
	m, _ = update(t, m, settledMsg{state: lookup.State{Query: "hello", Seq: 1, Entry: &hello}})
	assert.True(t, m.State().Loading)
	assert.Equal(t, uint64(2), m.State().Seq)

	m, _ = update(t, m, findSettled(t, runCmd(cmd)))
	require.NotNil(t, m.State().Entry)
	assert.Equal(t, "world", m.State().Entry.Word)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(t, func(reader *mock_dictionary.MockReader) {})
			_, cmd := update(t, m, tea.KeyMsg{Type: key})
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_SpinnerStopsWhenSettled(t *testing.T) {
	m := newTestModel(t, func(reader *mock_dictionary.MockReader) {})
	_, cmd := update(t, m, spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t, func(reader *mock_dictionary.MockReader) {})
	view := m.View()
	assert.Contains(t, view, "📘 Dictionary")
	assert.Contains(t, view, "esc: quit")
	assert.NotContains(t, view, "Loading...")
	assert.NotContains(t, view, "Pronunciation")
}
