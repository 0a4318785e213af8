package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/format"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Picker is a domain.SelectionPrompt that shows results in a small
// Bubble Tea program. Typing a number, or moving the highlight and pressing
// enter, selects; esc declines.
type Picker struct {
	in  io.Reader
	out io.Writer
}

// NewPicker creates a picker bound to the given terminal streams
func NewPicker(in io.Reader, out io.Writer) *Picker {
	return &Picker{in: in, out: out}
}

// Prompt implements domain.SelectionPrompt
func (p *Picker) Prompt(term string, results []*domain.Video) (string, error) {
	prog := tea.NewProgram(
		newPickerModel(term, results),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}
	return final.(pickerModel).reply, nil
}

// pickerModel is the Bubble Tea model behind Picker
type pickerModel struct {
	term    string
	results []*domain.Video
	cursor  int
	input   textinput.Model
	keys    KeyMap

	reply string
	done  bool
}

func newPickerModel(term string, results []*domain.Video) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "number"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = "> "
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return pickerModel{
		term:    term,
		results: results,
		input:   ti,
		keys:    DefaultKeyMap(),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.reply = ""
			m.done = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Select):
			m.reply = strings.TrimSpace(m.input.Value())
			if m.reply == "" && len(m.results) > 0 {
				m.reply = strconv.Itoa(m.cursor + 1)
			}
			m.done = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Here are the results for %s:", m.term)))
	b.WriteString("\n")

	for i, v := range m.results {
		line := format.Numbered(i, v)
		if i == m.cursor {
			b.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.helpView())
	b.WriteString("\n")
	return b.String()
}

func (m pickerModel) helpView() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
