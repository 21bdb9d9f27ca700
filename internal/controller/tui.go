package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "zrank.dev/pkg/zrank/internal/model"
)

// pickerFunc runs the interactive picker and returns the chosen index, or -1.
type pickerFunc func(ctx context.Context, in io.Reader, out io.Writer, results []m.RankedResult) (int, error)

// Lines reserved for the help footer and its padding.
const pickerChromeHeight = 2

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	zeroScoreStyle = lipgloss.NewStyle().Faint(true)
	pathStyle     = lipgloss.NewStyle()
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Select, k.Quit}}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type pickerModel struct {
	results  []m.RankedResult
	cursor   int
	offset   int
	height   int
	selected int
	done     bool
	keys     pickerKeyMap
	help     help.Model
}

func newPickerModel(results []m.RankedResult) pickerModel {
	return pickerModel{
		results:  results,
		selected: -1,
		keys:     defaultPickerKeyMap(),
		help:     help.New(),
	}
}

func (p pickerModel) Init() tea.Cmd {
	return nil
}

func (p pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.height = msg.Height
		p.help.Width = msg.Width
		p.scroll()

		return p, nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		p.done = true
		return p, tea.Quit
	case key.Matches(msg, p.keys.Select):
		if len(p.results) > 0 {
			p.selected = p.cursor
		}

		p.done = true

		return p, tea.Quit
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.results)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Top):
		p.cursor = 0
	case key.Matches(msg, p.keys.Bottom):
		if len(p.results) > 0 {
			p.cursor = len(p.results) - 1
		}
	}

	p.scroll()

	return p, nil
}

// visibleRows returns how many results fit on screen; 0 means no limit.
func (p pickerModel) visibleRows() int {
	if p.height <= pickerChromeHeight {
		return 0
	}

	return p.height - pickerChromeHeight
}

func (p *pickerModel) scroll() {
	rows := p.visibleRows()
	if rows == 0 {
		p.offset = 0
		return
	}

	if p.cursor < p.offset {
		p.offset = p.cursor
	}

	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
}

func (p pickerModel) View() string {
	if p.done {
		return ""
	}

	end := len(p.results)
	if rows := p.visibleRows(); rows > 0 && p.offset+rows < end {
		end = p.offset + rows
	}

	var b strings.Builder

	for i := p.offset; i < end; i++ {
		result := p.results[i]

		score := fmt.Sprintf("%6.1f", result.Score)
		if result.Score == 0 {
			score = zeroScoreStyle.Render(score)
		} else {
			score = scoreStyle.Render(score)
		}

		marker := "  "
		path := pathStyle.Render(string(result.Path))

		if i == p.cursor {
			marker = cursorStyle.Render("> ")
			path = cursorStyle.Render(string(result.Path))
		}

		b.WriteString(marker + score + " " + path + "\n")
	}

	b.WriteString("\n" + p.help.View(p.keys))

	return b.String()
}

func runPicker(ctx context.Context, in io.Reader, out io.Writer, results []m.RankedResult) (int, error) {
	program := tea.NewProgram(
		newPickerModel(results),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return -1, fmt.Errorf("run picker: %w", err)
	}

	model, ok := final.(pickerModel)
	if !ok {
		return -1, fmt.Errorf("unexpected picker model %T", final)
	}

	return model.selected, nil
}
