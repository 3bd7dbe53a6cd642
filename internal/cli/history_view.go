package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
)

// transcriptPager is a bubbletea model that scrolls a rendered transcript.
type transcriptPager struct {
	title    string
	content  string
	vp       viewport.Model
	ready    bool
	quitting bool
}

func newTranscriptPager(title, content string) transcriptPager {
	vp := viewport.New(0, 0)
	vp.KeyMap = pagerKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return transcriptPager{title: title, content: content, vp: vp}
}

func pagerKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " ")),
	}
}

func (m transcriptPager) Init() tea.Cmd {
	return nil
}

func (m transcriptPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve one line for the title and one for the footer.
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2
		if m.vp.Height < 1 {
			m.vp.Height = 1
		}
		m.vp.SetContent(m.content)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m transcriptPager) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return formatter.Dim("loading...")
	}

	footer := formatter.Dim(fmt.Sprintf("%3.0f%%  q to close", m.vp.ScrollPercent()*100))
	return strings.Join([]string{
		formatter.StyleHeader.Render(m.title),
		m.vp.View(),
		footer,
	}, "\n")
}

// runTranscriptPager displays content in a scrollable pager. Falls back
// to plain printing when not attached to a terminal.
func runTranscriptPager(app *App, title, content string) error {
	if !app.interactive() {
		fmt.Print(content)
		return nil
	}
	p := tea.NewProgram(newTranscriptPager(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
