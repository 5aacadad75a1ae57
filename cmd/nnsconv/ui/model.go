package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/RyanBlaney/nashville/chart"
	"github.com/RyanBlaney/nashville/logging"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Header and footer take one line each.
const chromeHeight = 2

// Options configures the viewer.
type Options struct {
	Path    string
	Session *chart.Session
	Watch   bool
	Logger  logging.Logger
}

// chartReloadedMsg carries the new chart source after a change on disk.
type chartReloadedMsg struct {
	source string
}

// reloadFailedMsg reports a change that could not be read.
type reloadFailedMsg struct {
	err error
}

// Model is the chart viewer: a key picker above a scrollable chart.
type Model struct {
	width    int
	height   int
	viewport viewport.Model

	session *chart.Session
	path    string
	watcher *Watcher
	status  string
	err     error

	styles Styles
	logger logging.Logger
}

// NewModel creates a viewer over opts.Session. The watcher is attached by Run.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	vp := viewport.New(80, 20)
	m := Model{
		width:    80,
		height:   20 + chromeHeight,
		viewport: vp,
		session:  opts.Session,
		path:     opts.Path,
		styles:   DefaultStyles(),
		logger:   logger,
	}
	m.refresh()
	return m
}

// Init starts listening for file changes when a watcher is attached.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	// Picker keys are consumed here; the viewport would read left/right as horizontal scrolling.
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.session.Step(-1)
			m.selected()
			return m, nil
		case "right", "l", "tab":
			m.session.Step(1)
			m.selected()
			return m, nil
		default:
			if len(msg.Runes) == 1 && m.jumpToLetter(msg.Runes[0]) {
				m.selected()
				return m, nil
			}
		}

	case chartReloadedMsg:
		m.session.SetSource(msg.source)
		m.err = nil
		m.status = "reloaded"
		m.refresh()
		m.logger.Info("Chart reloaded", logging.Fields{"path": m.path, "key": m.session.Key()})
		cmds = append(cmds, m.waitForChange())

	case reloadFailedMsg:
		m.err = msg.err
		m.logger.Error(msg.err, "Chart reload failed", logging.Fields{"path": m.path})
		cmds = append(cmds, m.waitForChange())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the picker, the chart and the footer.
func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("Key"),
		m.picker(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.footer(),
	)
}

// SetSize updates the size of the viewport.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-chromeHeight, 1)
}

// Key is the selected key.
func (m Model) Key() string {
	return m.session.Key()
}

func (m Model) picker() string {
	states := m.session.Keys()
	chips := make([]string, len(states))
	for i, st := range states {
		if st.Selected {
			chips[i] = m.styles.SelectedKey.Render(st.Key)
		} else {
			chips[i] = m.styles.Key.Render(st.Key)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) footer() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("reload failed: %v", m.err))
	}
	help := "←/→ key · a-g jump · ↑/↓ scroll · q quit"
	if m.status != "" {
		help = m.status + " · " + help
	}
	return m.styles.Footer.Render(help)
}

func (m *Model) selected() {
	m.status = ""
	m.refresh()
	m.logger.Debug("Key selected", logging.Fields{"key": m.session.Key()})
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.styles.Content.Render(m.session.Render()))
}

// jumpToLetter selects the next picker key after the current one whose
// name starts with r, so repeated presses of "d" cycle Db then D.
func (m *Model) jumpToLetter(r rune) bool {
	letter := string(unicode.ToUpper(r))
	if !strings.Contains("ABCDEFG", letter) {
		return false
	}

	states := m.session.Keys()
	start := 0
	for i, st := range states {
		if st.Selected {
			start = i + 1
			break
		}
	}
	for i := range states {
		st := states[(start+i)%len(states)]
		if strings.HasPrefix(st.Key, letter) {
			_, err := m.session.Select(st.Key)
			return err == nil
		}
	}
	return false
}

func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes, path := m.watcher.Changes(), m.path
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return chartReloadedMsg{source: string(data)}
	}
}

// Run opens the viewer on the alternate screen and blocks until it quits.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("viewer needs a chart session")
	}

	m := NewModel(opts)

	if opts.Watch {
		w, err := NewWatcher(opts.Path, opts.Logger)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w.Start(ctx)
		defer w.Close()
		m.watcher = w
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
