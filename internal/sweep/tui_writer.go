package sweep

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// cellDoneMsg reports one completed cell.
type cellDoneMsg struct {
	done  int
	total int
	row   Row
}

// rowMsg carries a final in-order summary row for the results table.
type rowMsg struct{ row Row }

// logMsg carries a log line for the viewport.
type logMsg struct{ line string }

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	tuiFailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tuiDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TUIWriter renders live sweep progress using a bubbletea TUI. It doubles as
// the engine's Progress observer and as a RowWriter for the final rows.
type TUIWriter struct {
	program teaProgram
	done    chan struct{}
}

// NewTUIWriter starts a bubbletea program for a sweep over total cells.
func NewTUIWriter(total int) *TUIWriter {
	w := &TUIWriter{done: make(chan struct{})}
	p := tea.NewProgram(newTUIModel(total), tea.WithAltScreen())
	w.program = p
	go func() {
		_, _ = p.Run()
		close(w.done)
	}()
	return w
}

// CellDone implements Progress; called from cell goroutines in completion
// order.
func (w *TUIWriter) CellDone(done, total int, row Row) {
	w.program.Send(cellDoneMsg{done: done, total: total, row: row})
	line := fmt.Sprintf("cell voters=%d fail=%.2f lat=%dms dos=%s repl=%d -> success=%.2f%% tamper=%.2f%%",
		row.Voters, row.FailureRate, row.BaseLatencyMS, row.dosFlag(), row.ReplicationFactor,
		row.SuccessPctMean, row.TamperPctMean)
	if row.Failed() {
		line = tuiFailedStyle.Render(line + " partial: " + row.Err)
	}
	w.program.Send(logMsg{line: line})
}

// WriteRow implements RowWriter for the final in-order rows.
func (w *TUIWriter) WriteRow(r Row) error {
	w.program.Send(rowMsg{row: r})
	return nil
}

// Close shuts the TUI down and waits for terminal cleanup.
func (w *TUIWriter) Close() error {
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

type tuiModel struct {
	total    int
	done     int
	progress progress.Model
	table    table.Model
	vp       viewport.Model
	logs     []string
	width    int
	ready    bool
	finished bool
}

func newTUIModel(total int) tuiModel {
	cols := []table.Column{
		{Title: "voters", Width: 7},
		{Title: "fail", Width: 5},
		{Title: "lat_ms", Width: 6},
		{Title: "dos", Width: 3},
		{Title: "repl", Width: 4},
		{Title: "runs", Width: 4},
		{Title: "success%", Width: 9},
		{Title: "tamper%", Width: 8},
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(10))
	return tuiModel{
		total:    total,
		progress: progress.New(progress.WithDefaultGradient()),
		table:    t,
		vp:       viewport.New(0, 0),
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		m.vp.Width = msg.Width
		vpHeight := msg.Height - m.table.Height() - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		m.vp.Height = vpHeight
		m.ready = true
		m.refreshViewport()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case cellDoneMsg:
		m.done = msg.done
		if msg.total > 0 {
			m.total = msg.total
		}
		if m.done >= m.total {
			m.finished = true
		}
	case rowMsg:
		r := msg.row
		m.table.SetRows(append(m.table.Rows(), table.Row{
			fmt.Sprintf("%d", r.Voters),
			fmt.Sprintf("%.2f", r.FailureRate),
			fmt.Sprintf("%d", r.BaseLatencyMS),
			r.dosFlag(),
			fmt.Sprintf("%d", r.ReplicationFactor),
			fmt.Sprintf("%d", r.Replicates),
			fmt.Sprintf("%.2f", r.SuccessPctMean),
			fmt.Sprintf("%.2f", r.TamperPctMean),
		}))
	case logMsg:
		m.logs = append(m.logs, msg.line)
		m.refreshViewport()
	}
	return m, nil
}

func (m *tuiModel) refreshViewport() {
	if m.width <= 0 {
		return
	}
	var content string
	for _, l := range m.logs {
		content += wordwrap.String(l, m.width) + "\n"
	}
	m.vp.SetContent(content)
	m.vp.GotoBottom()
}

func (m tuiModel) View() string {
	if !m.ready {
		return "starting sweep..."
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	title := tuiTitleStyle.Render(fmt.Sprintf("votenet-sim sweep %d/%d cells", m.done, m.total))
	hint := tuiDimStyle.Render("q to quit")
	if m.finished {
		hint = tuiDimStyle.Render("sweep complete, q to quit")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.progress.ViewAs(pct),
		m.table.View(),
		m.vp.View(),
		hint,
	)
}
