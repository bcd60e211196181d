package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The assistant run can poll for up to half a minute, so the wait view shows
// elapsed time once the answer stops being instant.
const slowReplyThreshold = 5 * time.Second

type askReplyMsg struct {
	err error
}

type askElapsedMsg time.Time

type askWaitModel struct {
	spinner spinner.Model
	hint    lipgloss.Style
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newAskWaitModel() askWaitModel {
	return askWaitModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))),
		),
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		started: time.Now(),
	}
}

func elapsedTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return askElapsedMsg(t)
	})
}

func (m askWaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, elapsedTick())
}

func (m askWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case askReplyMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case askElapsedMsg:
		m.elapsed = time.Since(m.started)
		return m, elapsedTick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m askWaitModel) View() string {
	if m.done {
		return ""
	}

	view := m.spinner.View() + " Waiting for the assistant"
	if m.elapsed >= slowReplyThreshold {
		view += m.hint.Render(fmt.Sprintf(" (%ds)", int(m.elapsed.Seconds())))
	}

	return view
}

func runAskSpinner(ctx context.Context, output io.Writer, fetch func(context.Context) error) error {
	p := tea.NewProgram(
		newAskWaitModel(),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	go func() {
		p.Send(askReplyMsg{err: fetch(ctx)})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(askWaitModel)
	if !ok {
		return fmt.Errorf("unexpected final wait model type %T", finalModel)
	}

	return result.err
}
