// Package chart renders a visualization descriptor as a terminal chart. One
// fixed layout exists per category; the renderer never inspects the reply
// text itself.
package chart

import (
	"errors"
	"io"

	"github.com/bnema/insight-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type RenderOptions struct {
	// BarWidth is the character width of value bars; zero means the default.
	BarWidth int
}

type renderReadyMsg struct{}

type model struct {
	viz    domain.Visualization
	opts   RenderOptions
	styles styles
	output string
}

func newModel(viz domain.Visualization, opts RenderOptions) model {
	return model{
		viz:    viz,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.viz, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(viz domain.Visualization, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(viz, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
