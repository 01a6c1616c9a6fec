package summary

import (
	"errors"
	"io"

	"github.com/bnema/ledgerline/internal/application"
	"github.com/bnema/ledgerline/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	snapshot application.Snapshot
	tips     []domain.AchievementEntry
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(snapshot application.Snapshot, tips []domain.AchievementEntry, opts RenderOptions) model {
	return model{
		snapshot: snapshot,
		tips:     tips,
		opts:     opts,
		styles:   newStyles(),
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
		m.output = renderView(m.snapshot, m.tips, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out the end-of-session summary.
func Render(snapshot application.Snapshot, tips []domain.AchievementEntry, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(snapshot, tips, opts),
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
