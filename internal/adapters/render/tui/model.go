package tui

import (
	"time"

	"github.com/bnema/ledgerline/internal/application"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DefaultFlashDuration = 2 * time.Second

type Options struct {
	FlashDuration time.Duration
}

type panel int

const (
	panelNone panel = iota
	panelCredit
	panelTips
	panelWallet
)

type revealTickMsg struct {
	generation uint64
}

type noticeShowMsg struct{ id int }

type noticeFadeMsg struct{ id int }

type noticeRemoveMsg struct{ id int }

type flashEndMsg struct {
	target domain.FlashTarget
	seq    int
}

type noticeState int

const (
	noticePending noticeState = iota
	noticeVisible
	noticeFading
)

type notice struct {
	id      int
	text    string
	state   noticeState
	visible time.Duration
	fadeOut time.Duration
}

type flashState struct {
	direction domain.FlashDirection
	seq       int
}

// Model drives an Engine from the bubbletea event loop. Every engine call
// happens inside Update, so the engine never sees concurrent input.
type Model struct {
	engine  *application.Engine
	screen  *Screen
	opts    Options
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  styles

	panel           panel
	revealGen       uint64
	revealScheduled bool
	notices         []notice
	nextNoticeID    int
	flashes         map[domain.FlashTarget]flashState
	flashSeq        int
	width           int
}

// New wires a model to an engine whose sink is screen.
func New(engine *application.Engine, screen *Screen, opts Options) *Model {
	if opts.FlashDuration <= 0 {
		opts.FlashDuration = DefaultFlashDuration
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return &Model{
		engine:  engine,
		screen:  screen,
		opts:    opts,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: s,
		styles:  newStyles(),
		flashes: make(map[domain.FlashTarget]flashState),
	}
}

func (m *Model) Init() tea.Cmd {
	// A broken start slide is already on screen as an error line.
	_ = m.engine.Start()
	return tea.Batch(m.spinner.Tick, m.followUp())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case revealTickMsg:
		if !m.revealScheduled || msg.generation != m.revealGen {
			return m, nil
		}
		m.revealScheduled = false
		m.engine.AdvanceReveal(msg.generation)
		return m, m.followUp()
	case noticeShowMsg:
		return m, m.showNotice(msg.id)
	case noticeFadeMsg:
		return m, m.fadeNotice(msg.id)
	case noticeRemoveMsg:
		m.removeNotice(msg.id)
		return m, nil
	case flashEndMsg:
		if current, ok := m.flashes[msg.target]; ok && current.seq == msg.seq {
			delete(m.flashes, msg.target)
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.panel != panelNone {
		if key.Matches(msg, m.keys.Close) || m.panelKey(msg) == m.panel {
			m.panel = panelNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Continue):
		if m.engine.PopupOpen() {
			_ = m.engine.DismissPopup()
		} else {
			_ = m.engine.Continue()
		}
	case key.Matches(msg, m.keys.Choose):
		index := int(msg.String()[0] - '1')
		_ = m.engine.SelectChoice(index)
	default:
		if p := m.panelKey(msg); p != panelNone && m.panelAvailable(p) {
			m.panel = p
		}
		return m, nil
	}

	return m, m.followUp()
}

func (m *Model) panelKey(msg tea.KeyMsg) panel {
	switch {
	case key.Matches(msg, m.keys.Credit):
		return panelCredit
	case key.Matches(msg, m.keys.Tips):
		return panelTips
	case key.Matches(msg, m.keys.Wallet):
		return panelWallet
	default:
		return panelNone
	}
}

// panelAvailable mirrors the metrics bar: panels open only while the bar is
// shown and no popup is up. The credit card needs to have been opened.
func (m *Model) panelAvailable(p panel) bool {
	if m.screen.metrics.Hidden || m.engine.PopupOpen() {
		return false
	}
	if p == panelCredit {
		_, visible := m.engine.CreditReport()
		return visible
	}
	return true
}

// followUp turns whatever the last engine call queued into commands: the
// next reveal tick, flash expiry and notification timers.
func (m *Model) followUp() tea.Cmd {
	var cmds []tea.Cmd

	if gen, active := m.engine.Revealing(); active && (!m.revealScheduled || gen != m.revealGen) {
		m.revealGen = gen
		m.revealScheduled = true
		cmds = append(cmds, tea.Tick(m.engine.RevealInterval(), func(time.Time) tea.Msg {
			return revealTickMsg{generation: gen}
		}))
	}

	for _, flash := range m.screen.drainFlashes() {
		m.flashSeq++
		seq, target := m.flashSeq, flash.target
		m.flashes[target] = flashState{direction: flash.direction, seq: seq}
		cmds = append(cmds, tea.Tick(m.opts.FlashDuration, func(time.Time) tea.Msg {
			return flashEndMsg{target: target, seq: seq}
		}))
	}

	for _, n := range m.screen.drainNotifications() {
		m.nextNoticeID++
		id := m.nextNoticeID
		m.notices = append(m.notices, notice{id: id, text: n.Text, visible: n.Visible, fadeOut: n.FadeOut})
		cmds = append(cmds, tea.Tick(n.Delay, func(time.Time) tea.Msg {
			return noticeShowMsg{id: id}
		}))
	}

	return tea.Batch(cmds...)
}

func (m *Model) showNotice(id int) tea.Cmd {
	n := m.notice(id)
	if n == nil {
		return nil
	}
	n.state = noticeVisible
	return tea.Tick(n.visible, func(time.Time) tea.Msg {
		return noticeFadeMsg{id: id}
	})
}

func (m *Model) fadeNotice(id int) tea.Cmd {
	n := m.notice(id)
	if n == nil {
		return nil
	}
	n.state = noticeFading
	return tea.Tick(n.fadeOut, func(time.Time) tea.Msg {
		return noticeRemoveMsg{id: id}
	})
}

func (m *Model) removeNotice(id int) {
	for i := range m.notices {
		if m.notices[i].id == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return
		}
	}
}

func (m *Model) notice(id int) *notice {
	for i := range m.notices {
		if m.notices[i].id == id {
			return &m.notices[i]
		}
	}
	return nil
}
