// Package transcript renders a session as plain lines of text, for headless
// replays and scripted demos.
package transcript

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/ledgerline/internal/adapters/render/format"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	scene    lipgloss.Style
	dialogue lipgloss.Style
	factKey  lipgloss.Style
	choice   lipgloss.Style
	locked   lipgloss.Style
	metrics  lipgloss.Style
	credit   lipgloss.Style
	debit    lipgloss.Style
	popup    lipgloss.Style
	notice   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		scene:    r.NewStyle().Foreground(lipgloss.Color("241")),
		dialogue: r.NewStyle().Foreground(lipgloss.Color("252")),
		factKey:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		choice:   r.NewStyle().Foreground(lipgloss.Color("159")),
		locked:   r.NewStyle().Faint(true),
		metrics:  r.NewStyle().Foreground(lipgloss.Color("245")),
		credit:   r.NewStyle().Foreground(lipgloss.Color("42")),
		debit:    r.NewStyle().Foreground(lipgloss.Color("203")),
		popup:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		notice:   r.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// Sink writes one block per presentation event. Partial reveals are not
// written; only the complete dialogue text is.
type Sink struct {
	w           io.Writer
	styles      styles
	lastMetrics string
	err         error
}

var _ ports.PresentationSink = (*Sink)(nil)

func New(w io.Writer) *Sink {
	return &Sink{
		w:      w,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Err returns the first write error, if any.
func (s *Sink) Err() error {
	return s.err
}

func (s *Sink) RenderBackground(ref string) {
	if ref == "" {
		return
	}
	s.println(s.styles.scene.Render("[scene] " + format.SceneName(ref)))
}

func (s *Sink) RenderDialogueText(text string) {
	if text == "" {
		return
	}
	s.println(renderLines(s.styles.dialogue, text))
}

func (s *Sink) RenderFactText(title, text string) {
	s.println(s.styles.factKey.Render("Fact: "+title) + "\n" + renderLines(s.styles.dialogue, text))
}

func (s *Sink) RenderChoices(choices []domain.Choice) {
	for i, choice := range choices {
		s.println(s.choiceLine(i, choice))
	}
}

func (s *Sink) FlashBalance(direction domain.FlashDirection) {
	s.println(s.flash("balance", direction))
}

func (s *Sink) FlashSavings(direction domain.FlashDirection) {
	s.println(s.flash("savings", direction))
}

// UpdateMetricsDisplay only writes when the visible bar actually changed.
func (s *Sink) UpdateMetricsDisplay(metrics domain.Metrics) {
	line := format.MetricsLine(metrics)
	if line == s.lastMetrics {
		return
	}
	s.lastMetrics = line
	if line == "" {
		return
	}
	s.println(s.styles.metrics.Render(line))
}

func (s *Sink) ShowPopup(popup domain.Popup) {
	header := fmt.Sprintf("[popup:%s]", popup.Kind)
	if popup.Title != "" {
		header += " " + popup.Title
	}
	block := s.styles.popup.Render(header)
	if popup.Text != "" {
		block += "\n" + renderLines(s.styles.dialogue, popup.Text)
	}
	s.println(block)
}

func (s *Sink) HidePopup(kind domain.PopupKind) {
	s.println(s.styles.popup.Render(fmt.Sprintf("[popup:%s closed]", kind)))
}

func (s *Sink) ShowNotification(notification domain.Notification) {
	prefix := "[notice]"
	if notification.Delay > 0 {
		prefix = fmt.Sprintf("[notice +%s]", notification.Delay)
	}
	s.println(s.styles.notice.Render(prefix + " " + notification.Text))
}

func (s *Sink) choiceLine(i int, choice domain.Choice) string {
	label := fmt.Sprintf("  %d) %s", i+1, choice.Label)
	if choice.Subtitle != "" {
		label += " (" + choice.Subtitle + ")"
	}
	if choice.Locked {
		return s.styles.locked.Render(label + " [locked]")
	}
	return s.styles.choice.Render(label)
}

func (s *Sink) flash(target string, direction domain.FlashDirection) string {
	if direction == domain.FlashCredit {
		return s.styles.credit.Render("[" + target + " +]")
	}
	return s.styles.debit.Render("[" + target + " -]")
}

func (s *Sink) println(text string) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, text)
}

// renderLines styles each line on its own so multi-line text is not padded
// to a block.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
