package tui

import (
	"slices"

	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/ports"
)

type mode int

const (
	modeBlank mode = iota
	modeDialogue
	modeFact
	modeChoices
)

type flashEvent struct {
	target    domain.FlashTarget
	direction domain.FlashDirection
}

// Screen is the presentation sink behind the interactive model. The engine
// writes into it during Update; View reads it back. Timed effects are queued
// here and turned into commands by the model.
type Screen struct {
	background string
	mode       mode
	dialogue   string
	factTitle  string
	factText   string
	choices    []domain.Choice
	metrics    domain.Metrics
	popup      *domain.Popup

	flashes       []flashEvent
	notifications []domain.Notification
}

var _ ports.PresentationSink = (*Screen)(nil)

func NewScreen() *Screen {
	return &Screen{}
}

// RenderBackground starts a new slide, so it also clears what the previous
// slide left on screen.
func (s *Screen) RenderBackground(ref string) {
	s.background = ref
	s.mode = modeBlank
	s.dialogue = ""
	s.factTitle = ""
	s.factText = ""
	s.choices = nil
}

func (s *Screen) RenderDialogueText(text string) {
	if s.mode != modeDialogue {
		s.mode = modeDialogue
		s.choices = nil
	}
	s.dialogue = text
}

func (s *Screen) RenderFactText(title, text string) {
	s.mode = modeFact
	s.factTitle = title
	s.factText = text
}

func (s *Screen) RenderChoices(choices []domain.Choice) {
	s.mode = modeChoices
	s.choices = slices.Clone(choices)
}

func (s *Screen) FlashBalance(direction domain.FlashDirection) {
	s.flashes = append(s.flashes, flashEvent{target: domain.FlashTargetBalance, direction: direction})
}

func (s *Screen) FlashSavings(direction domain.FlashDirection) {
	s.flashes = append(s.flashes, flashEvent{target: domain.FlashTargetSavings, direction: direction})
}

func (s *Screen) UpdateMetricsDisplay(metrics domain.Metrics) {
	s.metrics = metrics
}

func (s *Screen) ShowPopup(popup domain.Popup) {
	s.popup = &popup
}

func (s *Screen) HidePopup(kind domain.PopupKind) {
	if s.popup != nil && s.popup.Kind == kind {
		s.popup = nil
	}
}

func (s *Screen) ShowNotification(notification domain.Notification) {
	s.notifications = append(s.notifications, notification)
}

func (s *Screen) drainFlashes() []flashEvent {
	out := s.flashes
	s.flashes = nil
	return out
}

func (s *Screen) drainNotifications() []domain.Notification {
	out := s.notifications
	s.notifications = nil
	return out
}
