package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRevealInterval      = 35 * time.Millisecond
	DefaultNotificationStagger = 500 * time.Millisecond
	DefaultNotificationVisible = 3 * time.Second
	DefaultNotificationFadeOut = 300 * time.Millisecond
)

type EngineConfig struct {
	// RevealInterval is the delay between revealed characters. Zero shows
	// dialogue text at once.
	RevealInterval      time.Duration
	NotificationStagger time.Duration
	NotificationVisible time.Duration
	NotificationFadeOut time.Duration
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		RevealInterval:      DefaultRevealInterval,
		NotificationStagger: DefaultNotificationStagger,
		NotificationVisible: DefaultNotificationVisible,
		NotificationFadeOut: DefaultNotificationFadeOut,
	}
}

// Engine walks the content table for one session. It is not safe for
// concurrent use: every call must come from the same event loop.
type Engine struct {
	id      uuid.UUID
	slides  domain.ContentTable
	state   *domain.GameState
	sink    ports.PresentationSink
	logger  *zap.Logger
	cfg     EngineConfig
	reveal  reveal
	popup   *domain.Popup
	pending map[domain.PopupKind]domain.SlideID
}

func NewEngine(content domain.Content, sink ports.PresentationSink, logger *zap.Logger, cfg EngineConfig) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.New()
	return &Engine{
		id:      id,
		slides:  content.Slides,
		state:   domain.NewGameState(content.Session, content.Achievements),
		sink:    sink,
		logger:  logger.With(zap.Stringer("sessionID", id)),
		cfg:     cfg,
		pending: make(map[domain.PopupKind]domain.SlideID),
	}
}

func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Start renders the metrics bar and enters the session's first slide.
func (e *Engine) Start() error {
	e.logger.Info("Session started", zap.String("slideID", string(e.state.CurrentSlideID)))
	e.refreshMetrics()
	return e.EnterSlide(e.state.CurrentSlideID)
}

// EnterSlide makes id the current slide, runs its entry actions and renders
// its first phase. An unknown id leaves the cursor where it was and shows an
// error in place of the dialogue.
func (e *Engine) EnterSlide(id domain.SlideID) error {
	slide, err := e.slides.Lookup(id)
	if err != nil {
		e.logger.Error("Cannot enter slide", zap.String("slideID", string(id)), zap.String("currentSlideID", string(e.state.CurrentSlideID)), zap.Error(err))
		e.stopReveal()
		// The error line replaces whatever phase was on screen; Continue
		// brings the current slide's choices back.
		e.state.Phase = domain.PhaseDialogue
		e.sink.RenderDialogueText(fmt.Sprintf("Error: Slide %q not found.", id))
		e.sink.RenderChoices(nil)
		return fmt.Errorf("enter slide: %w", err)
	}

	e.stopReveal()
	e.state.CurrentSlideID = id
	e.state.Phase = domain.PhaseDialogue
	e.logger.Debug("Entering slide", zap.String("slideID", string(id)))

	popup := e.runActions(slide)
	e.refreshMetrics()
	e.sink.RenderBackground(slide.Background)

	if popup != nil {
		e.openPopup(*popup)
		return nil
	}

	if slide.OpenChoices {
		e.state.Phase = domain.PhaseChoices
		e.sink.RenderChoices(slide.Choices)
		return nil
	}

	e.startReveal(slide.Text)
	return nil
}

// Continue handles the "next" action. While dialogue is still being revealed
// it only completes the reveal; a later call advances the phase.
func (e *Engine) Continue() error {
	if e.popup != nil {
		return nil
	}
	if e.reveal.active {
		e.finishReveal()
		return nil
	}

	slide, err := e.slides.Lookup(e.state.CurrentSlideID)
	if err != nil {
		return nil
	}

	switch e.state.Phase {
	case domain.PhaseDialogue:
		switch {
		case slide.HasFact():
			e.state.Phase = domain.PhaseFact
			e.sink.RenderFactText(slide.FactTitle, slide.FactText)
		case slide.AdvancesDirectly():
			return e.EnterSlide(slide.Next)
		default:
			e.state.Phase = domain.PhaseChoices
			e.sink.RenderChoices(slide.Choices)
		}
	case domain.PhaseFact:
		e.state.Phase = domain.PhaseChoices
		e.sink.RenderChoices(slide.Choices)
	case domain.PhaseChoices:
	}

	return nil
}

// SelectChoice applies the effect of the index-th choice of the current slide
// and follows it. Choices count only once they are on screen; locked, inert
// or out-of-range choices are ignored.
func (e *Engine) SelectChoice(index int) error {
	if e.popup != nil || e.state.Phase != domain.PhaseChoices {
		return nil
	}

	slide, err := e.slides.Lookup(e.state.CurrentSlideID)
	if err != nil || index < 0 || index >= len(slide.Choices) {
		return nil
	}

	choice := slide.Choices[index]
	if !choice.Selectable() {
		return nil
	}

	if choice.Effect != nil {
		e.applyEffect(choice.Effect)
	}

	return e.EnterSlide(choice.Next)
}

// DismissPopup closes the open popup and follows its pending successor. With
// no successor the slide's dialogue resumes.
func (e *Engine) DismissPopup() error {
	if e.popup == nil {
		return nil
	}

	kind := e.popup.Kind
	e.popup = nil
	e.sink.HidePopup(kind)

	next, ok := e.pending[kind]
	delete(e.pending, kind)
	if ok && next != "" {
		return e.EnterSlide(next)
	}

	slide, err := e.slides.Lookup(e.state.CurrentSlideID)
	if err != nil {
		return nil
	}
	e.startReveal(slide.Text)
	return nil
}

// AdvanceReveal reveals one more character of the dialogue started with the
// given generation. It reports whether the reveal wants another tick.
func (e *Engine) AdvanceReveal(generation uint64) bool {
	if !e.reveal.active || generation != e.reveal.generation {
		return false
	}

	more := e.reveal.step()
	if more {
		e.sink.RenderDialogueText(e.reveal.prefix())
	} else {
		e.sink.RenderDialogueText(e.reveal.full())
	}
	return more
}

// Revealing returns the live reveal generation, if any.
func (e *Engine) Revealing() (uint64, bool) {
	return e.reveal.generation, e.reveal.active
}

func (e *Engine) RevealInterval() time.Duration {
	return e.cfg.RevealInterval
}

func (e *Engine) PopupOpen() bool {
	return e.popup != nil
}

func (e *Engine) CurrentSlide() (domain.Slide, error) {
	return e.slides.Lookup(e.state.CurrentSlideID)
}

func (e *Engine) Phase() domain.Phase {
	return e.state.Phase
}

func (e *Engine) startReveal(text string) {
	e.reveal = reveal{
		runes:      []rune(text),
		generation: e.reveal.generation + 1,
	}

	if len(e.reveal.runes) == 0 || e.cfg.RevealInterval <= 0 {
		e.reveal.finish()
		e.sink.RenderDialogueText(text)
		return
	}

	e.reveal.active = true
	e.sink.RenderDialogueText("")
}

func (e *Engine) finishReveal() {
	e.reveal.finish()
	e.sink.RenderDialogueText(e.reveal.full())
}

func (e *Engine) stopReveal() {
	e.reveal.active = false
}

func (e *Engine) applyEffect(effect domain.Effect) {
	change := e.state.Ledger.Apply(effect)
	if !change.Applied {
		return
	}

	e.refreshMetrics()
	target, direction, ok := change.Flash()
	if !ok {
		return
	}
	switch target {
	case domain.FlashTargetBalance:
		e.sink.FlashBalance(direction)
	case domain.FlashTargetSavings:
		e.sink.FlashSavings(direction)
	}
}

func (e *Engine) refreshMetrics() {
	e.sink.UpdateMetricsDisplay(e.Metrics())
}

// runActions interprets the slide's entry actions in order and returns the
// popup requested by the last show_popup action, if any.
func (e *Engine) runActions(slide domain.Slide) *domain.Popup {
	var popup *domain.Popup

	for _, action := range slide.OnEnter {
		switch a := action.(type) {
		case domain.ApplyEffectAction:
			if a.Effect != nil {
				e.applyEffect(a.Effect)
			}
		case domain.SetBalancesAction:
			if a.Balance != nil && domain.ValidAmount(*a.Balance) {
				e.state.Balance = *a.Balance
			}
			if a.TotalSaved != nil && domain.ValidAmount(*a.TotalSaved) {
				e.state.TotalSaved = *a.TotalSaved
			}
			e.state.RecomputeScore()
		case domain.SetGoalActiveAction:
			e.state.GoalUnlocked = true
			e.state.GoalActive = true
		case domain.SetCreditVisibleAction:
			e.state.CreditVisible = true
		case domain.SetPaycheckAction:
			if domain.ValidAmount(a.Amount) {
				e.state.PaycheckAmount = a.Amount
			}
		case domain.UnlockFactAction:
			e.unlockFact(a)
		case domain.CompleteMilestoneAction:
			e.completeMilestone(a.Milestone)
		case domain.ShowPopupAction:
			p := domain.Popup{Kind: a.Popup, Title: a.Title, Text: a.Text, Next: a.Next}
			if p.Text == "" {
				p.Text = slide.Text
			}
			if p.Next == "" {
				p.Next = slide.Next
			}
			popup = &p
		default:
			e.logger.Error("Unsupported entry action", zap.String("slideID", string(slide.ID)), zap.String("kind", string(action.Kind())))
		}
	}

	return popup
}

func (e *Engine) unlockFact(a domain.UnlockFactAction) {
	if _, ok := e.state.Achievements.Lookup(a.FactID); !ok {
		e.logger.Warn("Unknown tip referenced by slide", zap.String("factID", a.FactID), zap.String("slideID", string(e.state.CurrentSlideID)))
	}
	e.state.Achievements.Unlock(a.FactID)

	if a.Notify {
		e.notify([]string{domain.TipPrefix + a.Title})
	}
}

func (e *Engine) completeMilestone(n int) {
	unlocked, first := e.state.Achievements.CompleteMilestone(n)
	if !first {
		e.logger.Debug("Milestone already completed", zap.Int("milestone", n))
		return
	}
	e.logger.Info("Milestone completed", zap.Int("milestone", n), zap.Int("unlocked", len(unlocked)))

	texts := make([]string, 0, len(unlocked))
	for _, entry := range unlocked {
		texts = append(texts, domain.TipPrefix+entry.Title)
	}
	e.notify(texts)
}

func (e *Engine) notify(texts []string) {
	for i, text := range texts {
		e.sink.ShowNotification(domain.Notification{
			Text:    text,
			Delay:   time.Duration(i) * e.cfg.NotificationStagger,
			Visible: e.cfg.NotificationVisible,
			FadeOut: e.cfg.NotificationFadeOut,
		})
	}
}

func (e *Engine) openPopup(p domain.Popup) {
	e.popup = &p
	e.pending[p.Kind] = p.Next
	e.sink.ShowPopup(p)
}

// IsContentError reports whether err came from referencing missing content.
func IsContentError(err error) bool {
	return errors.Is(err, domain.ErrSlideNotFound)
}
