package application

import (
	"testing"
	"time"

	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	backgrounds   []string
	dialogue      []string
	facts         []string
	choices       [][]domain.Choice
	balanceFlash  []domain.FlashDirection
	savingsFlash  []domain.FlashDirection
	metrics       []domain.Metrics
	popups        []domain.Popup
	hidden        []domain.PopupKind
	notifications []domain.Notification
}

func (s *recordingSink) RenderBackground(ref string) { s.backgrounds = append(s.backgrounds, ref) }
func (s *recordingSink) RenderDialogueText(text string) { s.dialogue = append(s.dialogue, text) }
func (s *recordingSink) RenderFactText(title, text string) {
	s.facts = append(s.facts, title+": "+text)
}
func (s *recordingSink) RenderChoices(choices []domain.Choice) {
	s.choices = append(s.choices, choices)
}
func (s *recordingSink) FlashBalance(d domain.FlashDirection) { s.balanceFlash = append(s.balanceFlash, d) }
func (s *recordingSink) FlashSavings(d domain.FlashDirection) { s.savingsFlash = append(s.savingsFlash, d) }
func (s *recordingSink) UpdateMetricsDisplay(m domain.Metrics) {
	s.metrics = append(s.metrics, m)
}
func (s *recordingSink) ShowPopup(p domain.Popup) { s.popups = append(s.popups, p) }
func (s *recordingSink) HidePopup(kind domain.PopupKind) { s.hidden = append(s.hidden, kind) }
func (s *recordingSink) ShowNotification(n domain.Notification) {
	s.notifications = append(s.notifications, n)
}

func (s *recordingSink) lastDialogue() string {
	if len(s.dialogue) == 0 {
		return ""
	}
	return s.dialogue[len(s.dialogue)-1]
}

func (s *recordingSink) lastMetrics() domain.Metrics {
	if len(s.metrics) == 0 {
		return domain.Metrics{}
	}
	return s.metrics[len(s.metrics)-1]
}

func milestone(n int) *int {
	return &n
}

func testContent(t *testing.T) domain.Content {
	t.Helper()

	table, err := domain.NewContentTable([]domain.Slide{
		{
			ID:          "menu",
			Background:  domain.BlackBackground,
			OpenChoices: true,
			HideMetrics: true,
			Choices:     []domain.Choice{{Label: "Start", Next: "intro"}},
		},
		{ID: "intro", Text: "Hello there", Background: "/assets/slides/intro.png", Next: "lesson"},
		{
			ID:        "lesson",
			Text:      "Time to decide",
			FactTitle: "Did you know?",
			FactText:  "Saving early compounds.",
			Choices: []domain.Choice{
				{Label: "Save", Next: "after", Effect: domain.SavingsTransferEffect{Value: 500}},
				{Label: "Splurge", Next: "after", Locked: true, Effect: domain.DebitEffect{Value: 5000}},
				{Label: "Think about it"},
				{Label: "Shop", Next: "after", Effect: domain.DebitEffect{Value: 100}},
			},
		},
		{
			ID:   "after",
			Text: "Well done",
			OnEnter: []domain.Action{
				domain.CompleteMilestoneAction{Milestone: 1},
				domain.UnlockFactAction{FactID: "budget", Title: "Budget", Notify: true},
			},
			Choices: []domain.Choice{{Label: "Goal", Next: "goal"}, {Label: "Broken", Next: "nowhere"}},
		},
		{
			ID:   "goal",
			Text: "Set a goal of $15,000.",
			Next: "payday",
			OnEnter: []domain.Action{
				domain.SetGoalActiveAction{},
				domain.ShowPopupAction{Popup: domain.PopupGoal, Title: "New goal"},
			},
		},
		{
			ID:   "payday",
			Text: "Payday!",
			OnEnter: []domain.Action{
				domain.SetPaycheckAction{Amount: 750},
				domain.ApplyEffectAction{Effect: domain.CreditEffect{Value: 750}},
				domain.SetCreditVisibleAction{},
				domain.UnlockFactAction{FactID: "credit", Title: "Credit basics", Notify: true},
			},
			Choices: []domain.Choice{{Label: "Skip ahead", Next: "skip"}},
		},
		{
			ID:   "skip",
			Text: "A year later",
			OnEnter: []domain.Action{
				domain.SetBalancesAction{Balance: float64Ptr(100), TotalSaved: float64Ptr(9000)},
			},
			Choices: []domain.Choice{{Label: "Menu", Next: "menu"}},
		},
	})
	require.NoError(t, err)

	session := domain.DefaultSessionDefaults()
	session.StartSlide = "menu"

	return domain.Content{
		Session: session,
		Achievements: []domain.AchievementEntry{
			{ID: "budget", Title: "Budget", Description: "Track spending."},
			{ID: "emergency", Title: "Emergency fund", Milestone: milestone(1)},
			{ID: "compound", Title: "Compound interest", Milestone: milestone(1)},
			{ID: "credit", Title: "Credit basics", Milestone: milestone(2)},
		},
		Slides: table,
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func instantConfig() EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.RevealInterval = 0
	return cfg
}

func newTestEngine(t *testing.T, cfg EngineConfig) (*Engine, *recordingSink) {
	t.Helper()

	sink := &recordingSink{}
	engine := NewEngine(testContent(t), sink, nil, cfg)
	require.NoError(t, engine.Start())
	return engine, sink
}

func TestEngineStartOpensChoicesImmediately(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())

	assert.Equal(t, domain.PhaseChoices, engine.Phase())
	assert.Equal(t, []string{domain.BlackBackground}, sink.backgrounds)
	require.Len(t, sink.choices, 1)
	assert.Equal(t, "Start", sink.choices[0][0].Label)
	assert.True(t, sink.lastMetrics().Hidden)
	assert.Empty(t, sink.dialogue)
}

func TestEngineWalksDialogueFactAndChoices(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())

	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, "Hello there", sink.lastDialogue())
	assert.False(t, sink.lastMetrics().Hidden)

	require.NoError(t, engine.Continue())
	slide, err := engine.CurrentSlide()
	require.NoError(t, err)
	assert.Equal(t, domain.SlideID("lesson"), slide.ID)
	assert.Equal(t, domain.PhaseDialogue, engine.Phase())

	require.NoError(t, engine.Continue())
	assert.Equal(t, domain.PhaseFact, engine.Phase())
	assert.Equal(t, []string{"Did you know?: Saving early compounds."}, sink.facts)

	require.NoError(t, engine.Continue())
	assert.Equal(t, domain.PhaseChoices, engine.Phase())
	assert.Len(t, sink.choices[len(sink.choices)-1], 4)

	require.NoError(t, engine.Continue())
	assert.Equal(t, domain.PhaseChoices, engine.Phase())
}

func TestEngineSelectChoiceAppliesEffectAndFlashes(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.SelectChoice(0))
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.Continue())

	require.NoError(t, engine.SelectChoice(0))

	snapshot := engine.Snapshot()
	assert.Equal(t, "after", snapshot.SlideID)
	assert.Equal(t, 5050.0, snapshot.Balance)
	assert.Equal(t, 500.0, snapshot.TotalSaved)
	assert.Equal(t, 695, snapshot.Credit.Score)
	assert.Equal(t, []domain.FlashDirection{domain.FlashDebit}, sink.balanceFlash)
}

func TestEngineIgnoresIllegalChoices(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.SelectChoice(0))
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.Continue())

	before := engine.Snapshot()
	for _, index := range []int{1, 2, -1, 4, 99} {
		require.NoError(t, engine.SelectChoice(index))
	}

	assert.Equal(t, before, engine.Snapshot())
	assert.Empty(t, sink.balanceFlash)
}

func TestEngineMilestoneNotificationsAreStaggered(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.SelectChoice(0))
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.SelectChoice(3))

	require.Len(t, sink.notifications, 3)
	assert.Equal(t, "Tip: Emergency fund", sink.notifications[0].Text)
	assert.Equal(t, time.Duration(0), sink.notifications[0].Delay)
	assert.Equal(t, "Tip: Compound interest", sink.notifications[1].Text)
	assert.Equal(t, DefaultNotificationStagger, sink.notifications[1].Delay)
	assert.Equal(t, "Tip: Budget", sink.notifications[2].Text)
	assert.Equal(t, time.Duration(0), sink.notifications[2].Delay)
	assert.Equal(t, DefaultNotificationVisible, sink.notifications[2].Visible)
	assert.Equal(t, DefaultNotificationFadeOut, sink.notifications[2].FadeOut)

	snapshot := engine.Snapshot()
	assert.Equal(t, []int{1}, snapshot.CompletedMilestones)
	assert.Equal(t, []string{"emergency", "compound", "budget"}, snapshot.UnlockedTips)
	assert.Equal(t, 675, snapshot.Credit.Score)
}

func TestEngineReenteringMilestoneSlideDoesNotRepeatBatch(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.EnterSlide("after"))
	require.NoError(t, engine.EnterSlide("after"))

	var milestoneTexts []string
	for _, n := range sink.notifications {
		if n.Text == "Tip: Emergency fund" {
			milestoneTexts = append(milestoneTexts, n.Text)
		}
	}
	assert.Len(t, milestoneTexts, 1)
	assert.Len(t, engine.Snapshot().UnlockedTips, 3)
}

func TestEngineUnknownSlideKeepsCursor(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.EnterSlide("after"))
	require.NoError(t, engine.Continue())

	err := engine.SelectChoice(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlideNotFound)
	assert.True(t, IsContentError(err))

	assert.Equal(t, `Error: Slide "nowhere" not found.`, sink.lastDialogue())
	assert.Nil(t, sink.choices[len(sink.choices)-1])
	assert.Equal(t, "after", engine.Snapshot().SlideID)
	assert.Equal(t, domain.PhaseDialogue, engine.Phase())

	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, "after", engine.Snapshot().SlideID)

	require.NoError(t, engine.Continue())
	assert.Equal(t, domain.PhaseChoices, engine.Phase())
	assert.Len(t, sink.choices[len(sink.choices)-1], 2)

	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, "goal", engine.Snapshot().SlideID)
}

func TestEngineIgnoresChoicesBeforeChoicePhase(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.EnterSlide("lesson"))
	before := engine.Snapshot()

	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, domain.PhaseDialogue, engine.Phase())
	assert.Equal(t, before, engine.Snapshot())

	require.NoError(t, engine.Continue())
	require.Equal(t, domain.PhaseFact, engine.Phase())
	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, domain.PhaseFact, engine.Phase())
	assert.Equal(t, "lesson", engine.Snapshot().SlideID)
	assert.Equal(t, before.Balance, engine.Snapshot().Balance)
	assert.Equal(t, before.TotalSaved, engine.Snapshot().TotalSaved)
	assert.Empty(t, sink.balanceFlash)

	require.NoError(t, engine.Continue())
	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, "after", engine.Snapshot().SlideID)
}

func TestEngineReenteringSlideResetsPhaseAndRerunsActions(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())

	require.NoError(t, engine.EnterSlide("payday"))
	require.NoError(t, engine.Continue())
	require.Equal(t, domain.PhaseChoices, engine.Phase())
	assert.Equal(t, 6300.0, engine.Snapshot().Balance)

	require.NoError(t, engine.EnterSlide("payday"))
	assert.Equal(t, domain.PhaseDialogue, engine.Phase())
	assert.Equal(t, "Payday!", sink.lastDialogue())

	snapshot := engine.Snapshot()
	assert.Equal(t, 5550.0+750*2, snapshot.Balance)
	assert.Equal(t, []domain.FlashDirection{domain.FlashCredit, domain.FlashCredit}, sink.balanceFlash)
	assert.Equal(t, []string{"credit"}, snapshot.UnlockedTips)

	var tips []string
	for _, n := range sink.notifications {
		tips = append(tips, n.Text)
	}
	assert.Equal(t, []string{"Tip: Credit basics", "Tip: Credit basics"}, tips)
}

func TestEnginePopupSuspendsInputUntilDismissed(t *testing.T) {
	engine, sink := newTestEngine(t, instantConfig())
	require.NoError(t, engine.EnterSlide("goal"))

	require.Len(t, sink.popups, 1)
	popup := sink.popups[0]
	assert.Equal(t, domain.PopupGoal, popup.Kind)
	assert.Equal(t, "New goal", popup.Title)
	assert.Equal(t, "Set a goal of $15,000.", popup.Text)
	assert.Equal(t, domain.SlideID("payday"), popup.Next)
	assert.True(t, engine.PopupOpen())
	assert.True(t, sink.lastMetrics().GoalActive)
	assert.Equal(t, "goal", engine.Snapshot().OpenPopup)

	require.NoError(t, engine.Continue())
	require.NoError(t, engine.SelectChoice(0))
	assert.Equal(t, "goal", engine.Snapshot().SlideID)

	require.NoError(t, engine.DismissPopup())
	assert.Equal(t, []domain.PopupKind{domain.PopupGoal}, sink.hidden)
	assert.False(t, engine.PopupOpen())

	snapshot := engine.Snapshot()
	assert.Equal(t, "payday", snapshot.SlideID)
	assert.Equal(t, 750.0, snapshot.PaycheckAmount)
	assert.Equal(t, 6300.0, snapshot.Balance)
	assert.True(t, snapshot.CreditVisible)
	assert.Equal(t, []domain.FlashDirection{domain.FlashCredit}, sink.balanceFlash)

	require.NoError(t, engine.DismissPopup())
	assert.Len(t, sink.hidden, 1)
}

func TestEngineSetBalancesRecomputesScore(t *testing.T) {
	engine, _ := newTestEngine(t, instantConfig())
	require.NoError(t, engine.EnterSlide("skip"))

	snapshot := engine.Snapshot()
	assert.Equal(t, 100.0, snapshot.Balance)
	assert.Equal(t, 9000.0, snapshot.TotalSaved)
	assert.Equal(t, 60, snapshot.GoalProgressPercent)
	assert.Equal(t, 705, snapshot.Credit.Score)
}

func TestEngineRevealIsCooperative(t *testing.T) {
	cfg := DefaultEngineConfig()
	engine, sink := newTestEngine(t, cfg)
	require.NoError(t, engine.SelectChoice(0))

	generation, active := engine.Revealing()
	require.True(t, active)
	assert.Equal(t, "", sink.lastDialogue())

	assert.True(t, engine.AdvanceReveal(generation))
	assert.Equal(t, "H", sink.lastDialogue())
	assert.True(t, engine.AdvanceReveal(generation))
	assert.Equal(t, "He", sink.lastDialogue())

	assert.False(t, engine.AdvanceReveal(generation+1))
	assert.Equal(t, "He", sink.lastDialogue())

	require.NoError(t, engine.Continue())
	assert.Equal(t, "Hello there", sink.lastDialogue())
	_, active = engine.Revealing()
	assert.False(t, active)
	assert.Equal(t, "intro", engine.Snapshot().SlideID)
	assert.False(t, engine.AdvanceReveal(generation))

	require.NoError(t, engine.Continue())
	assert.Equal(t, "lesson", engine.Snapshot().SlideID)

	next, active := engine.Revealing()
	require.True(t, active)
	assert.Greater(t, next, generation)
	assert.False(t, engine.AdvanceReveal(generation))
}

func TestEngineRevealRunsToCompletion(t *testing.T) {
	engine, sink := newTestEngine(t, DefaultEngineConfig())
	require.NoError(t, engine.SelectChoice(0))

	generation, _ := engine.Revealing()
	ticks := 0
	for engine.AdvanceReveal(generation) {
		ticks++
	}

	assert.Equal(t, len("Hello there")-1, ticks)
	assert.Equal(t, "Hello there", sink.lastDialogue())
	assert.Equal(t, DefaultRevealInterval, engine.RevealInterval())
}

func TestEngineRendersThroughSinkPort(t *testing.T) {
	table, err := domain.NewContentTable([]domain.Slide{
		{ID: "start", Text: "Welcome", Background: "black", Choices: []domain.Choice{
			{Label: "Earn", Next: "end", Effect: domain.CreditEffect{Value: 500}},
		}},
		{ID: "end", Text: "Bye", Background: "black"},
	})
	require.NoError(t, err)

	session := domain.DefaultSessionDefaults()
	session.StartSlide = "start"
	content := domain.Content{Session: session, Slides: table}

	sink := mocks.NewMockPresentationSink(t)
	sink.EXPECT().UpdateMetricsDisplay(mock.AnythingOfType("domain.Metrics")).Return()
	sink.EXPECT().RenderBackground("black").Return()
	sink.EXPECT().RenderDialogueText("Welcome").Return().Once()
	sink.EXPECT().RenderChoices(mock.MatchedBy(func(choices []domain.Choice) bool {
		return len(choices) == 1 && choices[0].Label == "Earn"
	})).Return().Once()
	sink.EXPECT().FlashBalance(domain.FlashCredit).Return().Once()
	sink.EXPECT().RenderDialogueText("Bye").Return().Once()

	engine := NewEngine(content, sink, nil, instantConfig())
	require.NoError(t, engine.Start())
	require.NoError(t, engine.Continue())
	require.NoError(t, engine.SelectChoice(0))

	assert.Equal(t, 6050.0, engine.Snapshot().Balance)
}

func TestEngineCreditReportVisibility(t *testing.T) {
	engine, _ := newTestEngine(t, instantConfig())

	report, visible := engine.CreditReport()
	assert.False(t, visible)
	assert.Equal(t, 680, report.Score)
	assert.Equal(t, "Good", report.Rating)
	assert.Contains(t, engine.WalletImage(), "bank-account-old")

	require.NoError(t, engine.EnterSlide("payday"))
	_, visible = engine.CreditReport()
	assert.True(t, visible)
	assert.Contains(t, engine.WalletImage(), "bank-account-new")
	assert.Len(t, engine.Achievements(), 4)
}
