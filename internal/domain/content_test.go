package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContentTableRejectsDuplicates(t *testing.T) {
	_, err := NewContentTable([]Slide{{ID: "a"}, {ID: "a"}})
	require.ErrorIs(t, err, ErrDuplicateSlide)

	_, err = NewContentTable([]Slide{{ID: ""}})
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestContentTableKeepsAuthoringOrder(t *testing.T) {
	table, err := NewContentTable([]Slide{{ID: "z"}, {ID: "a"}, {ID: "m"}})
	require.NoError(t, err)

	var ids []SlideID
	for _, slide := range table.Slides() {
		ids = append(ids, slide.ID)
	}
	assert.Equal(t, []SlideID{"z", "a", "m"}, ids)
	assert.Equal(t, 3, table.Len())

	_, err = table.Lookup("missing")
	require.ErrorIs(t, err, ErrSlideNotFound)
}

func TestContentValidate(t *testing.T) {
	table, err := NewContentTable([]Slide{
		{ID: "start", Next: "gone"},
		{ID: "pick", Choices: []Choice{{Label: "A", Next: "start"}, {Label: "B", Next: "nowhere"}, {Label: "C", Locked: true}}},
		{ID: "tip", OnEnter: []Action{UnlockFactAction{FactID: "unknown"}}},
		{ID: "popup", OnEnter: []Action{ShowPopupAction{Popup: PopupGoal, Next: "void"}}},
	})
	require.NoError(t, err)

	content := Content{
		Session:      SessionDefaults{StartSlide: "missing"},
		Achievements: []AchievementEntry{{ID: "known"}},
		Slides:       table,
	}

	err = content.Validate()
	require.ErrorIs(t, err, ErrInvalidContent)
	assert.Contains(t, err.Error(), `start slide "missing"`)
	assert.Contains(t, err.Error(), `next slide "gone"`)
	assert.Contains(t, err.Error(), `choice 2 leads to missing slide "nowhere"`)
	assert.Contains(t, err.Error(), `unknown tip "unknown"`)
	assert.Contains(t, err.Error(), `popup leads to missing slide "void"`)
}

func TestContentValidateRejectsDuplicateTips(t *testing.T) {
	table, err := NewContentTable([]Slide{{ID: "start"}})
	require.NoError(t, err)

	content := Content{
		Session: SessionDefaults{StartSlide: "start"},
		Achievements: []AchievementEntry{
			{ID: "budget", Title: "Budget"},
			{ID: "credit", Title: "Credit"},
			{ID: "budget", Title: "Budget again"},
		},
		Slides: table,
	}

	err = content.Validate()
	require.ErrorIs(t, err, ErrInvalidContent)
	require.ErrorIs(t, err, ErrDuplicateAchievement)
	assert.Contains(t, err.Error(), `duplicate achievement id "budget"`)

	registry := NewRegistry(content.Achievements)
	entry, ok := registry.Lookup("budget")
	require.True(t, ok)
	assert.Equal(t, "Budget", entry.Title)
	assert.Len(t, registry.Entries(), 2)
}

func TestContentValidateAcceptsConsistentContent(t *testing.T) {
	table, err := NewContentTable([]Slide{
		{ID: "start", Next: "end", OnEnter: []Action{UnlockFactAction{FactID: "known"}}},
		{ID: "end"},
	})
	require.NoError(t, err)

	content := Content{
		Session:      SessionDefaults{StartSlide: "start"},
		Achievements: []AchievementEntry{{ID: "known"}},
		Slides:       table,
	}
	assert.NoError(t, content.Validate())
}

func TestSlidePredicates(t *testing.T) {
	assert.True(t, Slide{Next: "b"}.AdvancesDirectly())
	assert.False(t, Slide{Next: "b", Choices: []Choice{{Label: "x"}}}.AdvancesDirectly())
	assert.False(t, Slide{FactText: "   "}.HasFact())
	assert.True(t, Slide{FactText: "fact"}.HasFact())

	assert.True(t, Choice{Next: "b"}.Selectable())
	assert.False(t, Choice{Next: "b", Locked: true}.Selectable())
	assert.False(t, Choice{}.Selectable())
}

func TestClassifyBackground(t *testing.T) {
	assert.Equal(t, BackgroundBlack, ClassifyBackground("black"))
	assert.Equal(t, BackgroundImage, ClassifyBackground("/assets/slides/bank.png"))
	assert.Equal(t, BackgroundImage, ClassifyBackground("slides/photo.WEBP"))
	assert.Equal(t, BackgroundPlaceholder, ClassifyBackground("placeholder-review"))
	assert.Equal(t, BackgroundPlaceholder, ClassifyBackground(""))
}

func TestGameStateWalletImage(t *testing.T) {
	state := NewGameState(DefaultSessionDefaults(), nil)
	assert.Contains(t, state.WalletImage(), "bank-account-old")

	state.CreditVisible = true
	assert.Contains(t, state.WalletImage(), "bank-account-new")
}

func TestNewGameStateUsesDefaults(t *testing.T) {
	state := NewGameState(DefaultSessionDefaults(), testAchievements())

	assert.Equal(t, SlideID("game_intro"), state.CurrentSlideID)
	assert.Equal(t, PhaseDialogue, state.Phase)
	assert.Equal(t, 5550.0, state.Balance)
	assert.Equal(t, 15000.0, state.GoalAmount)
	assert.Equal(t, 680, state.Score)
	assert.Equal(t, 500.0, state.PaycheckAmount)
	assert.Len(t, state.Achievements.Entries(), 4)

	metrics := state.Metrics(true)
	assert.True(t, metrics.Hidden)
	assert.False(t, metrics.ScoreVisible)
	assert.Equal(t, 0, metrics.GoalProgressPercent)
}
