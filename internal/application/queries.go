package application

import (
	"github.com/bnema/ledgerline/internal/domain"
)

// Snapshot is a read-only view of a session, used by the summary renderer and
// by `replay --json`.
type Snapshot struct {
	SessionID           string        `json:"session_id"`
	SlideID             string        `json:"slide_id"`
	Phase               string        `json:"phase"`
	Balance             float64       `json:"balance"`
	TotalSaved          float64       `json:"total_saved"`
	TotalSpent          float64       `json:"total_spent"`
	GoalAmount          float64       `json:"goal_amount"`
	GoalProgressPercent int           `json:"goal_progress_percent"`
	GoalUnlocked        bool          `json:"goal_unlocked"`
	GoalActive          bool          `json:"goal_active"`
	CreditVisible       bool          `json:"credit_visible"`
	Credit              CreditSummary `json:"credit"`
	PaycheckAmount      float64       `json:"paycheck_amount"`
	CompletedMilestones []int         `json:"completed_milestones"`
	UnlockedTips        []string      `json:"unlocked_tips"`
	OpenPopup           string        `json:"open_popup,omitempty"`
}

type CreditSummary struct {
	Score        int      `json:"score"`
	Rating       string   `json:"rating"`
	Explanations []string `json:"explanations"`
}

func (e *Engine) Snapshot() Snapshot {
	report := e.state.CreditReport()

	snapshot := Snapshot{
		SessionID:           e.id.String(),
		SlideID:             string(e.state.CurrentSlideID),
		Phase:               e.state.Phase.String(),
		Balance:             e.state.Balance,
		TotalSaved:          e.state.TotalSaved,
		TotalSpent:          e.state.TotalSpent,
		GoalAmount:          e.state.GoalAmount,
		GoalProgressPercent: e.state.GoalProgressPercent(),
		GoalUnlocked:        e.state.GoalUnlocked,
		GoalActive:          e.state.GoalActive,
		CreditVisible:       e.state.CreditVisible,
		Credit: CreditSummary{
			Score:        report.Score,
			Rating:       report.Rating,
			Explanations: report.Explanations,
		},
		PaycheckAmount:      e.state.PaycheckAmount,
		CompletedMilestones: e.state.Achievements.CompletedMilestones(),
		UnlockedTips:        e.state.Achievements.UnlockedIDs(),
	}
	if snapshot.CompletedMilestones == nil {
		snapshot.CompletedMilestones = []int{}
	}
	if snapshot.UnlockedTips == nil {
		snapshot.UnlockedTips = []string{}
	}
	if e.popup != nil {
		snapshot.OpenPopup = string(e.popup.Kind)
	}

	return snapshot
}

// Achievements lists every tip with its current unlock state.
func (e *Engine) Achievements() []domain.AchievementEntry {
	return e.state.Achievements.Entries()
}

// CreditReport is only meaningful once the credit card has been opened; the
// boolean reports that.
func (e *Engine) CreditReport() (domain.CreditReport, bool) {
	return e.state.CreditReport(), e.state.CreditVisible
}

func (e *Engine) WalletImage() string {
	return e.state.WalletImage()
}

func (e *Engine) Metrics() domain.Metrics {
	hidden := false
	if slide, err := e.slides.Lookup(e.state.CurrentSlideID); err == nil {
		hidden = slide.HideMetrics
	}
	return e.state.Metrics(hidden)
}
