package domain

import "time"

type ActionKind string

const (
	ActionApplyEffect       ActionKind = "apply_effect"
	ActionSetBalances       ActionKind = "set_balances"
	ActionSetGoalActive     ActionKind = "set_goal_active"
	ActionSetCreditVisible  ActionKind = "set_credit_visible"
	ActionSetPaycheck       ActionKind = "set_paycheck"
	ActionUnlockFact        ActionKind = "unlock_fact"
	ActionCompleteMilestone ActionKind = "complete_milestone"
	ActionShowPopup         ActionKind = "show_popup"
)

// Action is a declarative step run when a slide is entered. The set of
// implementations is closed to this package.
type Action interface {
	Kind() ActionKind
	isAction()
}

type ApplyEffectAction struct {
	Effect Effect
}

// SetBalancesAction overwrites balances directly, as a time skip does.
// Nil fields are left untouched.
type SetBalancesAction struct {
	Balance    *float64
	TotalSaved *float64
}

type SetGoalActiveAction struct{}

type SetCreditVisibleAction struct{}

type SetPaycheckAction struct {
	Amount float64
}

type UnlockFactAction struct {
	FactID string
	// Title is shown as a "Tip: <title>" notification when Notify is set.
	Title  string
	Notify bool
}

type CompleteMilestoneAction struct {
	Milestone int
}

type ShowPopupAction struct {
	Popup PopupKind
	Title string
	// Text defaults to the slide text when empty.
	Text string
	// Next defaults to the slide successor when empty.
	Next SlideID
}

func (ApplyEffectAction) Kind() ActionKind       { return ActionApplyEffect }
func (SetBalancesAction) Kind() ActionKind       { return ActionSetBalances }
func (SetGoalActiveAction) Kind() ActionKind     { return ActionSetGoalActive }
func (SetCreditVisibleAction) Kind() ActionKind  { return ActionSetCreditVisible }
func (SetPaycheckAction) Kind() ActionKind       { return ActionSetPaycheck }
func (UnlockFactAction) Kind() ActionKind        { return ActionUnlockFact }
func (CompleteMilestoneAction) Kind() ActionKind { return ActionCompleteMilestone }
func (ShowPopupAction) Kind() ActionKind         { return ActionShowPopup }

func (ApplyEffectAction) isAction()       {}
func (SetBalancesAction) isAction()       {}
func (SetGoalActiveAction) isAction()     {}
func (SetCreditVisibleAction) isAction()  {}
func (SetPaycheckAction) isAction()       {}
func (UnlockFactAction) isAction()        {}
func (CompleteMilestoneAction) isAction() {}
func (ShowPopupAction) isAction()         {}

type PopupKind string

const (
	PopupGoal              PopupKind = "goal"
	PopupCreditEducation   PopupKind = "credit_education"
	PopupInvestmentOptions PopupKind = "investment_options"
)

func (k PopupKind) Valid() bool {
	switch k {
	case PopupGoal, PopupCreditEducation, PopupInvestmentOptions:
		return true
	default:
		return false
	}
}

// Popup is an out-of-band modal that suspends phase sequencing until dismissed.
type Popup struct {
	Kind  PopupKind
	Title string
	Text  string
	Next  SlideID
}

// Notification is a self-expiring banner. Delay staggers notifications raised
// together; Visible and FadeOut drive the sink's dismissal timing.
type Notification struct {
	Text    string
	Delay   time.Duration
	Visible time.Duration
	FadeOut time.Duration
}

const TipPrefix = "Tip: "
