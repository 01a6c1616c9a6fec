package domain

import "math"

const (
	MinCreditScore  = 300
	MaxCreditScore  = 850
	baseCreditScore = 680

	overspendPenalty    = 20
	bufferBonus         = 15
	goalProgressBonus   = 25
	healthyBufferAmount = 3000
	goalProgressTarget  = 0.5
)

// Ledger holds the financial side of a session. Every applied operation
// recomputes Score before returning.
type Ledger struct {
	Balance    float64
	TotalSaved float64
	TotalSpent float64
	GoalAmount float64
	Score      int
}

type FlashDirection string

const (
	FlashCredit FlashDirection = "credit"
	FlashDebit  FlashDirection = "debit"
)

type FlashTarget string

const (
	FlashTargetBalance FlashTarget = "balance"
	FlashTargetSavings FlashTarget = "savings"
)

// LedgerChange describes the outcome of applying an Effect.
type LedgerChange struct {
	Kind    EffectKind
	Applied bool
	// Moved is the amount that actually left or entered the balance or savings.
	Moved float64
}

// Flash returns which metric should flash for this change, if any.
func (c LedgerChange) Flash() (FlashTarget, FlashDirection, bool) {
	if !c.Applied {
		return "", "", false
	}

	switch c.Kind {
	case EffectCredit:
		return FlashTargetBalance, FlashCredit, true
	case EffectDebit:
		if c.Moved > 0 {
			return FlashTargetBalance, FlashDebit, true
		}
		return "", "", false
	case EffectTransferToSavings:
		return FlashTargetBalance, FlashDebit, true
	case EffectDebitFromSavings:
		return FlashTargetSavings, FlashDebit, true
	default:
		return "", "", false
	}
}

func (l *Ledger) Apply(effect Effect) LedgerChange {
	switch e := effect.(type) {
	case CreditEffect:
		return LedgerChange{Kind: EffectCredit, Applied: l.Credit(e.Value), Moved: e.Value}
	case DebitEffect:
		moved, ok := l.Debit(e.Value)
		return LedgerChange{Kind: EffectDebit, Applied: ok, Moved: moved}
	case SavingsTransferEffect:
		moved, ok := l.TransferToSavings(e.Value)
		return LedgerChange{Kind: EffectTransferToSavings, Applied: ok, Moved: moved}
	case SavingsDebitEffect:
		moved, ok := l.DebitFromSavings(e.Value)
		return LedgerChange{Kind: EffectDebitFromSavings, Applied: ok, Moved: moved}
	default:
		return LedgerChange{}
	}
}

func (l *Ledger) Credit(amount float64) bool {
	if !ValidAmount(amount) {
		return false
	}

	l.Balance += amount
	l.RecomputeScore()
	return true
}

// Debit removes amount from the balance, flooring it at zero. TotalSpent grows
// by the requested amount even when the balance could not cover all of it.
func (l *Ledger) Debit(amount float64) (float64, bool) {
	if !ValidAmount(amount) {
		return 0, false
	}

	actual := math.Min(amount, l.Balance)
	l.Balance = math.Max(0, l.Balance-amount)
	l.TotalSpent += amount
	l.RecomputeScore()
	return actual, true
}

func (l *Ledger) TransferToSavings(amount float64) (float64, bool) {
	if !ValidAmount(amount) {
		return 0, false
	}

	actual := math.Min(amount, l.Balance)
	if actual <= 0 {
		return 0, false
	}

	l.Balance -= actual
	l.TotalSaved += actual
	l.RecomputeScore()
	return actual, true
}

// DebitFromSavings subtracts the requested amount from TotalSaved, floored at
// zero. Nothing happens when savings are empty.
func (l *Ledger) DebitFromSavings(amount float64) (float64, bool) {
	if !ValidAmount(amount) {
		return 0, false
	}

	actual := math.Min(amount, l.TotalSaved)
	if actual <= 0 {
		return 0, false
	}

	l.TotalSaved = math.Max(0, l.TotalSaved-amount)
	l.RecomputeScore()
	return actual, true
}

func (l *Ledger) RecomputeScore() int {
	l.Score = ComputeScore(*l)
	return l.Score
}

func (l Ledger) GoalProgress() float64 {
	if l.GoalAmount <= 0 {
		return 0
	}
	return l.TotalSaved / l.GoalAmount
}

// GoalProgressPercent is the progress shown in the metrics bar, capped at 100.
func (l Ledger) GoalProgressPercent() int {
	return int(math.Round(math.Min(1, l.GoalProgress()) * 100))
}

func (l Ledger) overspending() bool {
	return l.TotalSpent > l.TotalSaved
}

func (l Ledger) healthyBuffer() bool {
	return l.Balance > healthyBufferAmount
}

func (l Ledger) strongGoalProgress() bool {
	return l.GoalProgress() > goalProgressTarget
}

// ComputeScore derives the credit score from the current balances only.
func ComputeScore(l Ledger) int {
	score := baseCreditScore
	if l.overspending() {
		score -= overspendPenalty
	}
	if l.healthyBuffer() {
		score += bufferBonus
	}
	if l.strongGoalProgress() {
		score += goalProgressBonus
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < MinCreditScore {
		return MinCreditScore
	}
	if score > MaxCreditScore {
		return MaxCreditScore
	}
	return score
}
