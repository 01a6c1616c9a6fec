package domain

const maxExplanations = 3

const (
	explainOverspending  = "Spending has exceeded savings, which can hurt your score."
	explainHealthyBuffer = "Keeping a healthy buffer in your account helps your score."
	explainGoalProgress  = "Strong progress toward your savings goal improves your score."
	explainFallback      = "Keep saving and managing spending to maintain or improve your score."
)

func CreditRating(score int) string {
	switch {
	case score >= 800:
		return "Excellent"
	case score >= 740:
		return "Very Good"
	case score >= 670:
		return "Good"
	case score >= 580:
		return "Fair"
	default:
		return "Poor"
	}
}

// Explanations lists why the score looks the way it does, in a fixed order.
func (l Ledger) Explanations() []string {
	bullets := make([]string, 0, maxExplanations)
	if l.overspending() {
		bullets = append(bullets, explainOverspending)
	}
	if l.healthyBuffer() {
		bullets = append(bullets, explainHealthyBuffer)
	}
	if l.strongGoalProgress() {
		bullets = append(bullets, explainGoalProgress)
	}
	if len(bullets) == 0 {
		bullets = append(bullets, explainFallback)
	}

	if len(bullets) > maxExplanations {
		bullets = bullets[:maxExplanations]
	}
	return bullets
}

type CreditReport struct {
	Score        int
	Rating       string
	Explanations []string
}

func (l Ledger) CreditReport() CreditReport {
	return CreditReport{
		Score:        l.Score,
		Rating:       CreditRating(l.Score),
		Explanations: l.Explanations(),
	}
}
