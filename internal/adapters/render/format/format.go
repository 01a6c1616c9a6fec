package format

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/bnema/ledgerline/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Dollars formats an amount the way the metrics bar shows it: "$5,550",
// "$1,234.5". Negative or non-finite amounts render as "$0".
func Dollars(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}

	return "$" + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// Progress formats saved against a goal: "$350 / $15,000".
func Progress(saved, goal float64) string {
	return Dollars(saved) + " / " + Dollars(goal)
}

// SceneName shortens a background reference for display.
func SceneName(ref string) string {
	switch domain.ClassifyBackground(ref) {
	case domain.BackgroundBlack:
		return "black"
	case domain.BackgroundImage:
		base := path.Base(ref)
		return strings.TrimSuffix(base, path.Ext(base))
	default:
		return ref
	}
}

// MetricsLine renders the metrics bar as one line, or "" when hidden.
func MetricsLine(m domain.Metrics) string {
	if m.Hidden {
		return ""
	}

	parts := []string{
		"Balance " + Dollars(m.Balance),
		fmt.Sprintf("Goal %s (%d%%)", Progress(m.TotalSaved, m.GoalAmount), m.GoalProgressPercent),
	}
	if m.ScoreVisible {
		parts = append(parts, fmt.Sprintf("Credit %d", m.Score))
	}
	return strings.Join(parts, " | ")
}
