package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/ledgerline/internal/adapters/render/format"
	"github.com/bnema/ledgerline/internal/application"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

type RenderOptions struct {
	BarWidth int
	HideTips bool
}

func renderView(snapshot application.Snapshot, tips []domain.AchievementEntry, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Session summary"),
		s.header.Render(fmt.Sprintf("session: %s", snapshot.SessionID)),
		s.header.Render(fmt.Sprintf("slide: %s (%s)", snapshot.SlideID, snapshot.Phase)),
		s.section.Render(renderLedger(snapshot, opts, s)),
		s.section.Render(renderCredit(snapshot, s)),
	}

	if !opts.HideTips {
		lines = append(lines, s.section.Render(renderTips(tips, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLedger(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	goal := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("goal:"),
		" ",
		renderProgressBar(float64(snapshot.GoalProgressPercent), width, s),
		" ",
		s.detail.Render(fmt.Sprintf("%s (%d%%)", format.Progress(snapshot.TotalSaved, snapshot.GoalAmount), snapshot.GoalProgressPercent)),
	)
	if !snapshot.GoalActive {
		goal += " " + s.empty.Render("[inactive]")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.key.Render("balance: ")+s.detail.Render(format.Dollars(snapshot.Balance)),
		s.key.Render("spent: ")+s.detail.Render(format.Dollars(snapshot.TotalSpent)),
		s.key.Render("paycheck: ")+s.detail.Render(format.Dollars(snapshot.PaycheckAmount)),
		goal,
	)
}

func renderCredit(snapshot application.Snapshot, s styles) string {
	if !snapshot.CreditVisible {
		return s.key.Render("credit: ") + s.empty.Render("not started")
	}

	return RenderCreditReport(domain.CreditReport{
		Score:        snapshot.Credit.Score,
		Rating:       snapshot.Credit.Rating,
		Explanations: snapshot.Credit.Explanations,
	})
}

// RenderCreditReport shows a score, its rating and the explanation bullets.
func RenderCreditReport(report domain.CreditReport) string {
	s := newStyles()
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(report.Score))

	parts := []string{
		s.key.Render("credit: ") + scoreStyle.Render(fmt.Sprintf("%d", report.Score)) + " " + s.detail.Render(report.Rating),
	}
	for _, explanation := range report.Explanations {
		parts = append(parts, s.bullet.Render("  • "+explanation))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTips(tips []domain.AchievementEntry, s styles) string {
	unlocked := 0
	for _, tip := range tips {
		if tip.Unlocked {
			unlocked++
		}
	}

	parts := []string{s.key.Render(fmt.Sprintf("tips: %d/%d unlocked", unlocked, len(tips)))}
	if len(tips) == 0 {
		parts = append(parts, s.empty.Render("No tips in this story."))
	}
	for _, tip := range tips {
		if tip.Unlocked {
			parts = append(parts, s.unlocked.Render("  ✓ "+tip.Title))
			continue
		}
		parts = append(parts, s.locked.Render("  · Locked"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := clampPercent(percent) / 100.0
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// scoreColor fades from red at the bottom of the range to green at the top.
func scoreColor(score int) lipgloss.Color {
	span := float64(domain.MaxCreditScore - domain.MinCreditScore)
	normalized := (float64(score) - domain.MinCreditScore) / span
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	ramp := []string{"196", "202", "208", "214", "220", "190", "154", "118", "82", "46"}
	index := int(normalized * float64(len(ramp)-1))
	return lipgloss.Color(ramp[index])
}
