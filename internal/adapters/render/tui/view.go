package tui

import (
	"fmt"
	"strings"

	"github.com/bnema/ledgerline/internal/adapters/render/format"
	"github.com/bnema/ledgerline/internal/adapters/render/summary"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var sections []string

	if notices := m.renderNotices(); notices != "" {
		sections = append(sections, notices)
	}
	if bar := m.renderMetrics(); bar != "" {
		sections = append(sections, bar)
	}
	if m.screen.background != "" {
		sections = append(sections, m.styles.scene.Render("["+format.SceneName(m.screen.background)+"]"))
	}
	sections = append(sections, m.renderBody())
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m *Model) renderNotices() string {
	lines := make([]string, 0, len(m.notices))
	for _, n := range m.notices {
		switch n.state {
		case noticeVisible:
			lines = append(lines, m.styles.notice.Render("★ "+n.text))
		case noticeFading:
			lines = append(lines, m.styles.fading.Render("  "+n.text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderMetrics() string {
	metrics := m.screen.metrics
	if metrics.Hidden {
		return ""
	}

	balance := m.flashStyle(domain.FlashTargetBalance).Render("Balance " + format.Dollars(metrics.Balance))
	goal := m.flashStyle(domain.FlashTargetSavings).Render(fmt.Sprintf("Goal %s (%d%%)", format.Progress(metrics.TotalSaved, metrics.GoalAmount), metrics.GoalProgressPercent))
	parts := []string{balance, goal}
	if metrics.ScoreVisible {
		parts = append(parts, m.styles.metrics.Render(fmt.Sprintf("Credit %d", metrics.Score)))
	}

	return strings.Join(parts, m.styles.metrics.Render(" | "))
}

func (m *Model) flashStyle(target domain.FlashTarget) lipgloss.Style {
	flash, ok := m.flashes[target]
	if !ok {
		return m.styles.metrics
	}
	if flash.direction == domain.FlashCredit {
		return m.styles.credit
	}
	return m.styles.debit
}

func (m *Model) renderBody() string {
	if popup := m.screen.popup; popup != nil {
		lines := []string{m.styles.popupTitle.Render(popup.Title)}
		if popup.Text != "" {
			lines = append(lines, "", popup.Text)
		}
		lines = append(lines, "", m.styles.subtitle.Render("enter to close"))
		return m.styles.popup.Render(strings.Join(lines, "\n"))
	}

	switch m.panel {
	case panelCredit:
		report, _ := m.engine.CreditReport()
		return m.styles.panel.Render(m.styles.panelTitle.Render("Credit") + "\n" + summary.RenderCreditReport(report))
	case panelTips:
		return m.styles.panel.Render(m.renderTips())
	case panelWallet:
		return m.styles.panel.Render(m.renderWallet())
	}

	switch m.screen.mode {
	case modeDialogue:
		return m.styles.box.Render(m.styles.dialogue.Render(m.screen.dialogue))
	case modeFact:
		return m.styles.box.Render(m.styles.factTitle.Render(m.screen.factTitle) + "\n" + m.screen.factText)
	case modeChoices:
		if m.screen.dialogue == "" {
			return m.renderChoices()
		}
		return m.styles.box.Render(m.styles.dialogue.Render(m.screen.dialogue)) + "\n" + m.renderChoices()
	default:
		return ""
	}
}

func (m *Model) renderChoices() string {
	lines := make([]string, 0, len(m.screen.choices))
	for i, choice := range m.screen.choices {
		line := fmt.Sprintf("%d) %s", i+1, choice.Label)
		if choice.Subtitle != "" {
			line += " " + m.styles.subtitle.Render("("+choice.Subtitle+")")
		}
		if choice.Locked {
			lines = append(lines, m.styles.locked.Render(line+" [locked]"))
			continue
		}
		lines = append(lines, m.styles.choice.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTips() string {
	entries := m.engine.Achievements()
	unlocked := 0
	for _, entry := range entries {
		if entry.Unlocked {
			unlocked++
		}
	}

	lines := []string{m.styles.panelTitle.Render(fmt.Sprintf("Tips %d/%d", unlocked, len(entries)))}
	for _, entry := range entries {
		if !entry.Unlocked {
			lines = append(lines, m.styles.locked.Render("· Locked"))
			continue
		}
		lines = append(lines, "✓ "+entry.Title)
		if entry.Description != "" {
			lines = append(lines, m.styles.subtitle.Render("  "+entry.Description))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderWallet() string {
	metrics := m.screen.metrics
	return strings.Join([]string{
		m.styles.panelTitle.Render("Wallet"),
		m.styles.scene.Render("[" + format.SceneName(m.engine.WalletImage()) + "]"),
		"Checking " + format.Dollars(metrics.Balance),
		"Savings  " + format.Dollars(metrics.TotalSaved),
	}, "\n")
}

func (m *Model) renderFooter() string {
	footer := m.help.View(m.keys)
	if _, active := m.engine.Revealing(); active {
		footer = m.spinner.View() + " " + footer
	}
	return footer
}
