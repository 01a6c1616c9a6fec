package ports

import "github.com/bnema/ledgerline/internal/domain"

// PresentationSink receives rendering commands from the traversal engine.
// Calls arrive from a single goroutine.
type PresentationSink interface {
	RenderBackground(ref string)
	// RenderDialogueText is called repeatedly with growing prefixes while the
	// dialogue is being revealed.
	RenderDialogueText(text string)
	RenderFactText(title, text string)
	RenderChoices(choices []domain.Choice)
	FlashBalance(direction domain.FlashDirection)
	FlashSavings(direction domain.FlashDirection)
	UpdateMetricsDisplay(metrics domain.Metrics)
	ShowPopup(popup domain.Popup)
	HidePopup(kind domain.PopupKind)
	ShowNotification(notification domain.Notification)
}
