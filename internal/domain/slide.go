package domain

import "strings"

type SlideID string

type Phase int

const (
	PhaseDialogue Phase = iota
	PhaseFact
	PhaseChoices
)

func (p Phase) String() string {
	switch p {
	case PhaseDialogue:
		return "dialogue"
	case PhaseFact:
		return "fact"
	case PhaseChoices:
		return "choices"
	default:
		return "unknown"
	}
}

type Slide struct {
	ID         SlideID
	Text       string
	FactTitle  string
	FactText   string
	Background string
	Choices    []Choice
	Next       SlideID
	OnEnter    []Action
	// OpenChoices skips the dialogue phase and shows the choices right away.
	OpenChoices bool
	HideMetrics bool
}

func (s Slide) HasFact() bool {
	return strings.TrimSpace(s.FactText) != ""
}

// AdvancesDirectly reports whether leaving the dialogue phase goes straight to
// the successor slide.
func (s Slide) AdvancesDirectly() bool {
	return s.Next != "" && len(s.Choices) == 0
}

type Choice struct {
	Label    string
	Subtitle string
	Next     SlideID
	Locked   bool
	Effect   Effect
}

// Selectable reports whether picking the choice leads anywhere.
func (c Choice) Selectable() bool {
	return !c.Locked && c.Next != ""
}

type BackgroundKind int

const (
	BackgroundPlaceholder BackgroundKind = iota
	BackgroundBlack
	BackgroundImage
)

const BlackBackground = "black"

func ClassifyBackground(ref string) BackgroundKind {
	if ref == BlackBackground {
		return BackgroundBlack
	}

	lower := strings.ToLower(ref)
	for _, ext := range []string{".png", ".jpg", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return BackgroundImage
		}
	}

	return BackgroundPlaceholder
}
