package domain

import (
	"errors"
	"fmt"
)

// ContentTable maps slide ids to slides and remembers authoring order.
// It is never mutated after construction.
type ContentTable struct {
	slides map[SlideID]Slide
	order  []SlideID
}

func NewContentTable(slides []Slide) (ContentTable, error) {
	table := ContentTable{
		slides: make(map[SlideID]Slide, len(slides)),
		order:  make([]SlideID, 0, len(slides)),
	}

	for _, slide := range slides {
		if slide.ID == "" {
			return ContentTable{}, fmt.Errorf("%w: slide without id", ErrInvalidContent)
		}
		if _, ok := table.slides[slide.ID]; ok {
			return ContentTable{}, fmt.Errorf("%w: %q", ErrDuplicateSlide, slide.ID)
		}
		table.slides[slide.ID] = slide
		table.order = append(table.order, slide.ID)
	}

	return table, nil
}

func (t ContentTable) Lookup(id SlideID) (Slide, error) {
	slide, ok := t.slides[id]
	if !ok {
		return Slide{}, fmt.Errorf("%w: %q", ErrSlideNotFound, id)
	}
	return slide, nil
}

func (t ContentTable) Has(id SlideID) bool {
	_, ok := t.slides[id]
	return ok
}

func (t ContentTable) Len() int {
	return len(t.order)
}

// Slides returns the slides in authoring order.
func (t ContentTable) Slides() []Slide {
	slides := make([]Slide, 0, len(t.order))
	for _, id := range t.order {
		slides = append(slides, t.slides[id])
	}
	return slides
}

// Content is everything a session is built from.
type Content struct {
	Session      SessionDefaults
	Achievements []AchievementEntry
	Slides       ContentTable
}

// Validate checks that every referenced slide and tip exists and that tip ids
// are unique. It does not judge the story itself.
func (c Content) Validate() error {
	var errs []error

	if !c.Slides.Has(c.Session.StartSlide) {
		errs = append(errs, fmt.Errorf("%w: start slide %q does not exist", ErrInvalidContent, c.Session.StartSlide))
	}

	facts := make(map[string]struct{}, len(c.Achievements))
	for _, entry := range c.Achievements {
		if _, ok := facts[entry.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %w %q", ErrInvalidContent, ErrDuplicateAchievement, entry.ID))
			continue
		}
		facts[entry.ID] = struct{}{}
	}

	for _, slide := range c.Slides.Slides() {
		if slide.Next != "" && !c.Slides.Has(slide.Next) {
			errs = append(errs, fmt.Errorf("%w: slide %q: next slide %q does not exist", ErrInvalidContent, slide.ID, slide.Next))
		}

		for i, choice := range slide.Choices {
			if choice.Next != "" && !c.Slides.Has(choice.Next) {
				errs = append(errs, fmt.Errorf("%w: slide %q: choice %d leads to missing slide %q", ErrInvalidContent, slide.ID, i+1, choice.Next))
			}
		}

		for _, action := range slide.OnEnter {
			switch a := action.(type) {
			case UnlockFactAction:
				if _, ok := facts[a.FactID]; !ok {
					errs = append(errs, fmt.Errorf("%w: slide %q: unknown tip %q", ErrInvalidContent, slide.ID, a.FactID))
				}
			case ShowPopupAction:
				next := a.Next
				if next == "" {
					next = slide.Next
				}
				if next != "" && !c.Slides.Has(next) {
					errs = append(errs, fmt.Errorf("%w: slide %q: popup leads to missing slide %q", ErrInvalidContent, slide.ID, next))
				}
			}
		}
	}

	return errors.Join(errs...)
}
