package toml

import (
	"fmt"

	"github.com/bnema/ledgerline/internal/domain"
)

func (s *sessionSchema) applyDefaults() {
	defaults := domain.DefaultSessionDefaults()

	if s.StartSlide == "" {
		s.StartSlide = string(defaults.StartSlide)
	}
	if s.Balance == nil {
		s.Balance = &defaults.Balance
	}
	if s.TotalSaved == nil {
		s.TotalSaved = &defaults.TotalSaved
	}
	if s.TotalSpent == nil {
		s.TotalSpent = &defaults.TotalSpent
	}
	if s.GoalAmount == nil {
		s.GoalAmount = &defaults.GoalAmount
	}
	if s.CreditScore == nil {
		s.CreditScore = &defaults.CreditScore
	}
	if s.PaycheckAmount == nil {
		s.PaycheckAmount = &defaults.PaycheckAmount
	}
}

func fromSchema(file fileSchema) (domain.Content, error) {
	file.Session.applyDefaults()

	achievements := make([]domain.AchievementEntry, 0, len(file.Achievements))
	titles := make(map[string]string, len(file.Achievements))
	for _, entry := range file.Achievements {
		achievements = append(achievements, domain.AchievementEntry{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Milestone:   entry.Milestone,
		})
		titles[entry.ID] = entry.Title
	}

	slides := make([]domain.Slide, 0, len(file.Slides))
	for _, entry := range file.Slides {
		slide, err := slideFromSchema(entry, titles)
		if err != nil {
			return domain.Content{}, fmt.Errorf("slide %q: %w", entry.ID, err)
		}
		slides = append(slides, slide)
	}

	table, err := domain.NewContentTable(slides)
	if err != nil {
		return domain.Content{}, err
	}

	session := file.Session
	return domain.Content{
		Session: domain.SessionDefaults{
			StartSlide:     domain.SlideID(session.StartSlide),
			Balance:        *session.Balance,
			TotalSaved:     *session.TotalSaved,
			TotalSpent:     *session.TotalSpent,
			GoalAmount:     *session.GoalAmount,
			CreditScore:    *session.CreditScore,
			PaycheckAmount: *session.PaycheckAmount,
		},
		Achievements: achievements,
		Slides:       table,
	}, nil
}

func slideFromSchema(entry slideSchema, titles map[string]string) (domain.Slide, error) {
	slide := domain.Slide{
		ID:          domain.SlideID(entry.ID),
		Text:        entry.Text,
		FactTitle:   entry.FactTitle,
		FactText:    entry.FactText,
		Background:  entry.Background,
		Next:        domain.SlideID(entry.Next),
		OpenChoices: entry.OpenChoices,
		HideMetrics: entry.HideMetrics,
	}

	for i, choice := range entry.Choices {
		converted := domain.Choice{
			Label:    choice.Label,
			Subtitle: choice.Subtitle,
			Next:     domain.SlideID(choice.Next),
			Locked:   choice.Locked,
		}
		if choice.Effect != nil {
			effect, err := domain.NewEffect(domain.EffectKind(choice.Effect.Kind), choice.Effect.Amount)
			if err != nil {
				return domain.Slide{}, fmt.Errorf("choice %d: %w", i+1, err)
			}
			converted.Effect = effect
		}
		slide.Choices = append(slide.Choices, converted)
	}

	for i, action := range entry.OnEnter {
		converted, err := actionFromSchema(action, titles)
		if err != nil {
			return domain.Slide{}, fmt.Errorf("on_enter %d: %w", i+1, err)
		}
		slide.OnEnter = append(slide.OnEnter, converted)
	}

	return slide, nil
}

func actionFromSchema(entry actionSchema, titles map[string]string) (domain.Action, error) {
	switch domain.ActionKind(entry.Action) {
	case domain.ActionApplyEffect:
		effect, err := domain.NewEffect(domain.EffectKind(entry.Effect), entry.Amount)
		if err != nil {
			return nil, err
		}
		return domain.ApplyEffectAction{Effect: effect}, nil
	case domain.ActionSetBalances:
		return domain.SetBalancesAction{Balance: entry.Balance, TotalSaved: entry.TotalSaved}, nil
	case domain.ActionSetGoalActive:
		return domain.SetGoalActiveAction{}, nil
	case domain.ActionSetCreditVisible:
		return domain.SetCreditVisibleAction{}, nil
	case domain.ActionSetPaycheck:
		return domain.SetPaycheckAction{Amount: entry.Amount}, nil
	case domain.ActionUnlockFact:
		title := entry.Title
		if title == "" {
			title = titles[entry.Fact]
		}
		return domain.UnlockFactAction{FactID: entry.Fact, Title: title, Notify: entry.Notify}, nil
	case domain.ActionCompleteMilestone:
		return domain.CompleteMilestoneAction{Milestone: entry.Milestone}, nil
	case domain.ActionShowPopup:
		kind := domain.PopupKind(entry.Popup)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPopupKind, entry.Popup)
		}
		return domain.ShowPopupAction{
			Popup: kind,
			Title: entry.Title,
			Text:  entry.Text,
			Next:  domain.SlideID(entry.Next),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedActionKind, entry.Action)
	}
}

func toSchema(content domain.Content) (fileSchema, error) {
	session := content.Session
	file := fileSchema{
		Version: currentSchemaVersion,
		Session: sessionSchema{
			StartSlide:     string(session.StartSlide),
			Balance:        &session.Balance,
			TotalSaved:     &session.TotalSaved,
			TotalSpent:     &session.TotalSpent,
			GoalAmount:     &session.GoalAmount,
			CreditScore:    &session.CreditScore,
			PaycheckAmount: &session.PaycheckAmount,
		},
	}

	for _, entry := range content.Achievements {
		file.Achievements = append(file.Achievements, achievementSchema{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Milestone:   entry.Milestone,
		})
	}

	for _, slide := range content.Slides.Slides() {
		encoded := slideSchema{
			ID:          string(slide.ID),
			Text:        slide.Text,
			FactTitle:   slide.FactTitle,
			FactText:    slide.FactText,
			Background:  slide.Background,
			Next:        string(slide.Next),
			OpenChoices: slide.OpenChoices,
			HideMetrics: slide.HideMetrics,
		}

		for _, choice := range slide.Choices {
			encodedChoice := choiceSchema{
				Label:    choice.Label,
				Subtitle: choice.Subtitle,
				Next:     string(choice.Next),
				Locked:   choice.Locked,
			}
			if choice.Effect != nil {
				encodedChoice.Effect = &effectSchema{Kind: string(choice.Effect.Kind()), Amount: choice.Effect.Amount()}
			}
			encoded.Choices = append(encoded.Choices, encodedChoice)
		}

		for _, action := range slide.OnEnter {
			encodedAction, err := actionToSchema(action)
			if err != nil {
				return fileSchema{}, fmt.Errorf("slide %q: %w", slide.ID, err)
			}
			encoded.OnEnter = append(encoded.OnEnter, encodedAction)
		}

		file.Slides = append(file.Slides, encoded)
	}

	return file, nil
}

func actionToSchema(action domain.Action) (actionSchema, error) {
	encoded := actionSchema{Action: string(action.Kind())}

	switch a := action.(type) {
	case domain.ApplyEffectAction:
		if a.Effect == nil {
			return actionSchema{}, fmt.Errorf("%w: apply_effect without effect", domain.ErrUnsupportedEffectKind)
		}
		encoded.Effect = string(a.Effect.Kind())
		encoded.Amount = a.Effect.Amount()
	case domain.SetBalancesAction:
		encoded.Balance = a.Balance
		encoded.TotalSaved = a.TotalSaved
	case domain.SetGoalActiveAction, domain.SetCreditVisibleAction:
	case domain.SetPaycheckAction:
		encoded.Amount = a.Amount
	case domain.UnlockFactAction:
		encoded.Fact = a.FactID
		encoded.Title = a.Title
		encoded.Notify = a.Notify
	case domain.CompleteMilestoneAction:
		encoded.Milestone = a.Milestone
	case domain.ShowPopupAction:
		encoded.Popup = string(a.Popup)
		encoded.Title = a.Title
		encoded.Text = a.Text
		encoded.Next = string(a.Next)
	default:
		return actionSchema{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedActionKind, action.Kind())
	}

	return encoded, nil
}
