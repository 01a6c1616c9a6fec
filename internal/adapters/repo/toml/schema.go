package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version      int                 `toml:"version"`
	Session      sessionSchema       `toml:"session"`
	Achievements []achievementSchema `toml:"achievements" validate:"dive"`
	Slides       []slideSchema       `toml:"slides" validate:"required,dive"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	s.Session.applyDefaults()
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported content schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// sessionSchema uses pointers so an explicit zero is told apart from an
// omitted key.
type sessionSchema struct {
	StartSlide     string   `toml:"start_slide"`
	Balance        *float64 `toml:"balance"`
	TotalSaved     *float64 `toml:"total_saved"`
	TotalSpent     *float64 `toml:"total_spent"`
	GoalAmount     *float64 `toml:"goal_amount"`
	CreditScore    *int     `toml:"credit_score"`
	PaycheckAmount *float64 `toml:"paycheck_amount"`
}

type achievementSchema struct {
	ID          string `toml:"id" validate:"required"`
	Title       string `toml:"title" validate:"required"`
	Description string `toml:"description,omitempty"`
	Milestone   *int   `toml:"milestone,omitempty"`
}

type slideSchema struct {
	ID          string         `toml:"id" validate:"required"`
	Text        string         `toml:"text,omitempty"`
	FactTitle   string         `toml:"fact_title,omitempty"`
	FactText    string         `toml:"fact_text,omitempty"`
	Background  string         `toml:"background,omitempty"`
	Next        string         `toml:"next,omitempty"`
	OpenChoices bool           `toml:"open_choices,omitempty"`
	HideMetrics bool           `toml:"hide_metrics,omitempty"`
	OnEnter     []actionSchema `toml:"on_enter,omitempty" validate:"dive"`
	Choices     []choiceSchema `toml:"choices,omitempty" validate:"dive"`
}

type choiceSchema struct {
	Label    string        `toml:"label" validate:"required"`
	Subtitle string        `toml:"subtitle,omitempty"`
	Next     string        `toml:"next,omitempty"`
	Locked   bool          `toml:"locked,omitempty"`
	Effect   *effectSchema `toml:"effect,omitempty"`
}

type effectSchema struct {
	Kind   string  `toml:"kind" validate:"required,oneof=credit debit transfer_to_savings debit_from_savings"`
	Amount float64 `toml:"amount"`
}

// actionSchema is a flat union; which fields apply depends on Action.
type actionSchema struct {
	Action string `toml:"action" validate:"required,oneof=apply_effect set_balances set_goal_active set_credit_visible set_paycheck unlock_fact complete_milestone show_popup"`

	Effect string  `toml:"effect,omitempty" validate:"required_if=Action apply_effect"`
	Amount float64 `toml:"amount,omitempty"`

	Balance    *float64 `toml:"balance,omitempty"`
	TotalSaved *float64 `toml:"total_saved,omitempty"`

	Fact   string `toml:"fact,omitempty" validate:"required_if=Action unlock_fact"`
	Notify bool   `toml:"notify,omitempty"`

	Milestone int `toml:"milestone,omitempty" validate:"required_if=Action complete_milestone"`

	Popup string `toml:"popup,omitempty" validate:"required_if=Action show_popup"`
	Title string `toml:"title,omitempty"`
	Text  string `toml:"text,omitempty"`
	Next  string `toml:"next,omitempty"`
}
