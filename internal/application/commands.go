package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidStep = errors.New("invalid step")

type StepKind string

const (
	StepContinue StepKind = "continue"
	StepDismiss  StepKind = "dismiss"
	StepChoose   StepKind = "choose"
)

// Step is one scripted user event for a headless replay. Choice is 1-based,
// as choices are numbered on screen.
type Step struct {
	Kind   StepKind
	Choice int
}

// ParseSteps reads a replay script: "c" continues, "d" dismisses the open
// popup and a number picks that choice. Tokens are separated by commas or
// whitespace.
func ParseSteps(script string) ([]Step, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	steps := make([]Step, 0, len(fields))
	for i, field := range fields {
		switch strings.ToLower(field) {
		case "c", "continue":
			steps = append(steps, Step{Kind: StepContinue})
		case "d", "dismiss":
			steps = append(steps, Step{Kind: StepDismiss})
		default:
			n, err := strconv.Atoi(field)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: token %d %q", ErrInvalidStep, i+1, field)
			}
			steps = append(steps, Step{Kind: StepChoose, Choice: n})
		}
	}

	return steps, nil
}

// Apply feeds one step to the engine.
func (e *Engine) Apply(step Step) error {
	switch step.Kind {
	case StepContinue:
		return e.Continue()
	case StepDismiss:
		return e.DismissPopup()
	case StepChoose:
		return e.SelectChoice(step.Choice - 1)
	default:
		return fmt.Errorf("%w: unsupported kind %q", ErrInvalidStep, step.Kind)
	}
}

// Replay runs the steps in order and stops at the first content error.
func (e *Engine) Replay(steps []Step) error {
	for i, step := range steps {
		if err := e.Apply(step); err != nil {
			return fmt.Errorf("replay step %d: %w", i+1, err)
		}
	}
	return nil
}
