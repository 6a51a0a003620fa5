// Package wizard models the three-step profile form flow as an explicit
// finite-state machine: Basic Info -> About You -> Confirm. Both directions
// are permitted, no step may be skipped, and submission is only allowed from
// the final step.
package wizard

import "fmt"

// Step is one state of the profile form flow.
type Step int

const (
	StepBasicInfo Step = 1
	StepAboutYou  Step = 2
	StepConfirm   Step = 3

	minStep = StepBasicInfo
	maxStep = StepConfirm
)

// String returns the user-facing title of the step.
func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepAboutYou:
		return "About You"
	case StepConfirm:
		return "Confirm"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	return s >= minStep && s <= maxStep
}

// Wizard tracks the current step of the form flow.
type Wizard struct {
	current Step
}

// New returns a wizard positioned at the first step.
func New() *Wizard {
	return &Wizard{current: StepBasicInfo}
}

// Current returns the current step.
func (w *Wizard) Current() Step {
	return w.current
}

// Restore positions the wizard at the given persisted step. Unknown values
// fall back to the first step instead of failing, matching the treatment of
// corrupted cached state elsewhere.
func (w *Wizard) Restore(s Step) {
	if !s.Valid() {
		s = StepBasicInfo
	}
	w.current = s
}

// Next advances one step. It reports whether the position changed.
func (w *Wizard) Next() bool {
	if w.current >= maxStep {
		return false
	}
	w.current++
	return true
}

// Back retreats one step. It reports whether the position changed.
func (w *Wizard) Back() bool {
	if w.current <= minStep {
		return false
	}
	w.current--
	return true
}

// CanSubmit reports whether the terminal action is allowed, which is only
// the case on the confirm step.
func (w *Wizard) CanSubmit() bool {
	return w.current == StepConfirm
}

// Reset returns the wizard to the first step.
func (w *Wizard) Reset() {
	w.current = StepBasicInfo
}
