// Package wizard runs linear multi-step forms: each step validates its own
// fields before the next one opens, and the last step submits the form.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrStepInvalid is returned by Next when the current step has field errors
	ErrStepInvalid = errors.New("step has invalid fields")
	// ErrSubmitInFlight is returned by Next while a previous submit is pending
	ErrSubmitInFlight = errors.New("submit already in flight")
	// ErrSubmitFailed wraps the error returned by the submit function
	ErrSubmitFailed = errors.New("submit failed")
	// ErrCompleted is returned once the form has been submitted successfully
	ErrCompleted = errors.New("wizard already completed")
)

// ValidateFunc checks a step's fields and returns field -> message for each problem
type ValidateFunc func(fields map[string]string) map[string]string

// SubmitFunc receives a snapshot of every field when the last step is confirmed
type SubmitFunc func(ctx context.Context, fields map[string]string) error

// Step is one page of the form
type Step struct {
	Name     string
	Fields   []string
	Secret   []string // Fields whose values are never echoed back in State
	Validate ValidateFunc
}

// State is a read-only snapshot of a wizard
type State struct {
	Step        int               `json:"step"`
	StepName    string            `json:"stepName"`
	Steps       []string          `json:"steps"`
	Fields      map[string]string `json:"fields"`
	Errors      map[string]string `json:"errors"`
	Submitting  bool              `json:"submitting"`
	SubmitError string            `json:"submitError,omitempty"`
	Completed   bool              `json:"completed"`
	IsLastStep  bool              `json:"isLastStep"`
}

// Wizard is safe for concurrent use. The lock is released while the submit
// function runs, so State stays readable during a slow submit.
type Wizard struct {
	mu sync.Mutex

	steps          []Step
	submit         SubmitFunc
	failureMessage string

	current    int
	fields     map[string]string
	errors     map[string]string
	submitting bool
	submitErr  string
	completed  bool
}

// New creates a wizard on its first step. failureMessage is shown to the user
// whenever submit returns an error.
func New(steps []Step, submit SubmitFunc, failureMessage string) *Wizard {
	return &Wizard{
		steps:          steps,
		submit:         submit,
		failureMessage: failureMessage,
		fields:         map[string]string{},
		errors:         map[string]string{},
	}
}

// Set stores a field value. Unknown fields are ignored.
func (w *Wizard) Set(field, value string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.knows(field) {
		return false
	}
	w.fields[field] = value
	return true
}

// SetAll stores every known field from values
func (w *Wizard) SetAll(values map[string]string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for field, value := range values {
		if w.knows(field) {
			w.fields[field] = value
		}
	}
}

// IsStepValid reports whether step i currently passes validation
func (w *Wizard) IsStepValid(i int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i < 0 || i >= len(w.steps) {
		return false
	}
	return len(w.validate(i)) == 0
}

// Next validates the current step. On success it moves forward, or submits
// when the current step is the last one. On failure the step index is kept
// and the field errors are refreshed.
func (w *Wizard) Next(ctx context.Context) (State, error) {
	w.mu.Lock()

	if w.completed {
		st := w.state()
		w.mu.Unlock()
		return st, ErrCompleted
	}
	if w.submitting {
		st := w.state()
		w.mu.Unlock()
		return st, ErrSubmitInFlight
	}

	w.errors = w.validate(w.current)
	if len(w.errors) > 0 {
		st := w.state()
		w.mu.Unlock()
		return st, ErrStepInvalid
	}

	if w.current < len(w.steps)-1 {
		w.current++
		st := w.state()
		w.mu.Unlock()
		return st, nil
	}

	w.submitting = true
	w.submitErr = ""
	snapshot := maps.Clone(w.fields)
	w.mu.Unlock()

	err := w.submit(ctx, snapshot)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		w.submitErr = w.failureMessage
		return w.state(), fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	w.completed = true
	return w.state(), nil
}

// Back moves to the previous step without validating
func (w *Wizard) Back() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current > 0 && !w.submitting && !w.completed {
		w.current--
		w.errors = map[string]string{}
	}
	return w.state()
}

// State returns a snapshot of the wizard
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state()
}

func (w *Wizard) state() State {
	names := make([]string, len(w.steps))
	for i, s := range w.steps {
		names[i] = s.Name
	}

	fields := make(map[string]string, len(w.fields))
	for k, v := range w.fields {
		if !w.secret(k) {
			fields[k] = v
		}
	}

	return State{
		Step:        w.current,
		StepName:    w.steps[w.current].Name,
		Steps:       names,
		Fields:      fields,
		Errors:      maps.Clone(w.errors),
		Submitting:  w.submitting,
		SubmitError: w.submitErr,
		Completed:   w.completed,
		IsLastStep:  w.current == len(w.steps)-1,
	}
}

func (w *Wizard) validate(i int) map[string]string {
	step := w.steps[i]
	if step.Validate == nil {
		return map[string]string{}
	}
	errs := step.Validate(w.fields)
	if errs == nil {
		errs = map[string]string{}
	}
	return errs
}

func (w *Wizard) knows(field string) bool {
	for _, s := range w.steps {
		if slices.Contains(s.Fields, field) {
			return true
		}
	}
	return false
}

func (w *Wizard) secret(field string) bool {
	for _, s := range w.steps {
		if slices.Contains(s.Secret, field) {
			return true
		}
	}
	return false
}
