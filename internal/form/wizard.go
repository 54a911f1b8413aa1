// Package form drives the two-step employee form: per-step validation,
// touched-field tracking, and submission in add or edit mode.
package form

import (
	"context"
	"errors"

	"github.com/Amrutha2803/employee-list/internal/models"
	"github.com/Amrutha2803/employee-list/internal/validation"
)

// Steps lists the fields checked before leaving each step, in step order.
var Steps = [][]string{
	{"name", "emailId", "contactNo"},
	{"Department", "city", "state", "Pincode"},
}

var (
	ErrReadOnly   = errors.New("form is read only")
	ErrNotLast    = errors.New("submit is only allowed from the last step")
	ErrInvalid    = errors.New("form has invalid fields")
	ErrNoSuchStep = errors.New("no such step")
)

// StepFields returns the fields of a 1-based step.
func StepFields(step int) ([]string, error) {
	if step < 1 || step > len(Steps) {
		return nil, ErrNoSuchStep
	}
	return Steps[step-1], nil
}

// Submitter is the part of the employee service a submit needs.
type Submitter interface {
	Create(ctx context.Context, in models.Input) (models.Employee, error)
	Update(ctx context.Context, p models.Patch) (models.Employee, bool, error)
}

type Wizard struct {
	mode      models.Mode
	step      int
	input     models.Input
	touched   map[string]bool
	validator *validation.Validator
}

// NewWizard opens the form on initial. View mode opens on the last step.
func NewWizard(v *validation.Validator, mode models.Mode, initial models.Input) *Wizard {
	w := &Wizard{mode: mode, input: initial, validator: v}
	w.start()
	return w
}

func (w *Wizard) start() {
	w.step = 1
	if w.mode == models.ModeView {
		w.step = len(Steps)
	}
	w.touched = map[string]bool{}
}

func (w *Wizard) Mode() models.Mode   { return w.mode }
func (w *Wizard) Step() int           { return w.step }
func (w *Wizard) Input() models.Input { return w.input }
func (w *Wizard) ReadOnly() bool      { return w.mode == models.ModeView }

// Set replaces the form values. View mode refuses.
func (w *Wizard) Set(in models.Input) error {
	if w.ReadOnly() {
		return ErrReadOnly
	}
	w.input = in
	return nil
}

// Touch marks fields as visited so their errors show.
func (w *Wizard) Touch(fields ...string) {
	for _, f := range fields {
		w.touched[f] = true
	}
}

// Next advances when the current step's fields validate. In view mode the
// fields are disabled and never block navigation.
func (w *Wizard) Next() bool {
	if w.step >= len(Steps) {
		return false
	}
	fields := Steps[w.step-1]
	w.Touch(fields...)
	if !w.ReadOnly() && w.validator.ValidateFields(w.input, fields...) != nil {
		return false
	}
	w.step++
	return true
}

func (w *Wizard) Prev() {
	if w.step > 1 {
		w.step--
	}
}

// Errors returns the field errors of touched fields only.
func (w *Wizard) Errors() validation.FieldErrors {
	if w.ReadOnly() {
		return nil
	}
	all := w.validator.Validate(w.input)
	out := validation.FieldErrors{}
	for f, keys := range all {
		if w.touched[f] {
			out[f] = keys
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Submit saves the form through s: a create in add mode, an update by email in
// edit mode. The returned bool is false when an edit matched no record. Once the
// save goes through the form is reset for the next entry.
func (w *Wizard) Submit(ctx context.Context, s Submitter) (models.Employee, bool, error) {
	if w.ReadOnly() {
		return models.Employee{}, false, ErrReadOnly
	}
	if w.step != len(Steps) {
		return models.Employee{}, false, ErrNotLast
	}
	for _, fields := range Steps {
		w.Touch(fields...)
	}
	w.Touch("gender")
	if w.validator.Validate(w.input) != nil {
		return models.Employee{}, false, ErrInvalid
	}

	rec, ok := models.Employee{}, true
	var err error
	if w.mode == models.ModeEdit {
		rec, ok, err = s.Update(ctx, models.PatchFrom(w.input))
	} else {
		rec, err = s.Create(ctx, w.input)
	}
	if err != nil {
		return models.Employee{}, false, err
	}
	// an edit that matched nothing still closes the form
	w.Reset()
	return rec, ok, nil
}

// Reset clears the values and goes back to the first step.
func (w *Wizard) Reset() {
	w.input = models.Input{}
	w.start()
	w.step = 1
}
