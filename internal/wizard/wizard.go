// Package wizard holds the transient per-session answer buffer that the
// four questionnaire steps write into. The buffer lives only inside the
// session cookie; it is never written to durable storage.
package wizard

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/risk"
)

// StepCount is the number of wizard pages.
const StepCount = 4

// stepFields lists the required form fields per step, in step order.
var stepFields = [StepCount][]string{
	{risk.FieldAge, risk.FieldLump, risk.FieldSkinChanges, risk.FieldNippleChanges},
	{risk.FieldFamilyHistory, risk.FieldBreastProblems},
	{risk.FieldMenarcheAge, risk.FieldFirstPregnancyAge, risk.FieldHRT},
	{risk.FieldAlcohol, risk.FieldActivity, risk.FieldWeight, risk.FieldSmoking},
}

// Fields returns the required form fields for a 1-based step number.
func Fields(step int) ([]string, error) {
	if step < 1 || step > StepCount {
		return nil, fmt.Errorf("no such step: %d", step)
	}
	return stepFields[step-1], nil
}

// ValidationError reports a step submission that is missing a required
// field or carries a value outside its permitted set.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Buffer accumulates submitted answers across steps. The zero value is
// not usable; construct with NewBuffer or Decode.
type Buffer struct {
	Values map[string]string `json:"values"`
}

func NewBuffer() *Buffer {
	return &Buffer{Values: make(map[string]string)}
}

// Decode rebuilds a buffer from its session-stored form. Anything
// unreadable yields a fresh empty buffer rather than an error; a
// corrupted cookie just restarts the questionnaire.
func Decode(raw string) *Buffer {
	b := NewBuffer()
	if raw == "" {
		return b
	}
	if err := json.Unmarshal([]byte(raw), b); err != nil || b.Values == nil {
		return NewBuffer()
	}
	return b
}

// Encode serializes the buffer for session storage.
func (b *Buffer) Encode() string {
	data, err := json.Marshal(b)
	if err != nil {
		// A map[string]string always marshals.
		return "{}"
	}
	return string(data)
}

// Apply validates one step's submission and, only if every field of
// that step is present and permitted, overwrites that step's keys in
// the buffer. Other steps' keys are never touched, so revisiting an
// earlier step re-overwrites just its own fields.
func (b *Buffer) Apply(step int, form map[string]string) error {
	fields, err := Fields(step)
	if err != nil {
		return err
	}

	// Validate everything before mutating, so a rejected submission
	// leaves the buffer exactly as it was.
	for _, field := range fields {
		value, ok := form[field]
		if !ok || value == "" {
			return &ValidationError{Field: field, Reason: "required"}
		}
		if field == risk.FieldAge {
			age, err := strconv.Atoi(value)
			if err != nil {
				return &ValidationError{Field: field, Reason: "must be a whole number"}
			}
			if age < 0 {
				return &ValidationError{Field: field, Reason: "cannot be negative"}
			}
			continue
		}
		if !risk.ValidValue(field, value) {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("unrecognized value %q", value)}
		}
	}

	for _, field := range fields {
		b.Values[field] = form[field]
	}
	return nil
}

// StepValues returns the already-buffered values for one step's fields,
// used to re-populate a revisited page.
func (b *Buffer) StepValues(step int) map[string]string {
	out := make(map[string]string)
	fields, err := Fields(step)
	if err != nil {
		return out
	}
	for _, field := range fields {
		if v, ok := b.Values[field]; ok {
			out[field] = v
		}
	}
	return out
}

// Complete reports whether all four steps have been submitted.
func (b *Buffer) Complete() bool {
	for _, fields := range stepFields {
		for _, field := range fields {
			if _, ok := b.Values[field]; !ok {
				return false
			}
		}
	}
	return true
}

// Answers builds the fixed-shape scoring input from the buffer. It
// fails if any of the thirteen fields is still missing.
func (b *Buffer) Answers() (risk.Answers, error) {
	return risk.FromMap(b.Values)
}
