package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/risk"
)

// Field describes one questionnaire input for the client: its form name,
// display text, and the choices it offers. The permitted values live in
// the risk package; this is presentation metadata layered on top.
type Field struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Type        string   `yaml:"type"`
	Options     []Option `yaml:"options,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
}

// Option is one selectable choice of a categorical field.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Step is one page of the wizard.
type Step struct {
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// Questionnaire holds the ordered wizard steps.
type Questionnaire struct {
	Steps []Step `yaml:"steps"`
}

// LoadQuestionnaire reads and parses the questionnaire definition.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire file: %w", err)
	}

	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questionnaire YAML: %w", err)
	}

	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("invalid questionnaire definition: %w", err)
	}
	return &q, nil
}

// validate checks the definition against the scoring engine's permitted
// values, so a stale YAML file cannot offer an answer the engine would
// reject at submission time.
func (q *Questionnaire) validate() error {
	seen := map[string]bool{}
	for i, step := range q.Steps {
		for _, f := range step.Fields {
			if seen[f.Name] {
				return fmt.Errorf("step %d: duplicate field %q", i+1, f.Name)
			}
			seen[f.Name] = true

			if f.Name == risk.FieldAge {
				continue
			}
			if len(f.Options) == 0 {
				return fmt.Errorf("step %d: field %q has no options", i+1, f.Name)
			}
			for _, opt := range f.Options {
				if !risk.ValidValue(f.Name, opt.Value) {
					return fmt.Errorf("step %d: field %q offers value %q the scoring engine does not accept", i+1, f.Name, opt.Value)
				}
			}
		}
	}
	return nil
}

// StepAt returns the definition for a 1-based step number.
func (q *Questionnaire) StepAt(n int) (Step, bool) {
	if n < 1 || n > len(q.Steps) {
		return Step{}, false
	}
	return q.Steps[n-1], true
}
