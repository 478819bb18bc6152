// Package risk implements the rules-based scoring of a completed
// questionnaire. Scoring is pure: the same answers always produce the
// same score, and nothing here touches the database or the session.
package risk

import (
	"fmt"
	"strconv"
)

// Level is the three-tier bucketing of a risk score.
type Level string

const (
	LevelLow      Level = "Low Risk"
	LevelModerate Level = "Moderate Risk"
	LevelHigh     Level = "High Risk"
)

// Answer value constants for the twelve categorical fields.
const (
	Yes = "yes"
	No  = "no"

	HistoryNone     = "none"
	HistoryOne      = "one"
	HistoryMultiple = "multiple"

	ProblemsOther = "other"

	MenarcheBefore12 = "before_12"
	MenarcheOther    = "other"

	PregnancyBefore30 = "before_30"
	PregnancyAfter30  = "after_30"
	PregnancyNever    = "never"

	AlcoholNone     = "none"
	AlcoholModerate = "moderate"
	AlcoholHeavy    = "heavy"

	ActivityActive    = "active"
	ActivitySedentary = "sedentary"

	WeightNormal     = "normal"
	WeightOverweight = "overweight"
	WeightObese      = "obese"

	SmokingNever   = "never"
	SmokingCurrent = "current"
)

// Form field names, in questionnaire order.
const (
	FieldAge               = "age"
	FieldLump              = "lump"
	FieldSkinChanges       = "skin_changes"
	FieldNippleChanges     = "nipple_changes"
	FieldFamilyHistory     = "family_history"
	FieldBreastProblems    = "breast_problems"
	FieldMenarcheAge       = "menarche_age"
	FieldFirstPregnancyAge = "first_pregnancy_age"
	FieldHRT               = "hrt"
	FieldAlcohol           = "alcohol"
	FieldActivity          = "activity"
	FieldWeight            = "weight"
	FieldSmoking           = "smoking"
)

// allowedValues is the closed set of accepted values per categorical
// field. Anything outside these sets is rejected, never scored.
var allowedValues = map[string][]string{
	FieldLump:              {Yes, No},
	FieldSkinChanges:       {Yes, No},
	FieldNippleChanges:     {Yes, No},
	FieldFamilyHistory:     {HistoryNone, HistoryOne, HistoryMultiple},
	FieldBreastProblems:    {No, ProblemsOther},
	FieldMenarcheAge:       {MenarcheBefore12, MenarcheOther},
	FieldFirstPregnancyAge: {PregnancyBefore30, PregnancyAfter30, PregnancyNever},
	FieldHRT:               {Yes, No},
	FieldAlcohol:           {AlcoholNone, AlcoholModerate, AlcoholHeavy},
	FieldActivity:          {ActivityActive, ActivitySedentary},
	FieldWeight:            {WeightNormal, WeightOverweight, WeightObese},
	FieldSmoking:           {SmokingNever, SmokingCurrent},
}

// ValidValue reports whether value is in the permitted set for the given
// categorical field. The age field is not categorical and returns false.
func ValidValue(field, value string) bool {
	for _, v := range allowedValues[field] {
		if v == value {
			return true
		}
	}
	return false
}

// Answers is the fixed-shape aggregate of all thirteen questionnaire
// fields. JSON tags match the form field names so the persisted payload
// reads back with the same keys the wizard collected.
type Answers struct {
	Age               int    `json:"age"`
	Lump              string `json:"lump"`
	SkinChanges       string `json:"skin_changes"`
	NippleChanges     string `json:"nipple_changes"`
	FamilyHistory     string `json:"family_history"`
	BreastProblems    string `json:"breast_problems"`
	MenarcheAge       string `json:"menarche_age"`
	FirstPregnancyAge string `json:"first_pregnancy_age"`
	HRT               string `json:"hrt"`
	Alcohol           string `json:"alcohol"`
	Activity          string `json:"activity"`
	Weight            string `json:"weight"`
	Smoking           string `json:"smoking"`
}

// FromMap builds a validated Answers from raw form values keyed by field
// name. Every field must be present and hold a permitted value.
func FromMap(values map[string]string) (Answers, error) {
	var a Answers

	rawAge, ok := values[FieldAge]
	if !ok {
		return a, fmt.Errorf("missing field %q", FieldAge)
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		return a, fmt.Errorf("field %q: %q is not a whole number", FieldAge, rawAge)
	}
	a.Age = age

	fields := []struct {
		name string
		dst  *string
	}{
		{FieldLump, &a.Lump},
		{FieldSkinChanges, &a.SkinChanges},
		{FieldNippleChanges, &a.NippleChanges},
		{FieldFamilyHistory, &a.FamilyHistory},
		{FieldBreastProblems, &a.BreastProblems},
		{FieldMenarcheAge, &a.MenarcheAge},
		{FieldFirstPregnancyAge, &a.FirstPregnancyAge},
		{FieldHRT, &a.HRT},
		{FieldAlcohol, &a.Alcohol},
		{FieldActivity, &a.Activity},
		{FieldWeight, &a.Weight},
		{FieldSmoking, &a.Smoking},
	}
	for _, f := range fields {
		value, ok := values[f.name]
		if !ok {
			return a, fmt.Errorf("missing field %q", f.name)
		}
		*f.dst = value
	}

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

// Validate rejects any answer outside the permitted value sets.
func (a Answers) Validate() error {
	if a.Age < 0 {
		return fmt.Errorf("field %q: age cannot be negative", FieldAge)
	}
	checks := []struct {
		field string
		value string
	}{
		{FieldLump, a.Lump},
		{FieldSkinChanges, a.SkinChanges},
		{FieldNippleChanges, a.NippleChanges},
		{FieldFamilyHistory, a.FamilyHistory},
		{FieldBreastProblems, a.BreastProblems},
		{FieldMenarcheAge, a.MenarcheAge},
		{FieldFirstPregnancyAge, a.FirstPregnancyAge},
		{FieldHRT, a.HRT},
		{FieldAlcohol, a.Alcohol},
		{FieldActivity, a.Activity},
		{FieldWeight, a.Weight},
		{FieldSmoking, a.Smoking},
	}
	for _, c := range checks {
		if !ValidValue(c.field, c.value) {
			return fmt.Errorf("field %q: unrecognized value %q", c.field, c.value)
		}
	}
	return nil
}

// maxScore is the fixed maximum of the additive accumulator. The listed
// weights sum to exactly this value.
const maxScore = 25

// Score computes the risk percentage in [0,100]. Each condition adds its
// weight independently; conditions are not mutually exclusive.
func Score(a Answers) float64 {
	score := 0

	// Presenting symptoms
	if a.Age > 50 {
		score += 2
	}
	if a.Lump == Yes {
		score += 5
	}
	if a.SkinChanges == Yes {
		score += 3
	}
	if a.NippleChanges == Yes {
		score += 3
	}

	// Family and personal history
	if a.FamilyHistory == HistoryOne {
		score += 3
	}
	if a.FamilyHistory == HistoryMultiple {
		score += 5
	}
	if a.BreastProblems != No {
		score += 2
	}

	// Reproductive history
	if a.MenarcheAge == MenarcheBefore12 {
		score += 1
	}
	if a.FirstPregnancyAge == PregnancyAfter30 {
		score += 2
	}
	if a.FirstPregnancyAge == PregnancyNever {
		score += 3
	}
	if a.HRT == Yes {
		score += 1
	}

	// Lifestyle
	if a.Alcohol == AlcoholHeavy {
		score += 2
	}
	if a.Smoking == SmokingCurrent {
		score += 2
	}
	if a.Weight == WeightOverweight || a.Weight == WeightObese {
		score += 2
	}
	if a.Activity == ActivitySedentary {
		score += 1
	}

	// The cap cannot fire with the current weights (they total maxScore)
	// but stays so a future weight change cannot push past 100.
	pct := float64(score) * 100 / maxScore
	if pct > 100 {
		pct = 100
	}
	return pct
}

// LevelFor buckets a score into the three risk tiers. The boundary
// values 30 and 70 fall into the higher tier.
func LevelFor(score float64) Level {
	switch {
	case score >= 70:
		return LevelHigh
	case score >= 30:
		return LevelModerate
	default:
		return LevelLow
	}
}
