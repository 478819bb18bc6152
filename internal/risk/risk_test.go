package risk

import "testing"

// baseline returns answers where every field holds its zero-weight value.
func baseline() Answers {
	return Answers{
		Age:               30,
		Lump:              No,
		SkinChanges:       No,
		NippleChanges:     No,
		FamilyHistory:     HistoryNone,
		BreastProblems:    No,
		MenarcheAge:       MenarcheOther,
		FirstPregnancyAge: PregnancyBefore30,
		HRT:               No,
		Alcohol:           AlcoholNone,
		Activity:          ActivityActive,
		Weight:            WeightNormal,
		Smoking:           SmokingNever,
	}
}

func TestScoreScenarios(t *testing.T) {
	maxed := Answers{
		Age:               60,
		Lump:              Yes,
		SkinChanges:       Yes,
		NippleChanges:     Yes,
		FamilyHistory:     HistoryMultiple,
		BreastProblems:    ProblemsOther,
		MenarcheAge:       MenarcheBefore12,
		FirstPregnancyAge: PregnancyNever,
		HRT:               Yes,
		Alcohol:           AlcoholHeavy,
		Activity:          ActivitySedentary,
		Weight:            WeightObese,
		Smoking:           SmokingCurrent,
	}

	overFifty := baseline()
	overFifty.Age = 60
	overFifty.Lump = Yes

	highRisk := baseline()
	highRisk.Age = 55
	highRisk.Lump = Yes
	highRisk.SkinChanges = Yes
	highRisk.FamilyHistory = HistoryMultiple
	highRisk.FirstPregnancyAge = PregnancyNever

	cases := []struct {
		name      string
		answers   Answers
		wantScore float64
		wantLevel Level
	}{
		{"age and lump only", overFifty, 28.0, LevelLow},
		{"multiple strong factors", highRisk, 72.0, LevelHigh},
		{"every factor at maximum", maxed, 100.0, LevelHigh},
		{"no risk factors", baseline(), 0.0, LevelLow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Score(c.answers)
			if got != c.wantScore {
				t.Fatalf("Score() = %v, want %v", got, c.wantScore)
			}
			if level := LevelFor(got); level != c.wantLevel {
				t.Fatalf("LevelFor(%v) = %q, want %q", got, level, c.wantLevel)
			}
		})
	}
}

func TestLevelThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{0, LevelLow},
		{29.9, LevelLow},
		{30.0, LevelModerate}, // boundary falls upward
		{69.9, LevelModerate},
		{70.0, LevelHigh}, // boundary falls upward
		{100, LevelHigh},
	}
	for _, c := range cases {
		if got := LevelFor(c.score); got != c.want {
			t.Errorf("LevelFor(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestScoreIsPure(t *testing.T) {
	a := baseline()
	a.Lump = Yes
	a.FamilyHistory = HistoryOne

	first := Score(a)
	for i := 0; i < 5; i++ {
		if got := Score(a); got != first {
			t.Fatalf("repeated Score() = %v, first call = %v", got, first)
		}
	}
}

func TestScoreMonotonicPerField(t *testing.T) {
	// Moving any single field from its zero-weight value to a weighted
	// value must never lower the score.
	mutations := []struct {
		name   string
		mutate func(*Answers)
	}{
		{"age over 50", func(a *Answers) { a.Age = 51 }},
		{"lump", func(a *Answers) { a.Lump = Yes }},
		{"skin changes", func(a *Answers) { a.SkinChanges = Yes }},
		{"nipple changes", func(a *Answers) { a.NippleChanges = Yes }},
		{"one relative", func(a *Answers) { a.FamilyHistory = HistoryOne }},
		{"multiple relatives", func(a *Answers) { a.FamilyHistory = HistoryMultiple }},
		{"prior breast problems", func(a *Answers) { a.BreastProblems = ProblemsOther }},
		{"early menarche", func(a *Answers) { a.MenarcheAge = MenarcheBefore12 }},
		{"late first pregnancy", func(a *Answers) { a.FirstPregnancyAge = PregnancyAfter30 }},
		{"never pregnant", func(a *Answers) { a.FirstPregnancyAge = PregnancyNever }},
		{"hrt", func(a *Answers) { a.HRT = Yes }},
		{"heavy alcohol", func(a *Answers) { a.Alcohol = AlcoholHeavy }},
		{"sedentary", func(a *Answers) { a.Activity = ActivitySedentary }},
		{"overweight", func(a *Answers) { a.Weight = WeightOverweight }},
		{"obese", func(a *Answers) { a.Weight = WeightObese }},
		{"current smoker", func(a *Answers) { a.Smoking = SmokingCurrent }},
	}

	base := Score(baseline())
	for _, m := range mutations {
		a := baseline()
		m.mutate(&a)
		if got := Score(a); got < base {
			t.Errorf("%s: score %v dropped below baseline %v", m.name, got, base)
		}
		if got := Score(a); got < 0 || got > 100 {
			t.Errorf("%s: score %v outside [0,100]", m.name, got)
		}
	}
}

func TestFromMap(t *testing.T) {
	full := map[string]string{
		FieldAge:               "45",
		FieldLump:              No,
		FieldSkinChanges:       No,
		FieldNippleChanges:     No,
		FieldFamilyHistory:     HistoryNone,
		FieldBreastProblems:    No,
		FieldMenarcheAge:       MenarcheOther,
		FieldFirstPregnancyAge: PregnancyBefore30,
		FieldHRT:               No,
		FieldAlcohol:           AlcoholModerate,
		FieldActivity:          ActivityActive,
		FieldWeight:            WeightNormal,
		FieldSmoking:           SmokingNever,
	}

	a, err := FromMap(full)
	if err != nil {
		t.Fatalf("FromMap(full) returned error: %v", err)
	}
	if a.Age != 45 || a.Alcohol != AlcoholModerate {
		t.Fatalf("FromMap(full) = %+v, fields not mapped", a)
	}

	t.Run("missing field", func(t *testing.T) {
		partial := map[string]string{}
		for k, v := range full {
			partial[k] = v
		}
		delete(partial, FieldSmoking)
		if _, err := FromMap(partial); err == nil {
			t.Fatal("FromMap without smoking field succeeded, want error")
		}
	})

	t.Run("unrecognized value fails closed", func(t *testing.T) {
		bad := map[string]string{}
		for k, v := range full {
			bad[k] = v
		}
		bad[FieldAlcohol] = "sometimes"
		if _, err := FromMap(bad); err == nil {
			t.Fatal("FromMap with unrecognized alcohol value succeeded, want error")
		}
	})

	t.Run("non-numeric age", func(t *testing.T) {
		bad := map[string]string{}
		for k, v := range full {
			bad[k] = v
		}
		bad[FieldAge] = "forty"
		if _, err := FromMap(bad); err == nil {
			t.Fatal("FromMap with non-numeric age succeeded, want error")
		}
	})

	t.Run("negative age", func(t *testing.T) {
		bad := map[string]string{}
		for k, v := range full {
			bad[k] = v
		}
		bad[FieldAge] = "-1"
		if _, err := FromMap(bad); err == nil {
			t.Fatal("FromMap with negative age succeeded, want error")
		}
	})
}
