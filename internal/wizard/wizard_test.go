package wizard

import (
	"testing"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/risk"
)

var stepForms = [StepCount]map[string]string{
	{
		risk.FieldAge:           "42",
		risk.FieldLump:          risk.No,
		risk.FieldSkinChanges:   risk.No,
		risk.FieldNippleChanges: risk.No,
	},
	{
		risk.FieldFamilyHistory:  risk.HistoryNone,
		risk.FieldBreastProblems: risk.No,
	},
	{
		risk.FieldMenarcheAge:       risk.MenarcheOther,
		risk.FieldFirstPregnancyAge: risk.PregnancyBefore30,
		risk.FieldHRT:               risk.No,
	},
	{
		risk.FieldAlcohol:  risk.AlcoholNone,
		risk.FieldActivity: risk.ActivityActive,
		risk.FieldWeight:   risk.WeightNormal,
		risk.FieldSmoking:  risk.SmokingNever,
	},
}

func completeBuffer(t *testing.T) *Buffer {
	t.Helper()
	b := NewBuffer()
	for step := 1; step <= StepCount; step++ {
		if err := b.Apply(step, stepForms[step-1]); err != nil {
			t.Fatalf("Apply(step %d) returned error: %v", step, err)
		}
	}
	return b
}

func TestStepFieldsCoverAllThirteen(t *testing.T) {
	seen := map[string]int{}
	total := 0
	for step := 1; step <= StepCount; step++ {
		fields, err := Fields(step)
		if err != nil {
			t.Fatalf("Fields(%d) returned error: %v", step, err)
		}
		for _, f := range fields {
			seen[f]++
			total++
		}
	}
	if total != 13 {
		t.Fatalf("steps define %d fields, want 13", total)
	}
	for f, n := range seen {
		if n != 1 {
			t.Errorf("field %q appears in %d steps, want 1", f, n)
		}
	}
}

func TestFieldsRejectsBadStep(t *testing.T) {
	for _, step := range []int{0, -1, StepCount + 1} {
		if _, err := Fields(step); err == nil {
			t.Errorf("Fields(%d) succeeded, want error", step)
		}
	}
}

func TestApplyAndComplete(t *testing.T) {
	b := NewBuffer()
	if b.Complete() {
		t.Fatal("empty buffer reports complete")
	}

	b = completeBuffer(t)
	if !b.Complete() {
		t.Fatal("buffer with all four steps applied reports incomplete")
	}

	a, err := b.Answers()
	if err != nil {
		t.Fatalf("Answers() returned error: %v", err)
	}
	if a.Age != 42 || a.Weight != risk.WeightNormal {
		t.Fatalf("Answers() = %+v, fields not carried over", a)
	}
}

func TestApplyMissingFieldLeavesBufferUntouched(t *testing.T) {
	b := NewBuffer()
	form := map[string]string{
		risk.FieldAge:  "42",
		risk.FieldLump: risk.Yes,
		// skin_changes and nipple_changes absent
	}
	err := b.Apply(1, form)
	if err == nil {
		t.Fatal("Apply with missing fields succeeded, want ValidationError")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("Apply returned %T, want *ValidationError", err)
	}
	if len(b.Values) != 0 {
		t.Fatalf("rejected submission wrote %d values into the buffer", len(b.Values))
	}
}

func TestApplyRejectsUnknownValue(t *testing.T) {
	b := NewBuffer()
	form := map[string]string{
		risk.FieldFamilyHistory:  "several",
		risk.FieldBreastProblems: risk.No,
	}
	if err := b.Apply(2, form); err == nil {
		t.Fatal("Apply with unknown family_history value succeeded, want error")
	}
}

func TestApplyRejectsBadAge(t *testing.T) {
	for _, age := range []string{"", "abc", "-3"} {
		b := NewBuffer()
		form := map[string]string{
			risk.FieldAge:           age,
			risk.FieldLump:          risk.No,
			risk.FieldSkinChanges:   risk.No,
			risk.FieldNippleChanges: risk.No,
		}
		if err := b.Apply(1, form); err == nil {
			t.Errorf("Apply with age %q succeeded, want error", age)
		}
	}
}

func TestRevisitOverwritesOnlyOwnStep(t *testing.T) {
	b := completeBuffer(t)

	resubmit := map[string]string{
		risk.FieldFamilyHistory:  risk.HistoryMultiple,
		risk.FieldBreastProblems: risk.ProblemsOther,
	}
	if err := b.Apply(2, resubmit); err != nil {
		t.Fatalf("re-Apply(step 2) returned error: %v", err)
	}

	if b.Values[risk.FieldFamilyHistory] != risk.HistoryMultiple {
		t.Error("resubmitted step 2 value not overwritten")
	}
	if b.Values[risk.FieldAge] != "42" {
		t.Error("step 1 value changed by step 2 resubmission")
	}
	if b.Values[risk.FieldSmoking] != risk.SmokingNever {
		t.Error("step 4 value changed by step 2 resubmission")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := completeBuffer(t)
	restored := Decode(b.Encode())

	if len(restored.Values) != len(b.Values) {
		t.Fatalf("decoded buffer has %d values, want %d", len(restored.Values), len(b.Values))
	}
	for k, v := range b.Values {
		if restored.Values[k] != v {
			t.Errorf("decoded buffer value %q = %q, want %q", k, restored.Values[k], v)
		}
	}
}

func TestDecodeToleratesGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", "null", `{"values":null}`} {
		b := Decode(raw)
		if b == nil || b.Values == nil {
			t.Fatalf("Decode(%q) returned unusable buffer", raw)
		}
		if len(b.Values) != 0 {
			t.Errorf("Decode(%q) returned non-empty buffer", raw)
		}
	}
}

func TestAnswersIncompleteBuffer(t *testing.T) {
	b := NewBuffer()
	if err := b.Apply(1, stepForms[0]); err != nil {
		t.Fatalf("Apply(step 1) returned error: %v", err)
	}
	if _, err := b.Answers(); err == nil {
		t.Fatal("Answers() on incomplete buffer succeeded, want error")
	}
}
