package models

import "testing"

func TestLoadQuestionnaire(t *testing.T) {
	q, err := LoadQuestionnaire("../../config/questions.yaml")
	if err != nil {
		t.Fatalf("LoadQuestionnaire returned error: %v", err)
	}
	if len(q.Steps) != 4 {
		t.Fatalf("questionnaire has %d steps, want 4", len(q.Steps))
	}

	total := 0
	for _, step := range q.Steps {
		total += len(step.Fields)
	}
	if total != 13 {
		t.Fatalf("questionnaire defines %d fields, want 13", total)
	}

	if _, ok := q.StepAt(1); !ok {
		t.Error("StepAt(1) reported missing step")
	}
	if _, ok := q.StepAt(5); ok {
		t.Error("StepAt(5) reported a step beyond the last")
	}
}

func TestLoadQuestionnaireRejectsUnknownOption(t *testing.T) {
	if _, err := LoadQuestionnaire("testdata/bad_option.yaml"); err == nil {
		t.Fatal("definition offering an unscorable value loaded without error")
	}
}

func TestLoadQuestionnaireMissingFile(t *testing.T) {
	if _, err := LoadQuestionnaire("testdata/does_not_exist.yaml"); err == nil {
		t.Fatal("missing file loaded without error")
	}
}
