package risk

import (
	"bytes"
	"encoding/json"
	"testing"
)

// The answers payload is stored as JSON text and read back for result
// views; the stored bytes must survive a decode/encode cycle unchanged.
func TestAnswersPayloadRoundTrip(t *testing.T) {
	a := baseline()
	a.Age = 55
	a.Lump = Yes
	a.FamilyHistory = HistoryMultiple

	stored, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Answers
	if err := json.Unmarshal(stored, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored != a {
		t.Fatalf("round-trip changed answers: %+v != %+v", restored, a)
	}

	again, err := json.Marshal(restored)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(stored, again) {
		t.Fatalf("payload not byte-identical after round-trip:\n%s\n%s", stored, again)
	}
}
