package search

import "testing"

func TestParseFilterRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseFilter([]byte("{not json")); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}
}

func TestParseFilterRejectsUnknownConditionType(t *testing.T) {
	doc := `{"logic":"condition","type":"bogus"}`
	if _, err := ParseFilter([]byte(doc)); err == nil {
		t.Fatal("expected parse error for unknown condition type")
	}
}

func TestParseFilterRejectsMissingDayRange(t *testing.T) {
	doc := `{"logic":"condition","type":"daily_luck","min_luck":0,"max_luck":0.1}`
	if _, err := ParseFilter([]byte(doc)); err == nil {
		t.Fatal("expected parse error for missing day_start/day_end")
	}
}

func TestParseFilterAcceptsValidNightEventCondition(t *testing.T) {
	doc := `{"logic":"and","conditions":[{"logic":"condition","type":"night_event","day_start":29,"day_end":29,"event_type":"earthquake"}]}`
	root, err := ParseFilter([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Logic != LogicAnd || len(root.Conditions) != 1 {
		t.Fatalf("unexpected parsed shape: %+v", root)
	}
}
