package jobstore

import (
	"encoding/json"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatalf("migrate store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetJob(t *testing.T) {
	s := newTestStore(t)

	filter := json.RawMessage(`{"logic":"and","conditions":[]}`)
	id, err := s.CreateJob(filter, 0, 1000, 10, "1.6")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty job id")
	}

	job, err := s.GetJob(id)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if job.State != "ready" {
		t.Errorf("expected initial state ready, got %q", job.State)
	}
	if job.SeedLo != 0 || job.SeedHi != 1000 {
		t.Errorf("seed range mismatch: got [%d,%d]", job.SeedLo, job.SeedHi)
	}
	if string(job.FilterJSON) != string(filter) {
		t.Errorf("filter json mismatch: got %s", job.FilterJSON)
	}
}

func TestAppendMatchAndListMatches(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateJob(json.RawMessage(`{}`), 0, 100, 0, "1.6")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	for _, seed := range []int32{5, 12, 99} {
		if err := s.AppendMatch(id, seed); err != nil {
			t.Fatalf("append match %d: %v", seed, err)
		}
	}

	matches, err := s.ListMatches(id)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	want := []int32{5, 12, 99}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i, seed := range want {
		if matches[i] != seed {
			t.Errorf("match[%d] = %d, want %d", i, matches[i], seed)
		}
	}
}

func TestCompleteMarksStateAndCounters(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateJob(json.RawMessage(`{}`), 0, 100, 0, "1.6")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if err := s.Complete(id, "exhausted", 101, 3); err != nil {
		t.Fatalf("complete: %v", err)
	}

	job, err := s.GetJob(id)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if job.State != "exhausted" {
		t.Errorf("expected exhausted, got %q", job.State)
	}
	if job.Checked != 101 || job.Found != 3 {
		t.Errorf("expected checked=101 found=3, got checked=%d found=%d", job.Checked, job.Found)
	}
}

func TestGetJobUnknownIDErrors(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetJob("does-not-exist"); err == nil {
		t.Fatal("expected an error for an unknown job id")
	}
}
