package store

import (
	"io"
	"path/filepath"
	"testing"

	"adc/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})

	s, err := Open(filepath.Join(t.TempDir(), "decisions.db"), logger)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestRecordAndGet(t *testing.T) {
	s := newTestStore(t)

	recorded, err := s.Record(RecordInput{
		Title:          "Adopt event sourcing",
		Context:        "Adopted event-sourcing pattern(s)",
		Rationale:      "Pattern detected across 12 files",
		Confidence:     0.85,
		Reasons:        []string{"Affects 12 files", "Introduces 1 pattern changes"},
		Recommendation: "record",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if recorded.ID == "" {
		t.Error("expected generated ID")
	}
	if recorded.Status != "proposed" {
		t.Errorf("status = %q, want default proposed", recorded.Status)
	}

	fetched, err := s.Get(recorded.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if fetched.Title != "Adopt event sourcing" {
		t.Errorf("title = %q", fetched.Title)
	}
	if fetched.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", fetched.Confidence)
	}
	if len(fetched.Reasons) != 2 {
		t.Errorf("reasons = %v, want 2 entries", fetched.Reasons)
	}
	if fetched.CreatedAt.IsZero() {
		t.Error("createdAt not persisted")
	}
}

func TestRecordDefaultsTitleToContext(t *testing.T) {
	s := newTestStore(t)

	recorded, err := s.Record(RecordInput{
		Context:        "Breaking change introduced",
		Rationale:      "4 dependent files are affected by the contract change",
		Confidence:     0.4,
		Reasons:        []string{"Contains breaking changes"},
		Recommendation: "record",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if recorded.Title != "Breaking change introduced" {
		t.Errorf("title = %q, want context fallback", recorded.Title)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Get("no-such-id"); err == nil {
		t.Error("expected error for unknown decision ID")
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)

	seed := []RecordInput{
		{Title: "Adopt CQRS", Context: "ctx", Rationale: "r", Recommendation: "record", Status: "accepted"},
		{Title: "Split billing module", Context: "ctx", Rationale: "r", Recommendation: "record"},
		{Title: "Adopt message queues", Context: "ctx", Rationale: "r", Recommendation: "record"},
	}
	for _, input := range seed {
		if _, err := s.Record(input); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	all, err := s.List(ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered list = %d decisions, want 3", len(all))
	}

	accepted, err := s.List(ListOptions{Status: "accepted"})
	if err != nil {
		t.Fatalf("List(status) error = %v", err)
	}
	if len(accepted) != 1 || accepted[0].Title != "Adopt CQRS" {
		t.Errorf("status filter returned %v", accepted)
	}

	adopted, err := s.List(ListOptions{Search: "Adopt"})
	if err != nil {
		t.Fatalf("List(search) error = %v", err)
	}
	if len(adopted) != 2 {
		t.Errorf("search filter = %d decisions, want 2", len(adopted))
	}

	limited, err := s.List(ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("List(limit) error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited list = %d decisions, want 1", len(limited))
	}
}
