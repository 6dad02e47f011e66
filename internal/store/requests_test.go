package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/example/foia/internal/models"
)

// memBlobStore is an in-memory BlobStore for tests.
type memBlobStore struct {
	data map[string]string
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{data: make(map[string]string)}
}

func (m *memBlobStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBlobStore) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

// failingBlobStore errors on every operation.
type failingBlobStore struct{}

func (failingBlobStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failingBlobStore) Set(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleRequest() models.Request {
	cost := 65.0
	pages := 150
	return models.Request{
		ID:            "REQ-001",
		CreatedAt:     time.Date(2026, time.August, 1, 9, 30, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, time.August, 2, 10, 0, 0, 0, time.UTC),
		Status:        models.StatusSubmitted,
		Title:         "Email correspondence - Planning Dept",
		RecordType:    "emails",
		Agency:        "City Planning Department",
		Jurisdiction:  "CA",
		Description:   "All emails regarding the Elm St rezoning",
		GeneratedText: "Dear Records Officer: ...",
		SubmittedDate: datePtr(2026, time.August, 2),
		DueDate:       datePtr(2026, time.August, 12),
		EstimatedCost: &cost,
		EstimatedPages: &pages,
		Notes: []models.Note{
			{
				ID:      "n1",
				Date:    time.Date(2026, time.August, 3, 14, 0, 0, 0, time.UTC),
				Channel: models.ChannelPhone,
				Summary: "Called records office, confirmed receipt",
			},
		},
		Documents: []models.Document{
			{
				ID:   "d1",
				Date: time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC),
				Name: "request-letter.txt",
				Type: models.DocTypeRequest,
			},
		},
	}
}

func TestLoadEmpty(t *testing.T) {
	s := NewRequests(newMemBlobStore())

	if got := s.Load(context.Background()); len(got) != 0 {
		t.Errorf("Load() on empty store returned %d records, want 0", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewRequests(newMemBlobStore())
	ctx := context.Background()

	want := []models.Request{sampleRequest()}
	s.Save(ctx, want)
	got := s.Load(ctx)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}
}

func TestLoadReconstructsDates(t *testing.T) {
	s := NewRequests(newMemBlobStore())
	ctx := context.Background()

	s.Save(ctx, []models.Request{sampleRequest()})
	got := s.Load(ctx)

	if len(got) != 1 {
		t.Fatalf("Load() returned %d records, want 1", len(got))
	}
	r := got[0]
	if r.SubmittedDate == nil || !r.SubmittedDate.Equal(time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("SubmittedDate = %v, want 2026-08-02", r.SubmittedDate)
	}
	if r.FulfilledDate != nil {
		t.Errorf("FulfilledDate = %v, want nil", r.FulfilledDate)
	}
	if len(r.Notes) != 1 || r.Notes[0].Date.IsZero() {
		t.Errorf("note date not reconstructed: %+v", r.Notes)
	}
	if len(r.Documents) != 1 || r.Documents[0].Date.IsZero() {
		t.Errorf("document date not reconstructed: %+v", r.Documents)
	}
}

func TestLoadCorruptBlobFailsSoft(t *testing.T) {
	blobs := newMemBlobStore()
	blobs.data[StorageKey] = "{not json"
	s := NewRequests(blobs)

	if got := s.Load(context.Background()); got != nil {
		t.Errorf("Load() on corrupt blob = %v, want nil", got)
	}
}

func TestLoadStoreErrorFailsSoft(t *testing.T) {
	s := NewRequests(failingBlobStore{})

	if got := s.Load(context.Background()); got != nil {
		t.Errorf("Load() on failing store = %v, want nil", got)
	}
}

func TestSaveStoreErrorFailsSoft(t *testing.T) {
	s := NewRequests(failingBlobStore{})

	// Must not panic or surface the error.
	s.Save(context.Background(), []models.Request{sampleRequest()})
}

func TestDeleteByID(t *testing.T) {
	s := NewRequests(newMemBlobStore())
	ctx := context.Background()

	first := sampleRequest()
	second := sampleRequest()
	second.ID = "REQ-002"
	s.Save(ctx, []models.Request{first, second})

	s.DeleteByID(ctx, "REQ-001")

	got := s.Load(ctx)
	if len(got) != 1 {
		t.Fatalf("after delete, %d records remain, want 1", len(got))
	}
	if got[0].ID != "REQ-002" {
		t.Errorf("remaining record = %s, want REQ-002", got[0].ID)
	}
}

func TestDeleteByIDMissingIsNoop(t *testing.T) {
	s := NewRequests(newMemBlobStore())
	ctx := context.Background()

	s.Save(ctx, []models.Request{sampleRequest()})
	s.DeleteByID(ctx, "REQ-999")

	if got := s.Load(ctx); len(got) != 1 {
		t.Errorf("after deleting missing id, %d records remain, want 1", len(got))
	}
}
