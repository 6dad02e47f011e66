// Package primary defines the primary ports (driving interfaces) for the
// application: the use cases the CLI invokes.
package primary

import (
	"context"
	"time"

	"github.com/example/foia/internal/core/fees"
	"github.com/example/foia/internal/core/stats"
	"github.com/example/foia/internal/models"
)

// CreateRequestParams carries the fields for drafting a new request.
type CreateRequestParams struct {
	Title        string
	RecordType   string
	Agency       string
	Jurisdiction string            // state code, empty for federal/other
	Description  string
	Fields       map[string]string // template key fields
	Pages        int               // estimated volume, for the fee snapshot
	AudioMinutes float64
	SearchHours  float64
}

// CreateRequestResult returns the drafted request with its fee estimate.
type CreateRequestResult struct {
	Request  *models.Request
	Estimate fees.Estimate
}

// UpdateRequestParams carries optional edits; zero values leave fields
// untouched except where noted.
type UpdateRequestParams struct {
	ID            string
	Title         string
	Agency        string
	Description   string
	GeneratedText string
	ActualCost    *float64
	ActualPages   *int
}

// AppealParams records the outcome of a denial and the appeal filed against
// it.
type AppealParams struct {
	ID           string
	DenialReason string
	AppealDate   time.Time
	Outcome      string
}

// RequestView pairs a stored request with its derived display fields.
// DisplayStatus is the stored status, or "overdue" when the request is past
// due and not terminal; the stored status is never rewritten.
type RequestView struct {
	models.Request
	DisplayStatus string
	DaysUntilDue  int // meaningful only when DueDate is set
}

// RequestService is the primary port for the request lifecycle.
type RequestService interface {
	// Create drafts a request: generates the letter text, snapshots the fee
	// estimate, and persists the draft.
	Create(ctx context.Context, p CreateRequestParams) (*CreateRequestResult, error)

	// Get returns one request with derived display state.
	Get(ctx context.Context, id string) (*RequestView, error)

	// List returns all requests, optionally filtered by stored status, with
	// derived display state.
	List(ctx context.Context, status string) ([]*RequestView, error)

	// Update edits request fields and refreshes the update timestamp. The
	// due date is never recomputed here.
	Update(ctx context.Context, p UpdateRequestParams) error

	// Submit marks the request submitted as of the given date and computes
	// the statutory due date from the jurisdiction's response window. With
	// no recognized jurisdiction the due date is left unset.
	Submit(ctx context.Context, id string, submittedOn time.Time) (*models.Request, error)

	// SetStatus applies a caller-driven status transition. Acknowledged and
	// fulfilled stamp their dates when not already set.
	SetStatus(ctx context.Context, id, status string) error

	// AddNote appends a communication note.
	AddNote(ctx context.Context, id, channel, summary, fullText string) (*models.Note, error)

	// AddDocument appends a document reference.
	AddDocument(ctx context.Context, id, name, docType, fileRef, notes string) (*models.Document, error)

	// RecordAppeal stores denial and appeal details and marks the request
	// appealed.
	RecordAppeal(ctx context.Context, p AppealParams) error

	// Delete removes a request permanently.
	Delete(ctx context.Context, id string) error

	// Stats aggregates the whole collection.
	Stats(ctx context.Context) (stats.Stats, error)
}
