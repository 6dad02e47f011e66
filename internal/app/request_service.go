// Package app implements the primary ports over the store and the pure core
// packages. Services validate input, apply lifecycle rules, and delegate
// rendering and arithmetic to core packages.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/foia/internal/core/deadline"
	"github.com/example/foia/internal/core/fees"
	"github.com/example/foia/internal/core/stats"
	"github.com/example/foia/internal/letter"
	"github.com/example/foia/internal/models"
	"github.com/example/foia/internal/ports/primary"
	"github.com/example/foia/internal/refdata"
	"github.com/example/foia/internal/store"
)

// RequestServiceImpl implements primary.RequestService.
type RequestServiceImpl struct {
	store  *store.Requests
	sender letter.Sender
}

// NewRequestService creates a request service. The sender profile fills
// letterheads in generated correspondence.
func NewRequestService(s *store.Requests, sender letter.Sender) *RequestServiceImpl {
	return &RequestServiceImpl{store: s, sender: sender}
}

// Create drafts a request: renders the letter, snapshots the fee estimate,
// and persists the draft.
func (s *RequestServiceImpl) Create(ctx context.Context, p primary.CreateRequestParams) (*primary.CreateRequestResult, error) {
	tmpl, ok := letter.Lookup(p.RecordType)
	if !ok {
		return nil, fmt.Errorf("unknown record type: %s", p.RecordType)
	}
	if p.Jurisdiction != "" && !refdata.Valid(p.Jurisdiction) {
		return nil, fmt.Errorf("unknown jurisdiction: %s", p.Jurisdiction)
	}

	now := time.Now()
	estimate := fees.Compute(p.Jurisdiction, p.RecordType, p.Pages, p.AudioMinutes, p.SearchHours)

	title := p.Title
	if title == "" {
		title = fmt.Sprintf("%s - %s", tmpl.Name, p.Agency)
	}
	description := p.Description
	if description == "" {
		if d := p.Fields["description"]; d != "" {
			description = d
		} else {
			description = tmpl.Description
		}
	}

	generated := letter.Compose(letter.ComposeParams{
		Template:       tmpl,
		Fields:         p.Fields,
		Agency:         p.Agency,
		Jurisdiction:   p.Jurisdiction,
		EstimatedTotal: estimate.Total,
		Sender:         s.sender,
		Now:            now,
	})

	requests := s.store.Load(ctx)
	estimatedCost := estimate.Total

	req := models.Request{
		ID:            nextRequestID(requests),
		CreatedAt:     now,
		UpdatedAt:     now,
		Status:        models.StatusDraft,
		Title:         title,
		RecordType:    p.RecordType,
		Agency:        p.Agency,
		Jurisdiction:  p.Jurisdiction,
		Description:   description,
		GeneratedText: generated,
		EstimatedCost: &estimatedCost,
		Notes:         []models.Note{},
		Documents:     []models.Document{},
	}
	if p.Pages > 0 {
		pages := p.Pages
		req.EstimatedPages = &pages
	}

	s.store.Save(ctx, append(requests, req))

	return &primary.CreateRequestResult{Request: &req, Estimate: estimate}, nil
}

// Get returns one request with derived display state.
func (s *RequestServiceImpl) Get(ctx context.Context, id string) (*primary.RequestView, error) {
	requests := s.store.Load(ctx)
	for i := range requests {
		if requests[i].ID == id {
			view := buildView(&requests[i], time.Now())
			return view, nil
		}
	}
	return nil, fmt.Errorf("request %s not found", id)
}

// List returns all requests with derived display state, oldest first.
// A non-empty status filters on the stored status.
func (s *RequestServiceImpl) List(ctx context.Context, status string) ([]*primary.RequestView, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	requests := s.store.Load(ctx)
	now := time.Now()

	views := make([]*primary.RequestView, 0, len(requests))
	for i := range requests {
		if status != "" && requests[i].Status != status {
			continue
		}
		views = append(views, buildView(&requests[i], now))
	}
	return views, nil
}

// Update edits request fields. Empty strings leave string fields untouched;
// nil pointers leave cost fields untouched. The due date is never recomputed.
func (s *RequestServiceImpl) Update(ctx context.Context, p primary.UpdateRequestParams) error {
	return s.mutate(ctx, p.ID, func(req *models.Request) error {
		if p.Title != "" {
			req.Title = p.Title
		}
		if p.Agency != "" {
			req.Agency = p.Agency
		}
		if p.Description != "" {
			req.Description = p.Description
		}
		if p.GeneratedText != "" {
			req.GeneratedText = p.GeneratedText
		}
		if p.ActualCost != nil {
			req.ActualCost = p.ActualCost
		}
		if p.ActualPages != nil {
			req.ActualPages = p.ActualPages
		}
		return nil
	})
}

// Submit marks the request submitted and computes the statutory due date.
// A request can be submitted only once.
func (s *RequestServiceImpl) Submit(ctx context.Context, id string, submittedOn time.Time) (*models.Request, error) {
	var submitted models.Request
	err := s.mutate(ctx, id, func(req *models.Request) error {
		if req.SubmittedDate != nil {
			return fmt.Errorf("request %s already submitted on %s", id, req.SubmittedDate.Format("2006-01-02"))
		}

		sub := submittedOn
		req.SubmittedDate = &sub
		req.Status = models.StatusSubmitted
		if due, ok := deadline.DueDate(req.Jurisdiction, submittedOn); ok {
			req.DueDate = &due
		}
		submitted = *req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &submitted, nil
}

// SetStatus applies a caller-driven status transition. Acknowledged and
// fulfilled stamp their dates on first transition.
func (s *RequestServiceImpl) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}

	return s.mutate(ctx, id, func(req *models.Request) error {
		now := time.Now()
		if status == models.StatusAcknowledged && req.AcknowledgedDate == nil {
			req.AcknowledgedDate = &now
		}
		if status == models.StatusFulfilled && req.FulfilledDate == nil {
			req.FulfilledDate = &now
		}
		req.Status = status
		return nil
	})
}

// AddNote appends a communication note.
func (s *RequestServiceImpl) AddNote(ctx context.Context, id, channel, summary, fullText string) (*models.Note, error) {
	if !models.ValidChannel(channel) {
		return nil, fmt.Errorf("invalid note channel: %s", channel)
	}

	note := models.Note{
		ID:       uuid.New().String(),
		Date:     time.Now(),
		Channel:  channel,
		Summary:  summary,
		FullText: fullText,
	}

	err := s.mutate(ctx, id, func(req *models.Request) error {
		req.Notes = append(req.Notes, note)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// AddDocument appends a document reference.
func (s *RequestServiceImpl) AddDocument(ctx context.Context, id, name, docType, fileRef, notes string) (*models.Document, error) {
	if !models.ValidDocType(docType) {
		return nil, fmt.Errorf("invalid document type: %s", docType)
	}
	if name == "" {
		return nil, fmt.Errorf("document name is required")
	}

	doc := models.Document{
		ID:      uuid.New().String(),
		Date:    time.Now(),
		Name:    name,
		Type:    docType,
		FileRef: fileRef,
		Notes:   notes,
	}

	err := s.mutate(ctx, id, func(req *models.Request) error {
		req.Documents = append(req.Documents, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// RecordAppeal stores denial and appeal details and marks the request
// appealed.
func (s *RequestServiceImpl) RecordAppeal(ctx context.Context, p primary.AppealParams) error {
	return s.mutate(ctx, p.ID, func(req *models.Request) error {
		if p.DenialReason != "" {
			req.DenialReason = p.DenialReason
		}
		appealDate := p.AppealDate
		req.AppealDate = &appealDate
		if p.Outcome != "" {
			req.AppealOutcome = p.Outcome
		}
		req.Status = models.StatusAppealed
		return nil
	})
}

// Delete removes a request permanently.
func (s *RequestServiceImpl) Delete(ctx context.Context, id string) error {
	requests := s.store.Load(ctx)
	for i := range requests {
		if requests[i].ID == id {
			s.store.DeleteByID(ctx, id)
			return nil
		}
	}
	return fmt.Errorf("request %s not found", id)
}

// Stats aggregates the whole collection.
func (s *RequestServiceImpl) Stats(ctx context.Context) (stats.Stats, error) {
	return stats.Compute(s.store.Load(ctx), time.Now()), nil
}

// mutate loads the collection, applies fn to the matching request, refreshes
// its update timestamp, and saves. fn errors abort without saving.
func (s *RequestServiceImpl) mutate(ctx context.Context, id string, fn func(*models.Request) error) error {
	requests := s.store.Load(ctx)
	for i := range requests {
		if requests[i].ID != id {
			continue
		}
		if err := fn(&requests[i]); err != nil {
			return err
		}
		requests[i].UpdatedAt = time.Now()
		s.store.Save(ctx, requests)
		return nil
	}
	return fmt.Errorf("request %s not found", id)
}

func buildView(req *models.Request, now time.Time) *primary.RequestView {
	view := &primary.RequestView{
		Request:       *req,
		DisplayStatus: req.Status,
	}
	if deadline.IsOverdue(req, now) {
		view.DisplayStatus = models.StatusOverdue
	}
	if req.DueDate != nil {
		view.DaysUntilDue = deadline.DaysUntil(*req.DueDate, now)
	}
	return view
}

// nextRequestID allocates the next sequential id (REQ-001, REQ-002, ...).
func nextRequestID(requests []models.Request) string {
	max := 0
	for _, r := range requests {
		var n int
		if _, err := fmt.Sscanf(r.ID, "REQ-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("REQ-%03d", max+1)
}

var _ primary.RequestService = (*RequestServiceImpl)(nil)
