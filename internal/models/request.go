package models

import "time"

// Request statuses. Overdue is intentionally absent: it is a derived display
// state computed from the due date at read time and is never persisted.
const (
	StatusDraft        = "draft"
	StatusSubmitted    = "submitted"
	StatusAcknowledged = "acknowledged"
	StatusInProgress   = "in-progress"
	StatusFulfilled    = "fulfilled"
	StatusPartial      = "partial"
	StatusDenied       = "denied"
	StatusAppealed     = "appealed"
)

// StatusOverdue is the derived display state. Accepted on input for
// tolerance when reading old data, never written by the service.
const StatusOverdue = "overdue"

// Note channels
const (
	ChannelEmail    = "email"
	ChannelPhone    = "phone"
	ChannelLetter   = "letter"
	ChannelInPerson = "in-person"
	ChannelOther    = "other"
)

// Document types
const (
	DocTypeRequest        = "request"
	DocTypeAcknowledgment = "acknowledgment"
	DocTypeResponse       = "response"
	DocTypeAppeal         = "appeal"
	DocTypeOther          = "other"
)

// Request is the unit of tracking state for a single public records request.
// Date fields are pointers so that unset dates serialize as null and
// round-trip through the blob store unchanged.
type Request struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Status    string    `json:"status"`

	// Request details
	Title         string `json:"title"`
	RecordType    string `json:"recordType"`
	Agency        string `json:"agency"`
	Jurisdiction  string `json:"state"` // state code; empty means federal/other
	Description   string `json:"description"`
	GeneratedText string `json:"generatedText"`

	// Tracking information
	SubmittedDate    *time.Time `json:"submittedDate,omitempty"`
	AcknowledgedDate *time.Time `json:"acknowledgedDate,omitempty"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	FulfilledDate    *time.Time `json:"fulfilledDate,omitempty"`

	// Cost tracking. Estimates are set at creation/edit time and are never
	// reconciled with actuals.
	EstimatedCost  *float64 `json:"estimatedCost,omitempty"`
	ActualCost     *float64 `json:"actualCost,omitempty"`
	EstimatedPages *int     `json:"estimatedPages,omitempty"`
	ActualPages    *int     `json:"actualPages,omitempty"`

	// Communications, append-only in insertion order.
	Notes     []Note     `json:"notes"`
	Documents []Document `json:"documents"`

	// Appeal information
	DenialReason  string     `json:"denialReason,omitempty"`
	AppealDate    *time.Time `json:"appealDate,omitempty"`
	AppealOutcome string     `json:"appealOutcome,omitempty"`
}

// Note records a single contact with the agency.
type Note struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Channel  string    `json:"type"`
	Summary  string    `json:"summary"`
	FullText string    `json:"fullText,omitempty"`
}

// Document records a file exchanged during the request lifecycle.
type Document struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	FileRef string    `json:"fileUrl,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

// ValidStatus reports whether s is a persistable request status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusAcknowledged, StatusInProgress,
		StatusFulfilled, StatusPartial, StatusDenied, StatusAppealed:
		return true
	}
	return false
}

// IsTerminal reports whether a status ends overdue tracking. Fulfilled and
// denied requests are never displayed as overdue regardless of due date.
func IsTerminal(status string) bool {
	return status == StatusFulfilled || status == StatusDenied
}

// ValidChannel reports whether c is a recognized note channel.
func ValidChannel(c string) bool {
	switch c {
	case ChannelEmail, ChannelPhone, ChannelLetter, ChannelInPerson, ChannelOther:
		return true
	}
	return false
}

// ValidDocType reports whether t is a recognized document type.
func ValidDocType(t string) bool {
	switch t {
	case DocTypeRequest, DocTypeAcknowledgment, DocTypeResponse, DocTypeAppeal, DocTypeOther:
		return true
	}
	return false
}
