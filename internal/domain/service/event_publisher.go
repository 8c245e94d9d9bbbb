package service

import (
	"context"
)

// Report event types.
const (
	ReportEventCreated         = "report.created"
	ReportEventApprovalChanged = "report.approval_changed"
)

// ReportEvent is published whenever a report is created or its approval changes.
type ReportEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ReportID  string `json:"report_id"`
	UserID    string `json:"user_id"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Price     int    `json:"price"`
	Approved  bool   `json:"approved"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReportEvent publishes a report lifecycle event.
	PublishReportEvent(ctx context.Context, event *ReportEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
