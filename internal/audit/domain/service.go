package domain

import (
	"context"
	"errors"
	"time"

	"github.com/atriumhq/atrium/internal/identity"
	"github.com/atriumhq/atrium/pkg/db/pagination"
)

type Entry struct {
	Actor      identity.Identity
	Action     string
	TargetType string
	TargetID   string
	Metadata   map[string]any
	IPAddress  string
	UserAgent  string
}

type ListAuditLogRequest struct {
	pagination.Pagination
	Action     string
	TargetType string
	ActorType  string
	StartAt    *time.Time
	EndAt      *time.Time
}

type ListAuditLogResponse struct {
	pagination.PageInfo
	AuditLogs []AuditLog `json:"audit_logs"`
}

type Service interface {
	// Record writes one audit row. Failures are logged and returned but
	// callers treat them as non-fatal; the audited operation already
	// happened.
	Record(ctx context.Context, entry Entry) error
	List(ctx context.Context, req ListAuditLogRequest) (ListAuditLogResponse, error)
}

var (
	ErrInvalidAction    = errors.New("invalid_action")
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidTimeRange = errors.New("invalid_time_range")
)
