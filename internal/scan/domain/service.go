package domain

import (
	"context"

	"github.com/atriumhq/atrium/internal/identity"
)

type Service interface {
	// Process recognizes and extracts an uploaded image, stores the result
	// as a pending scan and returns it for review. Nothing durable happens
	// here.
	Process(ctx context.Context, image []byte) (Review, error)

	// Confirm consumes a pending scan and writes the invoice, provisioning
	// or touching the matching client in the same transaction. A scan ID is
	// good for exactly one successful confirmation.
	Confirm(ctx context.Context, actor identity.Identity, scanID string) (ConfirmResult, error)
}
