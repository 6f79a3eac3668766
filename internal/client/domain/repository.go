package domain

import (
	"context"
	"time"

	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository methods take the database handle so callers can compose them
// inside a transaction.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Client, error)
	FindByNameFold(ctx context.Context, db *gorm.DB, name string) (*Client, error)
	List(ctx context.Context, db *gorm.DB, filter ListClientFilter, page pagination.Pagination) ([]*Client, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	TouchLastInvoice(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type ListClientFilter struct {
	Name    string
	Company string
}
