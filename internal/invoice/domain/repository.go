package domain

import (
	"context"

	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository methods take the database handle so intake can write invoices
// and clients inside one transaction.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID, page pagination.Pagination) ([]*Invoice, error)
	Recent(ctx context.Context, db *gorm.DB, userID snowflake.ID, limit int) ([]*Invoice, error)
	Amounts(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]string, error)
	Count(ctx context.Context, db *gorm.DB, userID snowflake.ID) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error
}
