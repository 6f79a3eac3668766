// Package seed bootstraps the first admin account for self-hosted setups.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authdomain "github.com/atriumhq/atrium/internal/auth/domain"
	"github.com/atriumhq/atrium/internal/auth/password"
	"github.com/atriumhq/atrium/internal/config"
)

// EnsureAdmin creates the bootstrap admin user when no users exist yet.
// It does nothing when ADMIN_PASSWORD is unset, so a deployment cannot
// accidentally ship a well-known credential.
func EnsureAdmin(db *gorm.DB, cfg config.Config, log *zap.Logger) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" {
		return nil
	}
	if cfg.AdminPassword == "" {
		log.Warn("bootstrap admin enabled but ADMIN_PASSWORD is unset, skipping seed")
		return nil
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authdomain.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := password.Hash(cfg.AdminPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		admin := authdomain.User{
			ID:           node.Generate(),
			Email:        email,
			DisplayName:  "Admin",
			PasswordHash: hashed,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		log.Info("bootstrap admin created", zap.String("email", email))
		return nil
	})
}
