package migration

import (
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auditdomain "github.com/atriumhq/atrium/internal/audit/domain"
	authdomain "github.com/atriumhq/atrium/internal/auth/domain"
	clientdomain "github.com/atriumhq/atrium/internal/client/domain"
	"github.com/atriumhq/atrium/internal/config"
	departmentdomain "github.com/atriumhq/atrium/internal/department/domain"
	employeedomain "github.com/atriumhq/atrium/internal/employee/domain"
	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	projectdomain "github.com/atriumhq/atrium/internal/project/domain"
	"github.com/atriumhq/atrium/internal/seed"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		if strings.EqualFold(cfg.DBType, "postgres") {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite is the zero-config local mode; AutoMigrate keeps it
			// schema-current without a second migration set.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&employeedomain.Employee{},
				&departmentdomain.Department{},
				&projectdomain.Project{},
				&clientdomain.Client{},
				&invoicedomain.Invoice{},
				&auditdomain.AuditLog{},
			); err != nil {
				return err
			}
		}

		if cfg.BootstrapAdmin {
			return seed.EnsureAdmin(conn, cfg, log)
		}
		return nil
	}),
)
