package audit

import (
	"go.uber.org/fx"

	"github.com/atriumhq/atrium/internal/audit/repository"
	"github.com/atriumhq/atrium/internal/audit/service"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
