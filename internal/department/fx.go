package department

import (
	"github.com/atriumhq/atrium/internal/department/repository"
	"github.com/atriumhq/atrium/internal/department/service"
	"go.uber.org/fx"
)

var Module = fx.Module("department.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
