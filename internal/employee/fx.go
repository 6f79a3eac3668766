package employee

import (
	"github.com/atriumhq/atrium/internal/employee/repository"
	"github.com/atriumhq/atrium/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
