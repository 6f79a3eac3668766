package project

import (
	"github.com/atriumhq/atrium/internal/project/repository"
	"github.com/atriumhq/atrium/internal/project/service"
	"go.uber.org/fx"
)

var Module = fx.Module("project.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
