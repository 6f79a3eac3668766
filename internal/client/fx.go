package client

import (
	"github.com/atriumhq/atrium/internal/client/repository"
	"github.com/atriumhq/atrium/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
