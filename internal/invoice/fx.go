package invoice

import (
	"github.com/atriumhq/atrium/internal/invoice/repository"
	"github.com/atriumhq/atrium/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
