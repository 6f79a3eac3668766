package scan

import (
	"go.uber.org/fx"

	"github.com/atriumhq/atrium/internal/scan/recognize"
	"github.com/atriumhq/atrium/internal/scan/service"
)

var Module = fx.Module("scan.service",
	recognize.Module,
	fx.Provide(service.New),
)
