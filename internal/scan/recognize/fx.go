package recognize

import "go.uber.org/fx"

var Module = fx.Module("scan.recognize",
	fx.Provide(
		fx.Annotate(NewTesseract, fx.As(new(Recognizer))),
	),
)
