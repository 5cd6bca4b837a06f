package preview

import "go.uber.org/fx"

var Module = fx.Module("preview",
	fx.Provide(NewRenderer),
)
