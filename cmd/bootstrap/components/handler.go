package components

import (
	"countdown-timer/internal/handler"
	"countdown-timer/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTimerHandler,
		api.NewSuggestionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
