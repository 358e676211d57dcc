package app

import (
	"log/slog"

	"bmiguide.healthguide.org/internal/appconf"
	"bmiguide.healthguide.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}
