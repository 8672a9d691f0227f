package kit

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the production zap logger shared by every PriceDesk
// service. Each entry carries the service name, plus the build version
// when SERVICE_VERSION is set.
func NewLogger(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}
	if v := os.Getenv("SERVICE_VERSION"); v != "" {
		cfg.InitialFields["version"] = v
	}
	l, _ := cfg.Build()
	return l
}
