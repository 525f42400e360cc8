package heap

import (
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/joshuapare/diffuzz/internal/logger"
)

// Startup is the load-time hook: it enables logging if LIBDIFFUZZ_LOG asks for
// it, resolves the configuration from lookup and installs the process-wide
// heap. A malformed padding value is logged and replaced by zero.
func Startup(lookup config.LookupFunc) Heap {
	logger.Init(logger.OptionsFromEnv(lookup))

	cfg, err := config.FromEnv(lookup)
	if err != nil {
		logger.Warn("ignoring malformed configuration", "err", err)
	}
	return Init(cfg)
}
