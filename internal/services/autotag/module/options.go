package module

import (
	"time"

	"meanin/internal/platform/config"
	"meanin/internal/services/autotag/service"
)

// Options controls the auto-tagger; flags override them
type Options struct {
	Limit int
	Every time.Duration
}

// FromConfig reads options using the AUTOTAG_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("AUTOTAG_")
	return Options{
		Limit: c.MayInt("LIMIT", service.DefaultLimit),
		Every: c.MayDuration("EVERY", 0),
	}
}
