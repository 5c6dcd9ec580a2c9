package config

import (
	"github.com/pairdraw/pairdraw/pairdraw"
)

const (
	// RecentRequestLimit caps the consent-request list in status
	// responses, newest first.
	RecentRequestLimit = 50

	// DrawLogLimit caps the audit-trail listing.
	DrawLogLimit = 100

	defaultRateLimit = 120
)

// WebAppConfig carries the HTTP-layer settings derived from the root
// config file.
type WebAppConfig struct {
	Addr           string
	AllowedOrigins []string
	RateLimit      int
	Debug          bool
}

func NewWebAppConfig(cfg *pairdraw.Config, debug bool) *WebAppConfig {
	rateLimit := cfg.Server.RateLimit
	if rateLimit <= 0 {
		rateLimit = defaultRateLimit
	}
	return &WebAppConfig{
		Addr:           cfg.Server.Addr(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      rateLimit,
		Debug:          debug,
	}
}
