package design

import (
	"net/http"
	"time"

	"telecom-assistant/internal/assistant"
	pkgLog "telecom-assistant/pkg/log"
)

// Config holds the design backend endpoint configuration.
type Config struct {
	APIURL  string
	Timeout time.Duration
}

// Design is the single-call passthrough to the external design service.
type Design struct {
	l          pkgLog.Logger
	apiURL     string
	httpClient *http.Client
}

var _ assistant.Designer = (*Design)(nil)

// New creates a new design facade.
func New(l pkgLog.Logger, cfg Config) *Design {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Design{
		l:          l,
		apiURL:     cfg.APIURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}
