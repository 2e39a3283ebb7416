package retriever

import (
	"net/http"
	"time"

	"telecom-assistant/internal/assistant"
	pkgLog "telecom-assistant/pkg/log"
)

// Config holds the retrieval backend endpoint configuration.
type Config struct {
	APIURL  string
	Timeout time.Duration
}

// Retriever resolves intents to backend data and merges the results.
type Retriever struct {
	l          pkgLog.Logger
	apiURL     string
	httpClient *http.Client
}

var _ assistant.Retriever = (*Retriever)(nil)

// New creates a new data Retriever.
func New(l pkgLog.Logger, cfg Config) *Retriever {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Retriever{
		l:          l,
		apiURL:     cfg.APIURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// QueryForIntent returns the query mapping for one intent, falling back to
// FallbackQuery for unknown labels.
func (r *Retriever) QueryForIntent(intent string) assistant.QueryInfo {
	return assistant.QueryInfo{
		Intent: intent,
		Query:  queryForIntent(intent),
		APIURL: r.apiURL,
	}
}

func queryForIntent(intent string) string {
	if q, ok := intentToQuery[intent]; ok {
		return q
	}
	return FallbackQuery
}
