package retriever

import "time"

// intentToQuery maps each known intent to the canned backend query phrase.
// Static configuration, not mutable state.
var intentToQuery = map[string]string{
	"events":            "event offers",
	"usage":             "usage data",
	"billing":           "billing information",
	"recommended_plans": "recommended plans",
	"current_plan":      "current plan",
	"plans":             "available plans",
	"top_hots":          "trending spots",
	"special_spots":     "secret vip spots",
	"sports_events":     "sports events",
}

// FallbackQuery covers labels the map doesn't know. The classifier is
// restricted to the mapped labels, so hitting this means a bug upstream.
const FallbackQuery = "available plans"

// NoIntentMessage guides the user when classification produced neither an
// intent nor a conversational reply.
const NoIntentMessage = "I can help you with plans, usage, events, billing, and trending spots. What would you like to know?"

// DefaultTimeout bounds each backend call. One attempt, no retry.
const DefaultTimeout = 30 * time.Second

// resultsKey is the optional sub-object the backend nests data under.
const resultsKey = "results"

// Log prefix
const (
	LogPrefixRetrieve = "internal.assistant.retriever.Retrieve"
)
