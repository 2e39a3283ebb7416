package http

// intentDescriptions is the fixed help text returned by the intents
// endpoint, one line per supported label.
var intentDescriptions = []string{
	"events: Entertainment and event offers",
	"usage: Data usage information",
	"billing: Billing information and payment history",
	"recommended_plans: Personalized plan recommendations",
	"current_plan: Current plan details",
	"plans: Available plans and pricing",
	"top_hots: Trending spots and popular locations",
	"special_spots: Special VIP locations",
	"sports_events: Sports events and games",
}

const memoryDescription = "Short-term memory preserves last 5 chat interactions from query, data retrieval, and design agents"

// msgDesignSuccess is the envelope message for successful design lookups.
const msgDesignSuccess = "Design API call successful"

// Log prefixes
const (
	LogPrefixClassify = "internal.assistant.delivery.http.ClassifyIntent"
	LogPrefixDesign   = "internal.assistant.delivery.http.Design"
)
