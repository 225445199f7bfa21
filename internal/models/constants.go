package models

// DefaultBaseURL is the production assistant service endpoint.
const DefaultBaseURL = "https://api.loadmovegh.com/api/v1"

// API paths, relative to the base URL. Session-scoped paths take the
// session ID via fmt.Sprintf.
const (
	PathSessions        = "/assistant/sessions"
	PathSessionByID     = "/assistant/sessions/%s"
	PathSessionMessages = "/assistant/sessions/%s/messages"
	PathQuickAction     = "/assistant/quick"
	PathSuggestions     = "/assistant/suggestions"
)

// Tool names the assistant is known to call. The interpreter has a typed
// shape for each of these; anything else falls back to a generic rendering.
const (
	ToolSuggestBestLoads   = "suggest_best_loads"
	ToolRecommendPricing   = "recommend_pricing"
	ToolShowProfitForecast = "show_profit_forecast"
	ToolOptimizeRoute      = "optimize_route"
	ToolPlatformQuestion   = "answer_platform_question"
)

// Quick action keys accepted by the quick endpoint. The service maps these
// to tool names; the client passes them through unchanged.
const (
	ActionSuggestLoads   = "suggest_loads"
	ActionRecommendPrice = "recommend_price"
	ActionProfitForecast = "profit_forecast"
	ActionOptimizeRoute  = "optimize_route"
	ActionPlatformHelp   = "platform_help"
)

// QuickActions returns the valid quick action keys.
func QuickActions() []string {
	return []string{
		ActionSuggestLoads,
		ActionRecommendPrice,
		ActionProfitForecast,
		ActionOptimizeRoute,
		ActionPlatformHelp,
	}
}

// DefaultHeaders returns the headers sent on every assistant request.
// Authorization is added per request by the client.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":    "application/json",
		"Accept":          "application/json",
		"Accept-Language": "en-US,en;q=0.9",
		"User-Agent":      "loadmove-assistant-go/1.0",
	}
}
