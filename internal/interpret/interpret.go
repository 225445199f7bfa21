// Package interpret turns opaque tool call results into typed, renderable
// values. The service owns the result schema, so interpretation is strictly
// best-effort: missing fields degrade to placeholders, unknown tools fall
// back to a generic rendering, and nothing here ever returns an error.
package interpret

import (
	"github.com/tidwall/gjson"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// Placeholder stands in for display fields the service did not populate.
const Placeholder = "—"

// Kind discriminates the DisplayResult union.
type Kind string

// Result kinds, one per known tool plus the generic fallback.
const (
	KindLoadSuggestions Kind = "load_suggestions"
	KindPricing         Kind = "pricing"
	KindProfitForecast  Kind = "profit_forecast"
	KindRoute           Kind = "route"
	KindPlatformAnswer  Kind = "platform_answer"
	KindGeneric         Kind = "generic"
)

// DisplayResult is the render-ready interpretation of one ToolCall.
// Exactly one variant pointer is non-nil, matching Kind.
type DisplayResult struct {
	Kind     Kind
	ToolName string

	LoadSuggestions *LoadSuggestions
	Pricing         *PricingRecommendation
	ProfitForecast  *ProfitForecast
	Route           *RouteInfo
	PlatformAnswer  *PlatformAnswer
	Generic         *GenericResult
}

// Title returns a short heading for the result card.
func (r DisplayResult) Title() string {
	switch r.Kind {
	case KindLoadSuggestions:
		return "Suggested loads"
	case KindPricing:
		return "Pricing recommendation"
	case KindProfitForecast:
		return "Profit forecast"
	case KindRoute:
		return "Route"
	case KindPlatformAnswer:
		return "Platform help"
	default:
		if r.ToolName != "" {
			return r.ToolName
		}
		return "Tool result"
	}
}

// LoadSuggestion is one entry from the load board matcher.
type LoadSuggestion struct {
	ListingID        string
	Title            string
	Route            string
	DistanceKM       float64
	PickupDistanceKM float64
	CargoType        string
	VehicleType      string
	WeightKG         float64
	Budget           string
	Urgency          string
	MatchScore       float64
	PickupDate       string
	BidCount         int
}

// LoadSuggestions is the typed shape of suggest_best_loads.
type LoadSuggestions struct {
	LoadsFound     int
	TotalAvailable int
	Loads          []LoadSuggestion
}

// Field is one labeled line in a breakdown section, in service order.
type Field struct {
	Key   string
	Value string
}

// CourierShare is the courier-side economics of a price recommendation.
type CourierShare struct {
	PlatformCommission string
	CommissionAmount   string
	NetEarnings        string
}

// PricingRecommendation is the typed shape of recommend_pricing.
type PricingRecommendation struct {
	RecommendedPrice string
	PriceMin         string
	PriceMax         string
	Breakdown        []Field
	ForCourier       *CourierShare
	Route            string
	Advice           string
}

// ProfitForecast is the typed shape of show_profit_forecast. When the
// service has too little history it returns only ForecastDays, Message and
// WalletBalance; HasForecast is false in that case.
type ProfitForecast struct {
	ForecastDays     int
	HasForecast      bool
	TripsLast90Days  int
	TotalRevenue     string
	AvgPerTrip       string
	TripsPerDay      float64
	ProjectedRevenue string
	FuelCosts        string
	Commission       string
	NetProfit        string
	ProjectedTrips   int
	WalletBalance    string
	Tips             []string
	Message          string
}

// RouteInfo is the typed shape of optimize_route. The service emits three
// variants: a known corridor, a haversine estimate, and an error shape;
// all three land here.
type RouteInfo struct {
	Route         string
	DistanceKM    string
	EstimatedTime string
	RoadType      string
	RoadCondition string
	FuelStops     []string
	WeighBridges  []string
	FuelCost      string
	Tips          string
	VehicleAdvice string
	ErrorNote     string
	Suggestion    string
}

// PlatformAnswer is the typed shape of answer_platform_question.
type PlatformAnswer struct {
	Topic         string
	Answer        string
	Question      string
	RelatedTopics []string
}

// GenericResult is the fallback for unrecognized tools: the raw result
// mapping, pretty-printed for display.
type GenericResult struct {
	Pretty string
}

// Interpret maps a tool call to its render-ready shape. Total: any input,
// including garbage result bytes, yields a usable DisplayResult.
func Interpret(tc models.ToolCall) DisplayResult {
	result := gjson.ParseBytes(tc.Result)

	switch tc.ToolName {
	case models.ToolSuggestBestLoads:
		return DisplayResult{
			Kind:            KindLoadSuggestions,
			ToolName:        tc.ToolName,
			LoadSuggestions: interpretLoads(result),
		}
	case models.ToolRecommendPricing:
		return DisplayResult{
			Kind:     KindPricing,
			ToolName: tc.ToolName,
			Pricing:  interpretPricing(result),
		}
	case models.ToolShowProfitForecast:
		return DisplayResult{
			Kind:           KindProfitForecast,
			ToolName:       tc.ToolName,
			ProfitForecast: interpretForecast(result),
		}
	case models.ToolOptimizeRoute:
		return DisplayResult{
			Kind:     KindRoute,
			ToolName: tc.ToolName,
			Route:    interpretRoute(result),
		}
	case models.ToolPlatformQuestion:
		return DisplayResult{
			Kind:           KindPlatformAnswer,
			ToolName:       tc.ToolName,
			PlatformAnswer: interpretAnswer(result),
		}
	default:
		return DisplayResult{
			Kind:     KindGeneric,
			ToolName: tc.ToolName,
			Generic:  interpretGeneric(tc.Result),
		}
	}
}

// InterpretAll interprets every tool call of a message, in order.
func InterpretAll(msg models.ChatMessage) []DisplayResult {
	if !msg.HasToolCalls() {
		return nil
	}
	results := make([]DisplayResult, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		results = append(results, Interpret(tc))
	}
	return results
}
