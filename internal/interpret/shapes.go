package interpret

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// textOr extracts a string field, substituting the placeholder when the
// field is absent or empty.
func textOr(g gjson.Result, path string) string {
	v := g.Get(path)
	if !v.Exists() || strings.TrimSpace(v.String()) == "" {
		return Placeholder
	}
	return v.String()
}

// stringList accepts either a JSON array of strings or a single string
// (the route tool emits both forms for fuel_stops).
func stringList(g gjson.Result, path string) []string {
	v := g.Get(path)
	if !v.Exists() {
		return nil
	}
	if v.IsArray() {
		var items []string
		v.ForEach(func(_, item gjson.Result) bool {
			items = append(items, item.String())
			return true
		})
		return items
	}
	if s := strings.TrimSpace(v.String()); s != "" {
		return []string{s}
	}
	return nil
}

func interpretLoads(g gjson.Result) *LoadSuggestions {
	out := &LoadSuggestions{
		LoadsFound:     int(g.Get("loads_found").Int()),
		TotalAvailable: int(g.Get("total_available").Int()),
	}

	g.Get("loads").ForEach(func(_, load gjson.Result) bool {
		out.Loads = append(out.Loads, LoadSuggestion{
			ListingID:        load.Get("listing_id").String(),
			Title:            textOr(load, "title"),
			Route:            textOr(load, "route"),
			DistanceKM:       load.Get("distance_km").Float(),
			PickupDistanceKM: load.Get("pickup_distance_km").Float(),
			CargoType:        load.Get("cargo_type").String(),
			VehicleType:      load.Get("vehicle_type").String(),
			WeightKG:         load.Get("weight_kg").Float(),
			Budget:           textOr(load, "budget"),
			Urgency:          load.Get("urgency").String(),
			MatchScore:       load.Get("match_score").Float(),
			PickupDate:       load.Get("pickup_date").String(),
			BidCount:         int(load.Get("bid_count").Int()),
		})
		return true
	})

	// Self-repair: a count that disagrees with the list is replaced by
	// what we can actually render.
	if out.LoadsFound == 0 && len(out.Loads) > 0 {
		out.LoadsFound = len(out.Loads)
	}
	return out
}

func interpretPricing(g gjson.Result) *PricingRecommendation {
	out := &PricingRecommendation{
		RecommendedPrice: textOr(g, "recommended_price"),
		PriceMin:         textOr(g, "price_range.min"),
		PriceMax:         textOr(g, "price_range.max"),
		Route:            g.Get("route").String(),
		Advice:           g.Get("advice").String(),
	}

	g.Get("breakdown").ForEach(func(key, value gjson.Result) bool {
		out.Breakdown = append(out.Breakdown, Field{
			Key:   strings.ReplaceAll(key.String(), "_", " "),
			Value: value.String(),
		})
		return true
	})

	if courier := g.Get("for_courier"); courier.Exists() {
		out.ForCourier = &CourierShare{
			PlatformCommission: textOr(courier, "platform_commission"),
			CommissionAmount:   textOr(courier, "commission_amount"),
			NetEarnings:        textOr(courier, "net_earnings"),
		}
	}
	return out
}

func interpretForecast(g gjson.Result) *ProfitForecast {
	out := &ProfitForecast{
		ForecastDays:  int(g.Get("forecast_days").Int()),
		WalletBalance: textOr(g, "wallet_balance"),
		Message:       g.Get("message").String(),
	}

	forecast := g.Get("forecast")
	out.HasForecast = forecast.Exists()
	if !out.HasForecast {
		return out
	}

	basis := g.Get("historical_basis")
	out.TripsLast90Days = int(basis.Get("trips_last_90_days").Int())
	out.TotalRevenue = textOr(basis, "total_revenue")
	out.AvgPerTrip = textOr(basis, "avg_per_trip")
	out.TripsPerDay = basis.Get("trips_per_day").Float()

	out.ProjectedRevenue = textOr(forecast, "projected_revenue")
	out.FuelCosts = textOr(forecast, "estimated_fuel_costs")
	out.Commission = textOr(forecast, "platform_commission")
	out.NetProfit = textOr(forecast, "projected_net_profit")
	out.ProjectedTrips = int(forecast.Get("projected_trips").Int())

	g.Get("tips").ForEach(func(_, tip gjson.Result) bool {
		out.Tips = append(out.Tips, tip.String())
		return true
	})
	return out
}

func interpretRoute(g gjson.Result) *RouteInfo {
	out := &RouteInfo{
		Route:         textOr(g, "route"),
		EstimatedTime: textOr(g, "estimated_time"),
		RoadType:      g.Get("road_type").String(),
		RoadCondition: g.Get("road_condition").String(),
		FuelStops:     stringList(g, "fuel_stops"),
		WeighBridges:  stringList(g, "weigh_bridges"),
		FuelCost:      g.Get("estimated_fuel_cost").String(),
		VehicleAdvice: g.Get("vehicle_advice").String(),
		ErrorNote:     g.Get("error").String(),
		Suggestion:    g.Get("suggestion").String(),
	}

	// Known corridors report distance_km; estimates report
	// estimated_distance_km.
	switch {
	case g.Get("distance_km").Exists():
		out.DistanceKM = g.Get("distance_km").String() + " km"
	case g.Get("estimated_distance_km").Exists():
		out.DistanceKM = "~" + g.Get("estimated_distance_km").String() + " km"
	default:
		out.DistanceKM = Placeholder
	}

	if tips := g.Get("tips"); tips.Exists() {
		out.Tips = tips.String()
	} else {
		out.Tips = g.Get("note").String()
	}
	return out
}

func interpretAnswer(g gjson.Result) *PlatformAnswer {
	out := &PlatformAnswer{
		Topic:    g.Get("topic").String(),
		Answer:   textOr(g, "answer"),
		Question: g.Get("question").String(),
	}
	g.Get("related_topics").ForEach(func(_, topic gjson.Result) bool {
		out.RelatedTopics = append(out.RelatedTopics, topic.String())
		return true
	})
	return out
}

func interpretGeneric(raw json.RawMessage) *GenericResult {
	if len(raw) == 0 {
		return &GenericResult{Pretty: "{}"}
	}
	if !gjson.ValidBytes(raw) {
		// Not JSON at all; show it verbatim rather than dropping it.
		return &GenericResult{Pretty: string(raw)}
	}
	pretty := gjson.GetBytes(raw, "@pretty").String()
	if pretty == "" {
		pretty = string(raw)
	}
	return &GenericResult{Pretty: strings.TrimRight(pretty, "\n")}
}
