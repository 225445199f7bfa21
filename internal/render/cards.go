package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/interpret"
)

var (
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#565f89")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7")).
			Bold(true)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9aa5ce"))

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5")).
			Bold(true)

	cardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	cardWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))
)

// Card formats one interpreted tool result as a bordered panel.
func Card(r interpret.DisplayResult, width int) string {
	var body string
	switch r.Kind {
	case interpret.KindLoadSuggestions:
		body = loadsBody(r.LoadSuggestions)
	case interpret.KindPricing:
		body = pricingBody(r.Pricing)
	case interpret.KindProfitForecast:
		body = forecastBody(r.ProfitForecast)
	case interpret.KindRoute:
		body = routeBody(r.Route)
	case interpret.KindPlatformAnswer:
		body = answerBody(r.PlatformAnswer)
	default:
		body = r.Generic.Pretty
	}

	content := cardTitleStyle.Render(r.Title()) + "\n" + body
	style := cardStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

// Cards formats a batch of interpreted results, one panel per result.
func Cards(results []interpret.DisplayResult, width int) string {
	if len(results) == 0 {
		return ""
	}
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, Card(r, width))
	}
	return strings.Join(parts, "\n")
}

func line(label, value string) string {
	return cardLabelStyle.Render(label+": ") + cardValueStyle.Render(value)
}

func loadsBody(s *interpret.LoadSuggestions) string {
	var sb strings.Builder
	sb.WriteString(cardDimStyle.Render(fmt.Sprintf("%d matched, %d available", s.LoadsFound, s.TotalAvailable)))

	if len(s.Loads) == 0 {
		sb.WriteString("\n" + cardDimStyle.Render("No loads match your profile right now."))
		return sb.String()
	}

	for i, load := range s.Loads {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, cardValueStyle.Render(load.Title)))
		sb.WriteString("\n   " + line("Route", load.Route))
		if load.MatchScore > 0 {
			sb.WriteString(cardDimStyle.Render(fmt.Sprintf("  (match %.0f%%)", load.MatchScore)))
		}
		sb.WriteString("\n   " + line("Budget", load.Budget))
		if load.CargoType != "" {
			sb.WriteString(cardDimStyle.Render("  " + load.CargoType))
		}
		if load.Urgency != "" {
			sb.WriteString("  " + cardWarnStyle.Render(load.Urgency))
		}
		if load.BidCount > 0 {
			sb.WriteString(cardDimStyle.Render(fmt.Sprintf("  %d bids", load.BidCount)))
		}
	}
	return sb.String()
}

func pricingBody(p *interpret.PricingRecommendation) string {
	var sb strings.Builder
	if p.Route != "" {
		sb.WriteString(cardDimStyle.Render(p.Route) + "\n")
	}
	sb.WriteString(line("Recommended", p.RecommendedPrice))
	sb.WriteString("\n" + line("Range", p.PriceMin+" to "+p.PriceMax))

	for _, f := range p.Breakdown {
		sb.WriteString("\n  " + cardDimStyle.Render(f.Key+": "+f.Value))
	}

	if p.ForCourier != nil {
		sb.WriteString("\n" + cardLabelStyle.Render("Your share:"))
		sb.WriteString("\n  " + line("Commission", p.ForCourier.PlatformCommission+" ("+p.ForCourier.CommissionAmount+")"))
		sb.WriteString("\n  " + line("Net earnings", p.ForCourier.NetEarnings))
	}

	if p.Advice != "" {
		sb.WriteString("\n" + cardWarnStyle.Render(p.Advice))
	}
	return sb.String()
}

func forecastBody(f *interpret.ProfitForecast) string {
	var sb strings.Builder

	if !f.HasForecast {
		msg := f.Message
		if msg == "" {
			msg = "Not enough trip history to forecast yet."
		}
		sb.WriteString(cardWarnStyle.Render(msg))
		if f.WalletBalance != interpret.Placeholder && f.WalletBalance != "" {
			sb.WriteString("\n" + line("Wallet balance", f.WalletBalance))
		}
		return sb.String()
	}

	sb.WriteString(cardDimStyle.Render(fmt.Sprintf("Next %d days, based on %d trips in the last 90 days",
		f.ForecastDays, f.TripsLast90Days)))
	sb.WriteString("\n" + line("Projected revenue", f.ProjectedRevenue))
	sb.WriteString("\n" + line("Fuel costs", f.FuelCosts))
	sb.WriteString("\n" + line("Commission", f.Commission))
	sb.WriteString("\n" + line("Net profit", f.NetProfit))
	sb.WriteString("\n" + line("Projected trips", fmt.Sprintf("%d", f.ProjectedTrips)))
	sb.WriteString("\n" + line("Wallet balance", f.WalletBalance))

	for _, tip := range f.Tips {
		sb.WriteString("\n" + cardDimStyle.Render("• "+tip))
	}
	return sb.String()
}

func routeBody(r *interpret.RouteInfo) string {
	var sb strings.Builder

	if r.ErrorNote != "" {
		sb.WriteString(cardWarnStyle.Render(r.ErrorNote))
		if r.Suggestion != "" {
			sb.WriteString("\n" + cardDimStyle.Render(r.Suggestion))
		}
		return sb.String()
	}

	sb.WriteString(line("Route", r.Route))
	sb.WriteString("\n" + line("Distance", r.DistanceKM))
	sb.WriteString("\n" + line("Estimated time", r.EstimatedTime))
	if r.RoadCondition != "" {
		sb.WriteString("\n" + line("Road condition", r.RoadCondition))
	}
	if len(r.FuelStops) > 0 {
		sb.WriteString("\n" + line("Fuel stops", strings.Join(r.FuelStops, ", ")))
	}
	if len(r.WeighBridges) > 0 {
		sb.WriteString("\n" + line("Weigh bridges", strings.Join(r.WeighBridges, ", ")))
	}
	if r.FuelCost != "" {
		sb.WriteString("\n" + line("Fuel cost", r.FuelCost))
	}
	if r.VehicleAdvice != "" {
		sb.WriteString("\n" + cardDimStyle.Render(r.VehicleAdvice))
	}
	if r.Tips != "" {
		sb.WriteString("\n" + cardDimStyle.Render(r.Tips))
	}
	return sb.String()
}

func answerBody(a *interpret.PlatformAnswer) string {
	var sb strings.Builder
	if a.Topic != "" {
		sb.WriteString(cardDimStyle.Render(a.Topic) + "\n")
	}
	sb.WriteString(cardValueStyle.Render(a.Answer))
	if len(a.RelatedTopics) > 0 {
		sb.WriteString("\n" + cardDimStyle.Render("Related: "+strings.Join(a.RelatedTopics, ", ")))
	}
	return sb.String()
}
