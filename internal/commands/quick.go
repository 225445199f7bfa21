package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/interpret"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/render"
)

var quickParamFlags []string

var quickCmd = &cobra.Command{
	Use:   "quick <action>",
	Short: "Run a one-shot assistant action",
	Long: `Run a single assistant action without a chat session.

Actions:
  suggest_loads     Loads matching your vehicle and location
  recommend_price   Price recommendation for a route
  profit_forecast   Earnings forecast from your trip history
  optimize_route    Route details for a corridor
  platform_help     Answer a platform question

Parameters are passed as key=value pairs:
  loadmove-assistant quick optimize_route -P origin=Accra -P destination=Tamale`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuick(args[0], quickParamFlags)
	},
}

func init() {
	quickCmd.Flags().StringArrayVarP(&quickParamFlags, "param", "P", nil, "Action parameter as key=value (repeatable)")
}

// toolForAction maps a quick action key to the tool whose result shape it
// returns, so the output renders through the same typed cards.
func toolForAction(action string) string {
	switch action {
	case models.ActionSuggestLoads:
		return models.ToolSuggestBestLoads
	case models.ActionRecommendPrice:
		return models.ToolRecommendPricing
	case models.ActionProfitForecast:
		return models.ToolShowProfitForecast
	case models.ActionOptimizeRoute:
		return models.ToolOptimizeRoute
	case models.ActionPlatformHelp:
		return models.ToolPlatformQuestion
	default:
		return action
	}
}

func parseParams(pairs []string) (map[string]any, error) {
	params := map[string]any{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func runQuick(action string, paramPairs []string) error {
	params, err := parseParams(paramPairs)
	if err != nil {
		return err
	}

	cfg, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	spin := newSpinner("Running " + action)
	spin.start()
	result, err := client.QuickAction(context.Background(), action, params)
	if err != nil {
		spin.stopWithError()
		return err
	}
	spin.stopWithSuccess("Done")

	width := render.TerminalWidth()

	display := interpret.Interpret(models.ToolCall{
		ToolName: toolForAction(result.Action),
		Result:   result.Result,
	})
	fmt.Println(render.Card(display, width))

	if result.AssistantMessage != "" {
		opts := render.FromConfig(cfg.Markdown).WithWidth(width)
		rendered, rerr := render.Markdown(result.AssistantMessage, opts)
		if rerr != nil {
			rendered = result.AssistantMessage
		}
		fmt.Println(strings.TrimRight(rendered, "\n"))
	}

	if cfg.CopyToClipboard && result.AssistantMessage != "" {
		if err := clipboard.WriteAll(result.AssistantMessage); err == nil {
			fmt.Println(queryDimStyle.Render("copied to clipboard"))
		}
	}

	return nil
}
