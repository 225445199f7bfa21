// Package tui provides the terminal chat interface for the LoadMove
// assistant.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
)

// Base palette
var (
	colorBorder   = lipgloss.Color("#565f89")
	colorPrimary  = lipgloss.Color("#7aa2f7")
	colorAccent   = lipgloss.Color("#bb9af7")
	colorUser     = lipgloss.Color("#9ece6a")
	colorError    = lipgloss.Color("#f7768e")
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#9aa5ce")
	colorTextMute = lipgloss.Color("#565f89")
)

var (
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(1)

	userBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorUser).
			Padding(0, 1).
			MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorUser).
			Bold(true).
			MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginRight(1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2).
			MarginBottom(1).
			Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginBottom(1)
)

// FormatError returns a styled error message with additional context from
// structured error types.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim).PaddingLeft(2)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render(fmt.Sprintf("HTTP Status: %d", status)))
	}

	switch {
	case apierrors.IsUnauthorized(err):
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Hint: Run 'loadmove-assistant config set-token' with a fresh access token"))
	case apierrors.IsRateLimited(err):
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Hint: You've hit the usage limit. Try again in a moment"))
	case apierrors.IsServiceUnavailable(err):
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Hint: The assistant service is having trouble. Try again shortly"))
	case apierrors.IsValidation(err):
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Hint: Check the message content and try again"))
	}

	return sb.String()
}

// PrintError prints a styled error message.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Println(FormatError(err))
}
