package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/chat"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/interpret"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/render"
)

// Message types for the TUI
type (
	responseMsg struct {
		reply *models.ChatMessage
	}
	errMsg struct {
		err error
	}
	historyLoadedMsg struct {
		err error
	}
	suggestionsMsg struct{}
)

// Model represents the chat TUI state. All conversation state lives in the
// Conversation; the model only holds UI components and dimensions.
type Model struct {
	conv *chat.Conversation

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading bool
	ready   bool
	err     error

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model bound to a conversation.
func NewChatModel(conv *chat.Conversation) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about loads, pricing, routes..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		conv:     conv,
		textarea: ta,
		spinner:  s,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.loadHistory(),
		m.loadSuggestions(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if !m.loading {
				return m, tea.Quit
			}

		case "ctrl+l":
			m.conv.Clear()
			m.loading = false
			m.err = nil
			m.updateViewport()

		case "enter":
			if !m.loading && strings.TrimSpace(m.textarea.Value()) != "" {
				input := strings.TrimSpace(m.textarea.Value())
				if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
					return m, tea.Quit
				}
				if input == "/clear" {
					m.textarea.Reset()
					m.conv.Clear()
					m.err = nil
					m.updateViewport()
					return m, nil
				}

				m.loading = true
				m.err = nil
				m.textarea.Reset()

				return m, tea.Batch(
					m.send(input),
					m.spinner.Tick,
				)
			}
		}

	case responseMsg:
		m.loading = false
		m.updateViewport()
		m.viewport.GotoBottom()

	case errMsg:
		m.loading = false
		m.err = msg.err
		m.updateViewport()
		m.viewport.GotoBottom()

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case suggestionsMsg:
		m.updateViewport()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			// The optimistic user message lands mid-send; pick it up.
			m.updateViewport()
			m.viewport.GotoBottom()
		}
	}

	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("⛟ LoadMove Assistant"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(shortID(m.conv.SessionID())),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	var messagesContent string
	if len(m.conv.Messages()) == 0 && !m.loading {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	var inputContent string
	if m.loading {
		inputContent = m.spinner.View() + loadingStyle.Render(" Assistant is thinking...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	title := welcomeTitleStyle.Width(width).Render("Welcome to the LoadMove Assistant")
	subtitle := welcomeStyle.Width(width).Render("Ask about available loads, pricing, profit forecasts and routes")

	parts := []string{"", title, "", subtitle}

	if chips := m.conv.Suggestions(); len(chips) > 0 {
		parts = append(parts, "")
		for _, chip := range chips {
			label := chip.Label
			if chip.Icon != "" {
				label = chip.Icon + " " + label
			}
			parts = append(parts, suggestionStyle.Width(width).Render(label))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	return strings.Repeat("\n", topPadding) + content
}

func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+L", "Clear"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// send creates a command that dispatches the message through the
// conversation. The conversation appends the user message before the
// request goes out and rejects overlapping sends on its own.
func (m Model) send(content string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.conv.SendMessage(context.Background(), content)
		if err != nil {
			return errMsg{err: err}
		}
		return responseMsg{reply: reply}
	}
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{err: m.conv.LoadHistory(context.Background())}
	}
}

// loadSuggestions fetches prompt chips; failures are ignored since chips
// are decorative.
func (m Model) loadSuggestions() tea.Cmd {
	return func() tea.Msg {
		_ = m.conv.RefreshSuggestions(context.Background())
		return suggestionsMsg{}
	}
}

// updateViewport rebuilds the viewport from the conversation state.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.conv.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.IsUser() {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("⛟ Assistant")
			content.WriteString(label + "\n")

			rendered, err := render.MarkdownWithWidth(msg.Content, bubbleWidth-4)
			if err != nil {
				rendered = msg.Content
			}
			rendered = strings.TrimRight(rendered, "\n")
			content.WriteString(assistantBubbleStyle.Width(bubbleWidth).Render(rendered))

			if cards := render.Cards(interpret.InterpretAll(msg), bubbleWidth); cards != "" {
				content.WriteString("\n" + cards)
			}
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI for a conversation.
func RunChat(conv *chat.Conversation) error {
	p := tea.NewProgram(
		NewChatModel(conv),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
