package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/chat"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/interpret"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/render"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/tui"
)

var (
	queryDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa5ce"))
	queryOkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	queryErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

// spinner handles the animated loading indicator for one-shot commands
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		fmt.Fprint(os.Stderr, "\033[?25l")

		chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
		for {
			select {
			case <-s.stop:
				fmt.Fprint(os.Stderr, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r\033[K%s %s", chars[s.frame%len(chars)], s.message)
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

func (s *spinner) halt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stop)
	<-s.done
}

func (s *spinner) stopWithSuccess(message string) {
	s.halt()
	fmt.Fprintln(os.Stderr, queryOkStyle.Render("✓ "+message))
}

func (s *spinner) stopWithError() {
	s.halt()
	fmt.Fprintln(os.Stderr, queryErrStyle.Render("✗ Failed"))
}

// runQuery sends a single question in a fresh session and prints the reply.
func runQuery(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("empty prompt")
	}

	cfg, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	ctx := context.Background()

	conv, err := chat.StartConversation(ctx, client, "")
	if err != nil {
		return err
	}
	conv.SetContext(listingFlag, tripFlag)

	spin := newSpinner("Asking the assistant")
	spin.start()
	reply, err := conv.SendMessage(ctx, prompt)
	if err != nil {
		spin.stopWithError()
		tui.PrintError(err)
		return err
	}
	spin.stopWithSuccess("Done")

	width := render.TerminalWidth()
	opts := render.FromConfig(cfg.Markdown).WithWidth(width)

	rendered, rerr := render.Markdown(reply.Content, opts)
	if rerr != nil {
		rendered = reply.Content
	}
	fmt.Println(strings.TrimRight(rendered, "\n"))

	if cards := render.Cards(interpret.InterpretAll(*reply), width); cards != "" {
		fmt.Println(cards)
	}

	fmt.Println(queryDimStyle.Render(fmt.Sprintf("session %s", conv.SessionID())))

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(reply.Content), 0o644); err != nil {
			return fmt.Errorf("failed to save response: %w", err)
		}
		fmt.Println(queryDimStyle.Render("saved to " + outputFlag))
	}

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply.Content); err == nil {
			fmt.Println(queryDimStyle.Render("copied to clipboard"))
		}
	}

	return nil
}
