package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	chatmodel "github.com/groovehire/backend/internal/model/chat"
	"github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/simulator"
)

var (
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFDF5")).Background(lipgloss.Color("62")).Padding(0, 1)
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#F5C26B")).Padding(0, 1)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AFAFAF"))
	typingStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#AFAFAF"))
)

func newChatCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			// Info lines would interleave with the transcript.
			if zerolog.GlobalLevel() < zerolog.WarnLevel {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
			if rulesFile == "" {
				rulesFile = cfg.Chat.RulesFile
			}
			sim, err := loadSimulator(rulesFile)
			if err != nil {
				return err
			}

			svc := chat.NewService(chat.Options{
				ReplyDelay: cfg.Chat.ReplyDelay,
				Replier:    sim,
			})
			conv, err := svc.Create(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styled := false
			if f, ok := out.(*os.File); ok {
				styled = isatty.IsTerminal(f.Fd())
			}
			return runChat(cmd.Context(), cmd.InOrStdin(), out, conv, styled)
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rulebook to use instead of the built-in table")
	return cmd
}

// runChat reads lines from in until EOF or "quit" and submits them to conv.
// A bare number picks the matching quick reply. Every entry is rendered by a
// single goroutine fed from the conversation's event stream.
func runChat(ctx context.Context, in io.Reader, out io.Writer, conv *chat.Conversation, styled bool) error {
	r := renderer{out: out, styled: styled}

	events, unsubscribe := conv.Subscribe()
	defer unsubscribe()

	snap := conv.Snapshot()
	for _, entry := range snap.Entries {
		r.entry(entry)
	}
	r.quickReplies()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			r.event(event)
		}
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(simulator.QuickReplies) {
			conv.QuickReply(simulator.QuickReplies[n-1])
			continue
		}
		conv.AppendUser(line)
	}

	conv.Wait()
	conv.Close()
	<-done
	return scanner.Err()
}

type renderer struct {
	out    io.Writer
	styled bool
}

func (r renderer) event(event chatmodel.Event) {
	switch event.Type {
	case chatmodel.EventEntry:
		if event.Entry != nil {
			r.entry(*event.Entry)
		}
	case chatmodel.EventTyping:
		if event.Pending {
			r.typing()
		}
	}
}

func (r renderer) entry(entry chatmodel.Entry) {
	who := "GrooveHire"
	style := botStyle
	if !entry.IsBot() {
		who = "You"
		style = userStyle
	}

	if !r.styled {
		fmt.Fprintf(r.out, "[%s] %s: %s\n", entry.Timestamp, who, entry.Text)
		return
	}
	fmt.Fprintf(r.out, "%s %s\n%s\n", style.Render(who), metaStyle.Render(entry.Timestamp), entry.Text)
}

func (r renderer) typing() {
	if !r.styled {
		fmt.Fprintln(r.out, "... typing")
		return
	}
	fmt.Fprintln(r.out, typingStyle.Render("GrooveHire is typing..."))
}

func (r renderer) quickReplies() {
	var b strings.Builder
	b.WriteString("Quick replies:")
	for i, label := range simulator.QuickReplies {
		fmt.Fprintf(&b, " [%d] %s", i+1, label)
	}
	if !r.styled {
		fmt.Fprintln(r.out, b.String())
		return
	}
	fmt.Fprintln(r.out, metaStyle.Render(b.String()))
}
