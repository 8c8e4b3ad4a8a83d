package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rankery/rankery"
	"github.com/rankery/rankery/internal/presentation/tui"
	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/ports"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the bot from the terminal",
	Long: `Starts an interactive REPL against a local bot. Lines starting with
"/" are commands, numbers pick a button from the last keyboard, and
anything else is free text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		userID, _ := cmd.Flags().GetString("user")
		group, _ := cmd.Flags().GetBool("group")
		admin, _ := cmd.Flags().GetBool("admin")

		chat := domain.Chat{ID: "terminal", Kind: domain.ChatPrivate}
		if group {
			chat.Kind = domain.ChatGroup
		}

		bot, err := buildBot(cfg, nil, rankery.WithAdminChecker(
			ports.AdminCheckerFunc(func(ctx context.Context, uid string, c domain.Chat) (bool, error) {
				return admin, nil
			}),
		))
		if err != nil {
			return err
		}

		return runChat(cmd.Context(), bot, userID, chat)
	},
}

func init() {
	chatCmd.Flags().String("user", "local", "User ID to chat as")
	chatCmd.Flags().Bool("group", false, "Simulate a group chat instead of a private one")
	chatCmd.Flags().Bool("admin", false, "Treat the user as a group admin")
	rootCmd.AddCommand(chatCmd)
}

// runChat drives the read-dispatch-print loop until EOF or /quit.
func runChat(ctx context.Context, bot *rankery.Bot, userID string, chat domain.Chat) error {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	render := tui.NewRenderer()

	fmt.Printf("rankery %s — type /start to begin, /quit to leave\n\n", rankery.Version)

	var last domain.Reply
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return nil
		}

		in, ok := parseInput(line, last, userID, chat)
		if !ok {
			fmt.Println("No such button. Pick a number from the menu above.")
			continue
		}

		reply, err := bot.Handle(ctx, in)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		last = reply

		printReply(reply, styled, render)
	}
}

// parseInput maps a REPL line onto an intent. A leading "/" makes a
// command, a bare number selects a button from the previous keyboard,
// anything else is text.
func parseInput(line string, last domain.Reply, userID string, chat domain.Chat) (domain.Intent, bool) {
	if strings.HasPrefix(line, "/") {
		name, arg, _ := strings.Cut(line[1:], " ")
		return domain.NewCommand(userID, chat, name, strings.TrimSpace(arg)), true
	}
	if n, err := strconv.Atoi(line); err == nil && last.HasChoices() {
		token, ok := tui.ChoiceAt(last, n)
		if !ok {
			return domain.Intent{}, false
		}
		return domain.NewChoice(userID, chat, token), true
	}
	return domain.NewText(userID, chat, line), true
}

func printReply(reply domain.Reply, styled bool, render func(string) (string, error)) {
	text := reply.Text
	if styled {
		if out, err := render(reply.Text); err == nil {
			text = strings.TrimRight(out, "\n") + "\n"
		}
	}
	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}
	if menu := tui.RenderChoices(reply, styled); menu != "" {
		fmt.Print(menu)
	}
}
