package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"careerpilot/internal/backend"
	"careerpilot/internal/config"
	"careerpilot/internal/recommend"
	"careerpilot/internal/session"
	"careerpilot/internal/ui"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive session with the career planning assistant. The
session keeps your preferences, shows recommendation cards as they update,
and supports slash commands for filter edits, LinkedIn connection, and CV
upload. Type /help inside the session for the command list.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

var chatSilenceBanner bool

func init() {
	chatCmd.Flags().BoolVar(&chatSilenceBanner, "no-banner", false, "Suppress the startup banner")
}

const chatHelpText = `Commands:
  /filters              show active filter chips
  /add <interest>       add an interest
  /remove <label>       remove a filter chip by its label
  /level <levels>       set career level (comma-separated)
  /goal <goal>          set goal: advancement, skill, job, retirement
  /industry <name>      set industry
  /location <name>      set location
  /experience <range>   set experience range
  /cards                show the recommendation cards
  /connect <url>        connect a LinkedIn profile
  /cv <file>            upload a CV for analysis
  /reset                reset filters to defaults (interests cleared)
  /clear                clear the conversation
  /quit                 leave the session`

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}
	metrics := getMetricsFromContext(cmd.Context())

	client, err := backend.NewClient(&cfg.Backend, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	var sessMetrics session.Metrics
	if metrics != nil {
		sessMetrics = metrics
	}
	ctrl := session.NewController(cfg, client, logger, sessMetrics)

	// Follow config file edits for the lifetime of the session. Backend
	// settings apply to the next session; the reload is logged either way.
	if configFile := cfg.ConfigFileUsed(); configFile != "" {
		watcher, err := config.NewWatcher(configFile, time.Second, func(newCfg *config.Config) {
			logger.Info("Configuration reloaded, backend settings apply to the next session",
				"file", configFile)
			if metrics != nil {
				metrics.RecordConfigReload(cmd.Context())
			}
		}, logger)
		if err == nil {
			if err := watcher.Start(); err != nil {
				logger.Warn("Config watcher failed to start", "error", err)
			} else {
				defer watcher.Stop()
			}
		}
	}

	ui.PrintBanner(chatSilenceBanner)
	logger.Info("Chat session started", "session_id", ctrl.ID())

	ctrl.Start(cmd.Context())
	ui.PrintTranscript(ctrl.Transcript())

	renderedVersions := deckVersionSum(ctrl.Deck())
	if out := ui.RenderDeck(ctrl.Deck()); out != "" {
		fmt.Print(out)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := handleChatCommand(cmd, ctrl, line); quit {
				break
			}
		} else {
			reply, err := ctrl.Send(cmd.Context(), line)
			if err != nil {
				// The fixed error entry is already in the transcript.
				entries := ctrl.Transcript().Entries()
				ui.PrintError(entries[len(entries)-1].Text)
			} else {
				fmt.Println(ui.RenderEntry(recommend.Entry{Role: recommend.RoleAssistant, Text: reply}))
			}
		}

		if v := deckVersionSum(ctrl.Deck()); v != renderedVersions {
			renderedVersions = v
			if out := ui.RenderDeck(ctrl.Deck()); out != "" {
				fmt.Print(out)
			}
		}
	}

	logger.Info("Chat session ended", "session_id", ctrl.ID())
	return scanner.Err()
}

// handleChatCommand dispatches one slash command. Returns true when
// the session should end.
func handleChatCommand(cmd *cobra.Command, ctrl *session.Controller, line string) bool {
	fields := strings.Fields(line)
	command := fields[0]
	arg := strings.TrimSpace(strings.TrimPrefix(line, command))

	switch command {
	case "/help":
		fmt.Println(chatHelpText)
	case "/filters":
		fmt.Println(ui.RenderChips(ctrl.Store().ActiveChips()))
	case "/add":
		if arg == "" {
			ui.PrintError("usage: /add <interest>")
			break
		}
		if !ctrl.Store().AddInterest(arg) {
			ui.PrintInfo("interest already present")
		}
	case "/remove":
		if arg == "" {
			ui.PrintError("usage: /remove <label>")
			break
		}
		ctrl.Store().RemoveFilter(arg)
	case "/level":
		var selections []string
		for _, s := range strings.Split(arg, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				selections = append(selections, trimmed)
			}
		}
		ctrl.Store().SetCareerLevel(selections)
	case "/goal":
		if !ctrl.Store().SetGoal(arg) {
			ui.PrintError("goal must be one of: advancement, skill, job, retirement")
		}
	case "/industry":
		ctrl.Store().SetIndustry(arg)
	case "/location":
		ctrl.Store().SetLocation(arg)
	case "/experience":
		ctrl.Store().SetExperience(arg)
	case "/cards":
		out := ui.RenderDeck(ctrl.Deck())
		if out == "" {
			ui.PrintInfo("no recommendations yet")
		} else {
			fmt.Print(out)
		}
	case "/connect":
		if arg == "" {
			ui.PrintError("usage: /connect <linkedin-profile-url>")
			break
		}
		if _, err := ctrl.ConnectLinkedIn(cmd.Context(), arg); err != nil {
			entries := ctrl.Transcript().Entries()
			if len(entries) > 0 {
				ui.PrintError(entries[len(entries)-1].Text)
			}
			break
		}
		entries := ctrl.Transcript().Entries()
		fmt.Println(ui.RenderEntry(entries[len(entries)-1]))
		fmt.Println(ui.RenderChips(ctrl.Store().ActiveChips()))
	case "/cv":
		if arg == "" {
			ui.PrintError("usage: /cv <file>")
			break
		}
		if _, err := ctrl.UploadCV(cmd.Context(), arg); err != nil {
			ui.PrintError(err.Error())
			break
		}
		entries := ctrl.Transcript().Entries()
		fmt.Println(ui.RenderEntry(entries[len(entries)-1]))
	case "/reset":
		ctrl.ResetFilters()
		entries := ctrl.Transcript().Entries()
		fmt.Println(ui.RenderEntry(entries[len(entries)-1]))
		fmt.Println(ui.RenderChips(ctrl.Store().ActiveChips()))
	case "/clear":
		ctrl.ResetConversation()
		ui.PrintTranscript(ctrl.Transcript())
	case "/quit", "/exit":
		return true
	default:
		ui.PrintError(fmt.Sprintf("unknown command %s, try /help", command))
	}
	return false
}

func deckVersionSum(deck *recommend.Deck) uint64 {
	var sum uint64
	for kind := recommend.Kind(0); kind < recommend.NumSlots; kind++ {
		sum += deck.Version(kind)
	}
	return sum
}
