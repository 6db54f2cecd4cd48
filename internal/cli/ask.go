package cli

import (
	"fmt"
	"strings"

	"careerpilot/internal/backend"
	"careerpilot/internal/prefs"
	"careerpilot/internal/recommend"
	"careerpilot/internal/types"
	"careerpilot/internal/ui"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the assistant a single question",
	Long: `Send one message to the career planning assistant and print its reply.
The default preferences are used unless overridden with flags; for a
stateful conversation use the chat command instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var askPrefs preferenceFlags

func init() {
	askPrefs.register(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	client, err := backend.NewClient(&cfg.Backend, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	message := strings.Join(args, " ")
	wire, err := askPrefs.build()
	if err != nil {
		return err
	}

	logger.Info("Sending chat message", "message_chars", len(message))

	reply, err := client.Chat(cmd.Context(), message, wire)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}

	fmt.Println(reply)

	// Show the cards a chat turn would surface: keyword templates
	// first, then the backend payload on top when it is reachable.
	deck := recommend.NewDeck()
	matched := deck.ApplyQuery(message)
	if set, err := client.Recommendations(cmd.Context(), wire); err != nil {
		logger.Warn("Recommendation fetch failed, showing template cards only", "error", err)
	} else {
		deck.ApplyPayload(set)
		matched++
	}
	if matched > 0 {
		deck.SetVisible(true)
		fmt.Print(ui.RenderDeck(deck))
	}
	return nil
}

// preferenceFlags binds the preference overrides shared by one-shot
// commands.
type preferenceFlags struct {
	interests   []string
	careerLevel string
	goal        string
	industry    string
	location    string
	experience  string
}

func (pf *preferenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&pf.interests, "interest", nil, "Interest to filter by (repeatable, replaces defaults)")
	cmd.Flags().StringVar(&pf.careerLevel, "career-level", "", "Career level filter")
	cmd.Flags().StringVar(&pf.goal, "goal", "", "Career goal: advancement, skill, job, or retirement")
	cmd.Flags().StringVar(&pf.industry, "industry", "", "Industry filter")
	cmd.Flags().StringVar(&pf.location, "location", "", "Location filter")
	cmd.Flags().StringVar(&pf.experience, "experience", "", "Experience range filter")

	_ = cmd.RegisterFlagCompletionFunc("goal", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{
			string(prefs.GoalAdvancement),
			string(prefs.GoalSkill),
			string(prefs.GoalJob),
			string(prefs.GoalRetirement),
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// build merges the flag overrides over the session defaults and
// returns the wire form.
func (pf *preferenceFlags) build() (types.Preferences, error) {
	p := prefs.Defaults()

	if len(pf.interests) > 0 {
		p.Interests = pf.interests
	}
	if pf.careerLevel != "" {
		p.CareerLevel = pf.careerLevel
	}
	if pf.goal != "" {
		goal, ok := prefs.ParseGoal(pf.goal)
		if !ok {
			return types.Preferences{}, fmt.Errorf("invalid goal %q, expected advancement, skill, job, or retirement", pf.goal)
		}
		p.Goal = goal
	}
	if pf.industry != "" {
		p.Industry = pf.industry
	}
	if pf.location != "" {
		p.Location = pf.location
	}
	if pf.experience != "" {
		p.Experience = pf.experience
	}

	return types.Preferences{
		Interests:   p.Interests,
		CareerLevel: p.CareerLevel,
		Goal:        string(p.Goal),
		Industry:    p.Industry,
		Location:    p.Location,
		Experience:  p.Experience,
	}, nil
}
