package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [location] [$buyin] [+cash|+tournament] [+online|+live] [at:time]",
	Short: "Start a poker session",
	Long: `Start tracking a poker session. Opens the live timer by default, use --no-ui for a simple start.

Modes:
  Interactive: pokerlog start -i (or just 'pokerlog start' with no arguments)
  Quick: pokerlog start "Bellagio" --buyin 200 --game cash --env live
  Smart parsing: pokerlog start Bellagio $200 +cash +live at:19:30

Smart parsing syntax:
  @Place or @"Two Words"   - Location (otherwise leftover words are the location)
  $200 or buyin:200        - Buy-in
  +cash / +tournament      - Game type (+mtt, +tourney also work)
  +online / +live          - Environment (+irl also works)
  at:19:30                 - Start time (HH:MM, dd/mm/yyyy HH:MM, "90 minutes ago")`,
	Args: cobra.ArbitraryArgs,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		interactive, _ := cmd.Flags().GetBool("interactive")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive && !hasEntryFlags(cmd) {
			interactive = true
		}

		parsed := parser.ParseEntry(strings.Join(args, " "), time.Now())
		if err := applyEntryFlags(cmd, &parsed); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(parsed.Errors) > 0 {
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			if noUI {
				return
			}
			fmt.Println("Opening interactive mode for confirmation...")
			interactive = true
		}

		// Missing required fields fall back to the wizard, pre-filled with what we have
		if !interactive && len(parsed.Missing()) > 0 {
			if noUI {
				fmt.Printf("Error: missing %s\n", strings.Join(parsed.Missing(), ", "))
				return
			}
			interactive = true
		}

		var session *models.PokerSession
		if interactive {
			created, err := tui.RunStartSessionTUI(ctx, svc, prefilledFromEntry(parsed))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if created == nil {
				return
			}
			session = created
		} else {
			req := models.CreateSessionRequest{
				GameType:    parsed.GameType,
				Environment: parsed.Environment,
				Location:    parsed.Location,
				BuyIn:       *parsed.BuyIn,
			}
			if parsed.StartTime != nil {
				req.StartTime = *parsed.StartTime
			}

			created, err := svc.CreateSession(ctx, req)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			session = created
		}

		if noUI {
			fmt.Printf("🃏 Started %s %s session at %s (%s)\n",
				session.Environment.Label(), session.GameType.Label(), session.Location, session.ShortID())
			fmt.Printf("Buy-in: %s\n", parser.FormatMoney(session.BuyIn))
			fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
			return
		}

		if err := tui.RunTimerTUI(ctx, svc, session); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// hasEntryFlags reports whether any session field was passed as a flag
func hasEntryFlags(cmd *cobra.Command) bool {
	for _, name := range []string{"location", "buyin", "game", "env", "at"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// applyEntryFlags overrides parsed values with explicit flags (flags take precedence)
func applyEntryFlags(cmd *cobra.Command, parsed *parser.ParsedEntry) error {
	if location, _ := cmd.Flags().GetString("location"); location != "" {
		parsed.Location = location
	}
	if buyIn, _ := cmd.Flags().GetString("buyin"); buyIn != "" {
		amount, err := parser.ParseAmount(buyIn)
		if err != nil {
			return err
		}
		parsed.BuyIn = &amount
	}
	if game, _ := cmd.Flags().GetString("game"); game != "" {
		gameType, err := models.ParseGameType(game)
		if err != nil {
			return err
		}
		parsed.GameType = gameType
	}
	if env, _ := cmd.Flags().GetString("env"); env != "" {
		environment, err := models.ParseEnvironment(env)
		if err != nil {
			return err
		}
		parsed.Environment = environment
	}
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		start, err := parser.ParseTime(at, time.Now())
		if err != nil {
			return err
		}
		parsed.StartTime = &start
	}
	return nil
}

// prefilledFromEntry converts parsed values into wizard field values
func prefilledFromEntry(parsed parser.ParsedEntry) map[string]string {
	prefilled := make(map[string]string)
	if parsed.Location != "" {
		prefilled["location"] = parsed.Location
	}
	if parsed.BuyIn != nil {
		prefilled["buyin"] = fmt.Sprintf("%.2f", *parsed.BuyIn)
	}
	if parsed.GameType != "" {
		prefilled["game"] = parsed.GameType.Label()
	}
	if parsed.Environment != "" {
		prefilled["env"] = parsed.Environment.Label()
	}
	if parsed.StartTime != nil {
		prefilled["start"] = parsed.StartTime.Format("02/01/2006 15:04")
	}
	return prefilled
}

func init() {
	startCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	startCmd.Flags().Bool("no-ui", false, "Start without the interactive timer")
	startCmd.Flags().StringP("location", "l", "", "Where you are playing")
	startCmd.Flags().StringP("buyin", "b", "", "Buy-in amount")
	startCmd.Flags().StringP("game", "g", "", "Game type: cash or tournament")
	startCmd.Flags().StringP("env", "e", "", "Environment: online or live")
	startCmd.Flags().String("at", "", "Start time: HH:MM, dd/mm/yyyy HH:MM, X minutes ago")
}
