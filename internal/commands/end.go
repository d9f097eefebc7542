package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/parser"
)

var endCmd = &cobra.Command{
	Use:     "end [session-id]",
	Aliases: []string{"stop"},
	Short:   "End the active poker session",
	Long: `End a session and record the result. Without an id, ends the active session.

Leaving out --cashout just stops the clock: duration is recorded and profit stays unknown.

Examples:
  pokerlog end --cashout 450
  pokerlog end 3f2a --cashout 0 --at 23:15
  pokerlog end --cashout 310 --location "Aria"`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		session, err := resolveActive(ctx, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req, err := updateRequestFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		ended, err := svc.EndSession(ctx, session.ID, req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		printEnded(ended)
	}),
}

// updateRequestFromFlags reads --cashout, --at and --location
func updateRequestFromFlags(cmd *cobra.Command) (models.UpdateSessionRequest, error) {
	var req models.UpdateSessionRequest

	if raw, _ := cmd.Flags().GetString("cashout"); raw != "" {
		amount, err := parser.ParseAmount(raw)
		if err != nil {
			return req, err
		}
		req.CashOut = &amount
	}
	if raw, _ := cmd.Flags().GetString("at"); raw != "" {
		end, err := parser.ParseTime(raw, time.Now())
		if err != nil {
			return req, err
		}
		req.EndTime = &end
	}
	if cmd.Flags().Changed("location") {
		location, _ := cmd.Flags().GetString("location")
		req.Location = &location
	}
	return req, nil
}

func printEnded(session *models.PokerSession) {
	fmt.Printf("⏹️  Ended session %s at %s\n", session.ShortID(), session.Location)
	fmt.Printf("📊 Session duration: %s\n", formatMinutes(session.Duration))

	if session.Profit == nil {
		fmt.Println("💡 No cash out recorded, this session is left out of stats.")
		return
	}

	icon := "📈"
	if *session.Profit < 0 {
		icon = "📉"
	}
	fmt.Printf("%s Profit: %s (%s)\n", icon, parser.FormatMoney(*session.Profit), parser.FormatRate(session.ProfitPerHour))
}

// addUpdateFlags registers the flags read by updateRequestFromFlags
func addUpdateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("cashout", "c", "", "Cash out amount")
	cmd.Flags().String("at", "", "End time: HH:MM, dd/mm/yyyy HH:MM, X minutes ago")
	cmd.Flags().StringP("location", "l", "", "Location")
}

func init() {
	addUpdateFlags(endCmd)
}
