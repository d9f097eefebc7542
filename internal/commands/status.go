package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session",
	Long: `Show the active session with elapsed time. Pass --cashout to preview
what ending now would record, or --ui to reopen the live timer.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		active, err := svc.ActiveSessions(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(active) == 0 {
			fmt.Println("No active poker session")
			return
		}

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunTimerTUI(ctx, svc, &active[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		for _, session := range active {
			elapsed := time.Since(session.StartTime)
			fmt.Printf("🃏 Playing %s %s at %s (%s)\n",
				session.Environment.Label(), session.GameType.Label(), session.Location, session.ShortID())
			fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
			fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
			fmt.Printf("Buy-in: %s\n", parser.FormatMoney(session.BuyIn))

			if raw, _ := cmd.Flags().GetString("cashout"); raw != "" {
				cashOut, err := parser.ParseAmount(raw)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					return
				}
				profit, rate := tui.PreviewProfit(session, cashOut, time.Now())
				fmt.Printf("If you cash out %s now: %s (%s)\n",
					parser.FormatMoney(cashOut), parser.FormatMoney(profit), parser.FormatRate(rate))
			}
		}

		if len(active) > 1 {
			fmt.Printf("\n⚠️  %d sessions are active. End the extra ones with 'pokerlog end <id>'.\n", len(active))
		}
	}),
}

func init() {
	statusCmd.Flags().String("cashout", "", "Preview profit for a cash out amount")
	statusCmd.Flags().Bool("ui", false, "Open the live timer")
}
