package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list", "log"},
	Short:   "List poker sessions",
	Long:    "List poker sessions, most recent first, with optional filters",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		activeOnly, _ := cmd.Flags().GetBool("active")
		location, _ := cmd.Flags().GetString("location")
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		var (
			list []models.PokerSession
			err  error
		)
		if activeOnly {
			list, err = svc.ActiveSessions(ctx)
		} else {
			list, err = svc.ListSessions(ctx)
		}
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		list = filterSessions(list, location, limit)

		if jsonOutput {
			renderSessionsJSON(list)
			return
		}
		renderSessionsTable(list)
	}),
}

// filterSessions keeps sessions at location (exact match) up to limit (0 = all)
func filterSessions(list []models.PokerSession, location string, limit int) []models.PokerSession {
	filtered := make([]models.PokerSession, 0, len(list))
	for _, s := range list {
		if location != "" && s.Location != location {
			continue
		}
		filtered = append(filtered, s)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}

func renderSessionsJSON(list []models.PokerSession) {
	jsonBytes, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

func renderSessionsTable(list []models.PokerSession) {
	if len(list) == 0 {
		fmt.Println("No sessions found. Use 'pokerlog start' to record your first session.")
		return
	}

	// Print table header
	fmt.Printf("%-8s %-16s %-20s %-17s %-6s %9s %10s %12s\n", "ID", "DATE", "LOCATION", "GAME", "TIME", "BUY-IN", "PROFIT", "RATE")
	fmt.Println(strings.Repeat("-", 105))

	for _, s := range list {
		game := fmt.Sprintf("%s/%s", s.GameType.Label(), s.Environment.Label())

		duration := formatMinutes(s.Duration)
		profit := "-"
		rate := "-"
		if s.IsActive {
			duration = "live"
		}
		if s.Profit != nil {
			profit = parser.FormatMoney(*s.Profit)
			rate = parser.FormatRate(s.ProfitPerHour)
		}

		fmt.Printf("%-8s %-16s %-20s %-17s %-6s %9s %10s %12s\n",
			s.ShortID(),
			s.StartTime.Format("2006-01-02 15:04"),
			truncate(s.Location, 20),
			game,
			duration,
			parser.FormatMoney(s.BuyIn),
			profit,
			rate)
	}
}

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session in detail",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := resolveSession(commandContext(cmd), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderSessionsJSON([]models.PokerSession{*session})
			return
		}

		status := "ended"
		if session.IsActive {
			status = "active"
		}

		fmt.Printf("Session %s (%s)\n", session.ID, status)
		fmt.Printf("  Location:    %s\n", session.Location)
		fmt.Printf("  Game:        %s, %s\n", session.GameType.Label(), session.Environment.Label())
		fmt.Printf("  Started:     %s\n", session.StartTime.Format("Mon Jan 2 2006 15:04"))
		if session.EndTime != nil {
			fmt.Printf("  Ended:       %s\n", session.EndTime.Format("Mon Jan 2 2006 15:04"))
		}
		fmt.Printf("  Duration:    %s\n", formatMinutes(session.Duration))
		fmt.Printf("  Buy-in:      %s\n", parser.FormatMoney(session.BuyIn))
		if session.CashOut != nil {
			fmt.Printf("  Cash out:    %s\n", parser.FormatMoney(*session.CashOut))
		}
		if session.Profit != nil {
			fmt.Printf("  Profit:      %s\n", parser.FormatMoney(*session.Profit))
			fmt.Printf("  Hourly rate: %s\n", parser.FormatRate(session.ProfitPerHour))
		}
	}),
}

func init() {
	listCmd.Flags().Bool("active", false, "Show only active sessions")
	listCmd.Flags().StringP("location", "l", "", "Filter by location (exact)")
	listCmd.Flags().IntP("limit", "n", 0, "Limit number of results")
	listCmd.Flags().Bool("json", false, "Output as JSON")

	showCmd.Flags().Bool("json", false, "Output as JSON")
}
