package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/sessions"
	"github.com/balkashynov/pokerlog/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"summary"},
	Short:   "Show hourly rate and profit summaries",
	Long: `Show totals across completed sessions plus weekly, monthly and per-location summaries.

Only ended sessions with a cash out count. Weeks start on Sunday in POKERLOG_TIMEZONE
(system time zone when unset).`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		report, err := svc.Report(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			jsonBytes, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling JSON: %v\n", err)
				return
			}
			fmt.Println(string(jsonBytes))
			return
		}

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunSummaryTUI(report); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		week, _ := cmd.Flags().GetBool("week")
		month, _ := cmd.Flags().GetBool("month")
		location, _ := cmd.Flags().GetBool("location")
		all := !week && !month && !location

		printOverview(report.Stats)
		if week || all {
			printWeekly(report.Weekly)
		}
		if month || all {
			printMonthly(report.Monthly)
		}
		if location || all {
			printLocations(report.Locations)
		}
	}),
}

func printOverview(stats sessions.Stats) {
	fmt.Println("📊 Overview")
	fmt.Printf("  Total hours:          %.1f\n", stats.TotalHours)
	fmt.Printf("  Total profit:         %s\n", parser.FormatMoney(stats.TotalProfit))
	fmt.Printf("  Hourly rate:          %s\n", formatHourlyRate(stats.TotalProfit, stats.TotalHours))
	fmt.Printf("  Most profitable week: %s\n", stats.MostProfitableWeek)
	fmt.Printf("  Best location:        %s\n", stats.BestLocation)
}

func printWeekly(weeks []sessions.WeeklySummary) {
	fmt.Println("\n📅 Weekly")
	if len(weeks) == 0 {
		fmt.Println("  No completed sessions yet")
		return
	}
	printSummaryHeader("WEEK OF")
	for _, w := range weeks {
		printSummaryRow(w.Week, w.TotalHours, w.TotalProfit)
	}
}

func printMonthly(months []sessions.MonthlySummary) {
	fmt.Println("\n🗓️  Monthly")
	if len(months) == 0 {
		fmt.Println("  No completed sessions yet")
		return
	}
	printSummaryHeader("MONTH")
	for _, m := range months {
		printSummaryRow(m.Month, m.TotalHours, m.TotalProfit)
	}
}

func printLocations(locations []sessions.LocationStats) {
	fmt.Println("\n📍 Locations")
	if len(locations) == 0 {
		fmt.Println("  No completed sessions yet")
		return
	}
	fmt.Printf("  %-24s %8s %12s %12s\n", "LOCATION", "HOURS", "PROFIT", "RATE")
	fmt.Println("  " + strings.Repeat("-", 59))
	for _, l := range locations {
		rate := parser.FormatMoney(l.ProfitPerHour) + "/hr"
		if l.TotalHours <= 0 {
			rate = "N/A"
		}
		fmt.Printf("  %-24s %8.1f %12s %12s\n",
			truncate(l.Location, 24), l.TotalHours, parser.FormatMoney(l.TotalProfit), rate)
	}
}

func printSummaryHeader(label string) {
	fmt.Printf("  %-12s %8s %12s %12s\n", label, "HOURS", "PROFIT", "RATE")
	fmt.Println("  " + strings.Repeat("-", 47))
}

func printSummaryRow(key string, hours, profit float64) {
	fmt.Printf("  %-12s %8.1f %12s %12s\n",
		key, hours, parser.FormatMoney(profit), formatHourlyRate(profit, hours))
}

func init() {
	statsCmd.Flags().Bool("week", false, "Show weekly summary")
	statsCmd.Flags().Bool("month", false, "Show monthly summary")
	statsCmd.Flags().Bool("location", false, "Show per-location summary")
	statsCmd.Flags().Bool("json", false, "Output as JSON")
	statsCmd.Flags().Bool("ui", false, "Open the interactive summary")
}
