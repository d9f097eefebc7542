package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for pokerlog",
	Long:  `Display detailed help for all pokerlog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗  ██████╗ ██╗  ██╗███████╗██████╗ ██╗      ██████╗  ██████╗
██╔══██╗██╔═══██╗██║ ██╔╝██╔════╝██╔══██╗██║     ██╔═══██╗██╔════╝
██████╔╝██║   ██║█████╔╝ █████╗  ██████╔╝██║     ██║   ██║██║  ███╗
██╔═══╝ ██║   ██║██╔═██╗ ██╔══╝  ██╔══██╗██║     ██║   ██║██║   ██║
██║     ╚██████╔╝██║  ██╗███████╗██║  ██║███████╗╚██████╔╝╚██████╔╝
╚═╝      ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝ ╚═════╝  ╚═════╝

pokerlog - CLI Poker Session Tracker

COMMANDS:

  start [entry]           Start a session with smart parsing
    -l, --location        Where you are playing
    -b, --buyin           Buy-in amount
    -g, --game            cash|tournament
    -e, --env             online|live
    --at                  Start time (HH:MM, dd/mm/yyyy HH:MM, 90 minutes ago)
    -i, --interactive     Step-by-step wizard
    --no-ui               Skip the live timer

    Smart syntax:
      @Place        Set location (@"Two Words" for spaces)
      $200          Set buy-in (buyin:200 also works)
      +cash         Cash game (+tournament, +mtt, +tourney)
      +live         Live game (+online, +irl)
      at:19:30      Set start time

    Example:
      pokerlog start @Bellagio $300 +cash +live

  end [id]                End the active session
    -c, --cashout         Cash out amount
    --at                  End time (default now)
    -l, --location        Correct the location

  status                  Show the active session
    --cashout             Preview profit for a cash out amount
    --ui                  Reopen the live timer

    Timer keys:
      s             Cash out and end the session
      q/esc         Leave the timer, session keeps running

  ls                      List sessions, newest first
    --active              Only active sessions
    -l, --location        Filter by location
    -n, --limit           Limit number of results
    --json                JSON output

  show <id>               Show one session (id prefix is enough)
  edit <id>               Patch cash out, end time or location
  rm <id>                 Delete a session

  stats                   Hourly rate and summaries
    --week                Weekly table only
    --month               Monthly table only
    --location            Per-location table only
    --json                JSON output
    --ui                  Tabbed summary (tab/←/→ to switch)

  serve                   Serve the HTTP API
    --addr                Listen address (default :3001)
    --memory              In-memory store

  version                 Print version information
  help                    Show this help

ENVIRONMENT:

  POKERLOG_DB_PATH        Database file (default ~/.pokerlog/pokerlog.db)
  POKERLOG_HTTP_ADDR      API listen address
  POKERLOG_TIMEZONE       Time zone for weekly/monthly buckets (default system)
  POKERLOG_DB_DEBUG       Log SQL statements

`)
}
