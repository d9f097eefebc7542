package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Correct an existing session",
	Long: `Patch the cash out, end time or location of a session.

Edits are stored as given: duration, profit and hourly rate keep the values
computed when the session ended. Cash out and end time can only be changed
after the session has ended.

Usage:
  pokerlog edit 3f2a --location "Aria"
  pokerlog edit 3f2a --cashout 520`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		session, err := resolveSession(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req, err := updateRequestFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if req.CashOut == nil && req.EndTime == nil && req.Location == nil {
			fmt.Println("Nothing to change. Use --cashout, --at or --location.")
			return
		}

		updated, err := svc.UpdateSession(ctx, session.ID, req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated session %s at %s\n", updated.ShortID(), updated.Location)
	}),
}

var deleteCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		session, err := resolveSession(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		deleted, err := svc.DeleteSession(ctx, session.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted session %s at %s (%s)\n",
			deleted.ShortID(), deleted.Location, deleted.StartTime.Format("2006-01-02"))
	}),
}

func init() {
	addUpdateFlags(editCmd)
}
