package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

// resolveSession finds a session by full id or unique id prefix
func resolveSession(ctx context.Context, idOrPrefix string) (*models.PokerSession, error) {
	session, err := svc.GetSession(ctx, idOrPrefix)
	if err == nil || !errors.Is(err, sessions.ErrNotFound) {
		return session, err
	}

	all, err := svc.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.PokerSession
	for _, s := range all {
		if strings.HasPrefix(s.ID, idOrPrefix) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session '%s': %w", idOrPrefix, sessions.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("id prefix '%s' matches %d sessions, use more characters", idOrPrefix, len(matches))
	}
}

// resolveActive returns the only active session, or the one named by args[0]
func resolveActive(ctx context.Context, args []string) (*models.PokerSession, error) {
	if len(args) > 0 {
		return resolveSession(ctx, args[0])
	}

	active, err := svc.ActiveSessions(ctx)
	if err != nil {
		return nil, err
	}
	switch len(active) {
	case 0:
		return nil, fmt.Errorf("no active session found")
	case 1:
		return &active[0], nil
	default:
		return nil, fmt.Errorf("%d active sessions, pass the id of the one to end", len(active))
	}
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}

// formatMinutes formats a stored duration, or "-" when unknown
func formatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return formatDuration(time.Duration(*minutes) * time.Minute)
}

// formatHourlyRate mirrors the summary tables: N/A when no hours were played
func formatHourlyRate(profit, hours float64) string {
	if hours <= 0 {
		return "N/A"
	}
	return parser.FormatMoney(profit/hours) + "/hr"
}

// truncate shortens s to width characters with an ellipsis
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
